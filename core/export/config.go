package export

// Config holds export settings loaded from the environment.
type Config struct {
	// Dest is the Audiobookshelf library root.
	Dest string `mapstructure:"dest" default:""`

	// DryRun reports what would happen without touching the destination.
	DryRun bool `mapstructure:"dry_run" default:"false"`

	// Link creates symbolic links instead of copying files.
	Link bool `mapstructure:"link" default:"false"`
}
