package logger

// Config holds logging settings.
type Config struct {
	// Level is one of debug, info, warn or error.
	Level string `mapstructure:"level" default:"info"`
	// Format is "console" or "json".
	Format string `mapstructure:"format" default:"console"`
}
