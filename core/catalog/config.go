package catalog

import "path/filepath"

// appleBooksContainer is where Apple Books keeps its library, relative to the
// user's home directory.
const appleBooksContainer = "Library/Containers/com.apple.BKAgentService/Data/Documents/iBooks/Books"

// Config holds configuration for locating the source library.
type Config struct {
	// Source is the Apple Books library root. Empty means the default
	// container path under the home directory.
	Source string `mapstructure:"source" default:""`
	// MetadataFile is the library metadata filename inside Source.
	MetadataFile string `mapstructure:"metadata_file" default:"Books.plist"`
}

// DefaultSourcePath returns the Apple Books library root for home.
func DefaultSourcePath(home string) string {
	if home == "" {
		home = "/"
	}
	return filepath.Join(home, filepath.FromSlash(appleBooksContainer))
}

// ResolveSource returns Source, or the default library root when unset.
func (c Config) ResolveSource(home string) string {
	if c.Source != "" {
		return c.Source
	}
	return DefaultSourcePath(home)
}

// MetadataPath returns the metadata file path inside source.
func (c Config) MetadataPath(source string) string {
	name := c.MetadataFile
	if name == "" {
		name = "Books.plist"
	}
	return filepath.Join(source, name)
}
