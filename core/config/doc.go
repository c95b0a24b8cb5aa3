// Package config provides configuration management for the exporter.
//
// Values come from environment variables, optionally seeded from a .env file,
// with defaults declared in `default` struct tags. Nested keys map to
// upper-case variables joined by underscores.
//
// # Configuration Structure
//
//   - Library: LIBRARY_SOURCE, LIBRARY_METADATA_FILE
//   - Export: EXPORT_DEST, EXPORT_DRY_RUN, EXPORT_LINK
//   - Log: LOG_LEVEL, LOG_FORMAT
//
// Command-line flags take precedence over these values; that merge happens
// in cmd.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Export.Dest)
package config
