package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"audiobook-exporter/core/catalog"
	"audiobook-exporter/core/export"
	"audiobook-exporter/core/progress"
	"audiobook-exporter/core/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportSource  string
	exportDest    string
	exportDryRun  bool
	exportSymlink bool
	exportJSON    bool
	exportVerbose bool
)

// exportCmd copies the Apple Books library into an Audiobookshelf tree.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export audiobooks into an Audiobookshelf library",
	Long: `Export every audiobook found in Books.plist into the destination
using the Audiobookshelf layout. Files already present are skipped, so the
command can be re-run to pick up new purchases.

Examples:
  # Preview what would be copied
  audiobook-exporter export --dest /srv/audiobooks --dry-run

  # Export from a backup of another Mac's library
  audiobook-exporter export --source /Volumes/backup/Books --dest /srv/audiobooks

  # Link instead of copying
  audiobook-exporter export --dest /srv/audiobooks --symlink`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportSource, "source", "s", "", "Apple Books library root (defaults to the local container)")
	exportCmd.Flags().StringVarP(&exportDest, "dest", "d", "", "Audiobookshelf library root")
	exportCmd.Flags().BoolVar(&exportDryRun, "dry-run", false, "Show the diff without copying anything")
	exportCmd.Flags().BoolVar(&exportSymlink, "symlink", false, "Create symbolic links instead of copying")
	exportCmd.Flags().BoolVar(&exportJSON, "json", false, "Save the dry-run diff as JSON")
	exportCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "List every planned action in dry-run")

	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := newSession(exportSource)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	opts := s.cfg.Export
	if cmd.Flags().Changed("dest") {
		opts.Dest = exportDest
	}
	if cmd.Flags().Changed("dry-run") {
		opts.DryRun = exportDryRun
	}
	if cmd.Flags().Changed("symlink") {
		opts.Link = exportSymlink
	}
	if opts.Dest == "" {
		return errors.New("destination is required (--dest or EXPORT_DEST)")
	}

	cat, err := s.loadCatalog()
	if err != nil {
		return err
	}

	if opts.DryRun {
		return runDryRun(s, cat, opts)
	}

	startTime := time.Now()
	s.logger.Info("Starting export",
		zap.String("source", s.source),
		zap.String("dest", opts.Dest),
		zap.Bool("symlink", opts.Link),
	)

	stats, err := s.svc.Export(cat, export.Options{
		SourceRoot: s.source,
		DestRoot:   opts.Dest,
		Link:       opts.Link,
		Progress:   progress.New(os.Stderr, len(cat.Books)),
	})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	report.RenderExportSummary(os.Stdout, stats)

	s.logger.Info("Export completed",
		zap.Int("books", stats.BooksExported),
		zap.Int("copied", stats.FilesCopied),
		zap.Int("already_exist", stats.FilesAlreadyExist),
		zap.Int("source_missing", stats.SourceMissing),
		zap.Duration("execution_time", time.Since(startTime)),
	)
	return nil
}

func runDryRun(s *session, cat *catalog.Catalog, opts export.Config) error {
	fmt.Println("\n=== DRY RUN - No files will be copied ===")

	diffs, summary := s.svc.Diff(cat, s.source, opts.Dest)
	report.RenderDiff(os.Stdout, summary)

	if exportVerbose {
		if _, err := s.svc.Export(cat, export.Options{
			SourceRoot: s.source,
			DestRoot:   opts.Dest,
			DryRun:     true,
			Link:       opts.Link,
			Plan:       os.Stdout,
		}); err != nil {
			return err
		}
	}

	if exportJSON {
		filename := fmt.Sprintf("export_diff_%d.json", time.Now().Unix())
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to save JSON file: %w", err)
		}
		if err := report.WriteJSON(f, diffs); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to save JSON file: %w", err)
		}
		s.logger.Info("Diff JSON saved", zap.String("file", filename), zap.Int("files", len(diffs)))
	}

	s.logger.Info("Dry-run mode: No changes were made.")
	return nil
}
