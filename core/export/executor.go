package export

import (
	"fmt"
	"io"

	"audiobook-exporter/core/catalog"
	"audiobook-exporter/core/paths"
	"audiobook-exporter/core/storage"

	"go.uber.org/zap"
)

// Executor copies or links catalog tracks into an Audiobookshelf tree.
type Executor struct {
	client storage.Client
	logger *zap.Logger
}

// NewExecutor creates a new executor.
func NewExecutor(client storage.Client, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{client: client, logger: logger}
}

// Export processes every book in catalog order. A missing source file is a
// warning and an existing destination file is skipped; any directory, copy
// or link failure aborts the run and no statistics are returned.
func (e *Executor) Export(cat *catalog.Catalog, opts Options) (*Stats, error) {
	progress := opts.Progress
	if progress == nil {
		progress = NopProgress()
	}
	plan := opts.Plan
	if plan == nil {
		plan = io.Discard
	}

	stats := &Stats{}
	for i := range cat.Books {
		book := &cat.Books[i]
		progress.Describe(book.Key())

		if err := e.exportBook(book, opts, plan, stats); err != nil {
			return nil, err
		}

		stats.BooksExported++
		progress.Increment()
	}
	progress.Finish()

	e.logger.Debug("Export finished",
		zap.Int("books", stats.BooksExported),
		zap.Int("copied", stats.FilesCopied),
		zap.Int("would_copy", stats.FilesWouldCopy),
		zap.Int("already_exist", stats.FilesAlreadyExist),
		zap.Int("source_missing", stats.SourceMissing),
	)

	return stats, nil
}

func (e *Executor) exportBook(book *catalog.Book, opts Options, plan io.Writer, stats *Stats) error {
	bookDir := paths.BookDir(opts.DestRoot, book)

	if !opts.DryRun {
		if err := e.client.MkdirAll(bookDir); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", bookDir, err)
		}
	}

	for _, track := range book.Tracks {
		src := paths.ResolveSource(track.Path, opts.SourceRoot)
		dst := paths.TrackDest(bookDir, track)

		switch {
		case opts.DryRun:
			fmt.Fprintf(plan, "Would %s %q -> %q\n", verb(opts.Link), src, dst)
			stats.FilesWouldCopy++
		case !e.client.Exists(src):
			e.logger.Warn("Source file not found",
				zap.String("book", book.Key()),
				zap.String("path", src),
			)
			stats.SourceMissing++
		case e.client.Occupied(dst):
			stats.FilesAlreadyExist++
		default:
			n, err := e.transfer(src, dst, opts.Link)
			if err != nil {
				return err
			}
			stats.FilesCopied++
			stats.BytesCopied += n
		}
	}

	return nil
}

func (e *Executor) transfer(src, dst string, link bool) (int64, error) {
	if link {
		if err := e.client.Symlink(src, dst); err != nil {
			return 0, fmt.Errorf("failed to symlink %s -> %s: %w", src, dst, err)
		}
		return 0, nil
	}

	n, err := e.client.Copy(src, dst)
	if err != nil {
		return 0, fmt.Errorf("failed to copy %s -> %s: %w", src, dst, err)
	}
	return n, nil
}

func verb(link bool) string {
	if link {
		return "symlink"
	}
	return "copy"
}
