package export

import "io"

// Progress receives one tick per processed book.
type Progress interface {
	Describe(description string)
	Increment()
	Finish()
}

// Options controls a single export run.
type Options struct {
	// SourceRoot is the library root recorded paths are remapped onto.
	SourceRoot string

	// DestRoot is the Audiobookshelf library root.
	DestRoot string

	// DryRun disables every filesystem mutation.
	DryRun bool

	// Link requests symlinks instead of copies. The caller has already
	// checked the storage capability.
	Link bool

	// Plan receives one line per planned action in dry-run. Nil discards.
	Plan io.Writer

	// Progress is ticked once per book. Nil disables progress.
	Progress Progress
}

// Stats accumulates the outcome of an export run.
type Stats struct {
	BooksExported     int   `json:"books_exported"`
	FilesCopied       int   `json:"files_copied"`
	FilesWouldCopy    int   `json:"files_would_copy"`
	FilesAlreadyExist int   `json:"files_already_exist"`
	SourceMissing     int   `json:"source_missing"`
	BytesCopied       int64 `json:"bytes_copied"`
}

// Skipped returns the number of tracks that were not transferred.
func (s *Stats) Skipped() int {
	return s.FilesAlreadyExist + s.SourceMissing
}

type nopProgress struct{}

func (nopProgress) Describe(string) {}
func (nopProgress) Increment()      {}
func (nopProgress) Finish()         {}

// NopProgress returns a Progress that does nothing.
func NopProgress() Progress {
	return nopProgress{}
}
