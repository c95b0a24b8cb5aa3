package reconcile

import "audiobook-exporter/core/catalog"

// FileStatus classifies one track against the source and destination trees.
type FileStatus string

const (
	// StatusNew means the source file exists and the destination does not.
	StatusNew FileStatus = "new"
	// StatusExists means the destination file is already in place.
	StatusExists FileStatus = "exists"
	// StatusSourceMissing means the metadata references a file that is not on disk.
	StatusSourceMissing FileStatus = "source_missing"
)

// FileDiff pairs a track with its resolved paths and status.
// It is recomputed on every run and never persisted.
type FileDiff struct {
	// SourcePath is the track path remapped onto the library being read.
	SourcePath string `json:"source_path"`

	// DestPath is where the track lands in the Audiobookshelf tree.
	DestPath string `json:"dest_path"`

	// Status is the presence classification.
	Status FileStatus `json:"status"`

	// BookTitle and Author are copied from the owning book for reporting.
	BookTitle string `json:"book_title"`
	Author    string `json:"author"`

	// Track is the catalog entry the diff was computed for.
	Track catalog.Track `json:"track"`
}

// BookKey returns the "Author - Title" grouping key.
func (d FileDiff) BookKey() string {
	return catalog.BookKey(d.Author, d.BookTitle)
}

// BookFiles counts the files of one book in a category.
type BookFiles struct {
	Key   string `json:"key"`
	Files int    `json:"files"`
}

// Summary provides aggregate statistics for a diff.
type Summary struct {
	// NewFiles counts tracks that would be copied.
	NewFiles int `json:"new_files"`

	// ExistingFiles counts tracks already present at the destination.
	ExistingFiles int `json:"existing_files"`

	// MissingFiles counts tracks missing from the source.
	MissingFiles int `json:"missing_files"`

	// BooksToAdd lists books with new files, sorted by key.
	BooksToAdd []BookFiles `json:"books_to_add"`

	// ExistingBooks lists books with at least one file already present, sorted.
	ExistingBooks []string `json:"existing_books"`

	// MissingBooks lists books with at least one missing source file, sorted.
	MissingBooks []string `json:"missing_books"`
}

// TotalFiles returns the number of classified tracks.
func (s Summary) TotalFiles() int {
	return s.NewFiles + s.ExistingFiles + s.MissingFiles
}
