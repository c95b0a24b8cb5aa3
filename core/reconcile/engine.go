package reconcile

import (
	"audiobook-exporter/core/catalog"
	"audiobook-exporter/core/paths"
	"audiobook-exporter/core/storage"
)

// ComputeDiff classifies every track of the catalog without touching the
// destination. Entries follow catalog order: books first, then tracks in
// their sorted order.
func ComputeDiff(client storage.Client, cat *catalog.Catalog, sourceRoot, destRoot string) []FileDiff {
	diffs := make([]FileDiff, 0, cat.TrackCount())

	for i := range cat.Books {
		book := &cat.Books[i]
		bookDir := paths.BookDir(destRoot, book)

		for _, track := range book.Tracks {
			diffs = append(diffs, buildDiff(client, book, track, sourceRoot, bookDir))
		}
	}

	return diffs
}

// buildDiff resolves and classifies a single track.
func buildDiff(client storage.Client, book *catalog.Book, track catalog.Track, sourceRoot, bookDir string) FileDiff {
	diff := FileDiff{
		SourcePath: paths.ResolveSource(track.Path, sourceRoot),
		DestPath:   paths.TrackDest(bookDir, track),
		BookTitle:  book.Title,
		Author:     book.Author,
		Track:      track,
	}

	switch {
	case !client.Exists(diff.SourcePath):
		diff.Status = StatusSourceMissing
	case client.Occupied(diff.DestPath):
		diff.Status = StatusExists
	default:
		diff.Status = StatusNew
	}

	return diff
}
