// Package export writes an Apple Books catalog into an Audiobookshelf
// library tree.
//
// The executor walks books in catalog order, creates each book directory and
// copies (or symlinks) every track that is present at the source and absent
// at the destination. Existing destination files are never overwritten, so a
// second run over the same destination copies nothing.
//
// Missing source files are logged and counted. Directory creation, copy and
// link failures abort the run.
//
// In dry-run mode nothing is created; each planned action is written to
// Options.Plan instead.
package export
