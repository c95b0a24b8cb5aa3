// Package reconcile computes the three-way file diff between an Apple Books
// library and an Audiobookshelf destination tree.
//
// For every track of every book the engine resolves the real source path and
// the destination path (see core/paths) and classifies the pair:
//
//   - StatusSourceMissing: the metadata references a file that is not on disk.
//   - StatusExists: the destination already holds a file with that name.
//   - StatusNew: the file would be copied.
//
// The engine only performs existence checks; it never writes. Results come
// back in catalog order so reports are deterministic.
//
// # Summaries
//
// Summarize reduces a diff to per-status counts and per-book groupings used
// by the dry-run report. It is a presentation layer over the diff and does
// not change it.
//
// # Usage Example
//
//	diffs := reconcile.ComputeDiff(client, cat, sourceRoot, destRoot)
//	summary := reconcile.Summarize(diffs)
//	fmt.Println(summary.NewFiles, "files to copy")
package reconcile
