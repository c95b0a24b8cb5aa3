// Package audiobooks implements the Apple Books to Audiobookshelf export
// feature.
//
// The Service ties the core packages together over one storage client:
//
//   - LoadCatalog reads and extracts Books.plist from a library root.
//   - Diff runs the three-way presence check used by dry runs.
//   - Export copies or links the catalog into the destination tree.
//
// Symlink requests are downgraded to copies, with a warning, when the
// storage client reports no symlink support.
package audiobooks
