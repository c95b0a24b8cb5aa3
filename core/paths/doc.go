// Package paths projects catalog entries onto the filesystem.
//
// Everything here is pure string and path manipulation: no function touches
// the disk, so the diff engine and the export executor resolve paths
// identically.
//
//   - ResolveSource maps a track path recorded in Books.plist onto the library
//     root being read at run time.
//   - BookDir builds the Audiobookshelf "Author/Title {Narrator}" folder.
//   - Sanitize makes free-text metadata safe to use as a path segment.
package paths
