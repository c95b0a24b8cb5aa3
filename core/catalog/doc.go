// Package catalog extracts the audiobook catalog from an Apple Books library.
//
// Apple Books records every item of the library in Books.plist. Each entry
// of the top-level "Books" array is a dictionary; audiobooks carry
// BKBookType "audiobook" and list their audio files under BKParts.
//
// # Extraction rules
//
//   - Entries that are not dictionaries, or not audiobooks, are skipped.
//   - The book title comes from the first part's itemName, or "Unknown Title"
//     when that part has none; the narrator from the first part with a
//     non-empty composer.
//   - Parts without a path are dropped. Tracks are sorted by disc and track
//     number, keeping document order for equal keys.
//   - Books with an explicitly empty title or without tracks are discarded.
//
// Only structural problems (root not a dictionary, no Books array) and an
// empty result are errors. See StructureError, ErrNoAudiobooks and
// ErrMetadataNotFound.
//
// # Usage
//
//	cat, err := catalog.Load(client, cfg.MetadataPath(source))
//	if errors.Is(err, catalog.ErrNoAudiobooks) {
//	    ...
//	}
package catalog
