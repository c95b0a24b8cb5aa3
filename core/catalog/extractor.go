package catalog

import (
	"fmt"
	"path"
	"sort"

	"audiobook-exporter/core/document"
	"audiobook-exporter/core/storage"
	"audiobook-exporter/core/utils"
)

// Books.plist keys.
const (
	keyBooks       = "Books"
	keyBookType    = "BKBookType"
	keyItemID      = "BKGeneratedItemId"
	keyArtist      = "artistName"
	keyParts       = "BKParts"
	keyItemName    = "itemName"
	keyComposer    = "composer"
	keyTrackNumber = "BKTrackNumber"
	keyDiscNumber  = "BKDiscNumber"
	keyTrackTitle  = "BKTrackTitle"
	keyPath        = "path"

	bookTypeAudiobook = "audiobook"
)

// Load reads and extracts the catalog stored at metadataPath.
// A missing file is reported before any parsing is attempted.
func Load(client storage.Client, metadataPath string) (*Catalog, error) {
	if !client.Exists(metadataPath) {
		return nil, fmt.Errorf("%w: %s", ErrMetadataNotFound, metadataPath)
	}

	f, err := client.Open(metadataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata %s: %w", metadataPath, err)
	}
	defer f.Close()

	doc, err := document.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse metadata at %s: %w", metadataPath, err)
	}

	return Extract(doc)
}

// Extract walks a decoded library document and returns every valid audiobook.
// Malformed or non-audiobook entries are skipped; only a document of the
// wrong shape or an empty result is an error.
func Extract(doc document.Value) (*Catalog, error) {
	root, ok := doc.Dict()
	if !ok {
		return nil, &StructureError{Reason: "root is not a dictionary"}
	}

	entries, ok := root.Array(keyBooks)
	if !ok {
		return nil, &StructureError{Reason: "missing 'Books' array"}
	}

	cat := &Catalog{}
	for _, entry := range entries {
		if book, ok := parseEntry(entry); ok {
			cat.Books = append(cat.Books, book)
		}
	}

	if len(cat.Books) == 0 {
		return nil, ErrNoAudiobooks
	}

	return cat, nil
}

// parseEntry converts one element of the Books array. ok is false for
// anything that is not a usable audiobook.
func parseEntry(entry document.Value) (Book, bool) {
	dict, ok := entry.Dict()
	if !ok {
		return Book{}, false
	}

	if dict.String(keyBookType, "") != bookTypeAudiobook {
		return Book{}, false
	}

	book := Book{
		FolderID: dict.String(keyItemID, ""),
		Author:   dict.String(keyArtist, ""),
	}
	if utils.IsBlank(book.Author) {
		book.Author = UnknownAuthor
	}

	parts, _ := dict.Array(keyParts)
	titleSeen := false
	for _, p := range parts {
		part, ok := p.Dict()
		if !ok {
			continue
		}

		// Only the first part names the book. An explicit empty name is kept
		// and rejects the book below.
		if !titleSeen {
			book.Title = part.String(keyItemName, UnknownTitle)
			titleSeen = true
		}

		if book.Narrator == "" {
			if composer := part.String(keyComposer, ""); !utils.IsBlank(composer) {
				book.Narrator = composer
			}
		}

		track, ok := parseTrack(part)
		if !ok {
			continue
		}
		book.Tracks = append(book.Tracks, track)
	}

	sort.SliceStable(book.Tracks, func(i, j int) bool {
		a, b := book.Tracks[i], book.Tracks[j]
		if a.DiscNumber != b.DiscNumber {
			return a.DiscNumber < b.DiscNumber
		}
		return a.TrackNumber < b.TrackNumber
	})

	if book.Title == "" || len(book.Tracks) == 0 {
		return Book{}, false
	}

	return book, true
}

// parseTrack reads the track fields of a part. Parts without a usable path
// are dropped.
func parseTrack(part document.Dict) (Track, bool) {
	recorded := part.String(keyPath, "")
	if recorded == "" {
		return Track{}, false
	}

	filename := trackFilename(recorded)
	if filename == "" {
		return Track{}, false
	}

	return Track{
		TrackNumber: part.Uint32(keyTrackNumber, 0),
		DiscNumber:  part.Uint32(keyDiscNumber, 0),
		Title:       part.String(keyTrackTitle, ""),
		Path:        recorded,
		Filename:    filename,
	}, true
}

// trackFilename returns the final segment of a recorded path. Recorded paths
// always use forward slashes regardless of the host.
func trackFilename(recorded string) string {
	base := path.Base(recorded)
	switch base {
	case ".", "..", "/":
		return ""
	}
	return base
}
