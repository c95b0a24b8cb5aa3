package paths

import (
	"path"
	"path/filepath"
	"strings"

	"audiobook-exporter/core/catalog"
)

const (
	// audiobooksMarker is where the library-relative part of a recorded
	// track path begins.
	audiobooksMarker = "Audiobooks/"
	audiobooksDir    = "Audiobooks"
	// hashFolderPrefix names the per-book folders Apple Books creates.
	hashFolderPrefix = "sha1-"
)

// unsafeReplacer maps characters that are invalid in file names to "_".
var unsafeReplacer = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	":", "_",
	"*", "_",
	"?", "_",
	"\"", "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// Sanitize turns free text into a single path segment. Each of / \ : * ? " < > |
// becomes "_"; everything else, Unicode included, is kept. Leading and
// trailing whitespace is trimmed from the result.
func Sanitize(name string) string {
	return strings.TrimSpace(unsafeReplacer.Replace(name))
}

// ResolveSource maps a track path recorded by Apple Books onto sourceRoot,
// the library root actually being read. The recorded path was written on the
// original machine and may live under a different prefix (another user, a
// mounted volume, a backup copy).
//
// The library-relative suffix is found by, in order:
//  1. the first "Audiobooks/" segment, kept together with everything after it;
//  2. a "sha1-" parent folder, rebuilt as sourceRoot/Audiobooks/<folder>/<file>.
//
// When neither applies the recorded path is returned unchanged.
func ResolveSource(recorded, sourceRoot string) string {
	if idx := strings.Index(recorded, audiobooksMarker); idx >= 0 {
		return filepath.Join(sourceRoot, filepath.FromSlash(recorded[idx:]))
	}

	file := path.Base(recorded)
	folder := path.Base(path.Dir(recorded))
	if strings.HasPrefix(folder, hashFolderPrefix) {
		return filepath.Join(sourceRoot, audiobooksDir, folder, file)
	}

	return recorded
}

// BookDir returns the Audiobookshelf folder for book:
// destRoot/Author/Title, or destRoot/Author/Title {Narrator} when a narrator
// is known.
func BookDir(destRoot string, book *catalog.Book) string {
	title := Sanitize(book.Title)
	if book.HasNarrator() {
		title = title + " {" + Sanitize(book.Narrator) + "}"
	}
	return filepath.Join(destRoot, Sanitize(book.Author), title)
}

// TrackDest returns the destination of track inside bookDir.
func TrackDest(bookDir string, track catalog.Track) string {
	return filepath.Join(bookDir, track.Filename)
}
