package catalog

import (
	"errors"
	"path/filepath"
	"testing"

	"audiobook-exporter/core/document"
	"audiobook-exporter/core/storage"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

func part(fields map[string]any) map[string]any {
	return fields
}

func audiobook(fields map[string]any, parts ...map[string]any) map[string]any {
	entry := map[string]any{keyBookType: bookTypeAudiobook}
	for k, v := range fields {
		entry[k] = v
	}
	list := make([]any, len(parts))
	for i, p := range parts {
		list[i] = p
	}
	entry[keyParts] = list
	return entry
}

func library(entries ...any) document.Value {
	return document.New(map[string]any{keyBooks: entries})
}

func TestParseEntry_NonAudiobook(t *testing.T) {
	_, ok := parseEntry(document.New(map[string]any{keyBookType: "ebook"}))
	assert.False(t, ok)

	_, ok = parseEntry(document.New(map[string]any{}))
	assert.False(t, ok)

	_, ok = parseEntry(document.New("audiobook"))
	assert.False(t, ok)
}

func TestParseEntry_Valid(t *testing.T) {
	entry := audiobook(
		map[string]any{keyItemID: "sha1-abc123", keyArtist: "Test Author"},
		part(map[string]any{
			keyItemName: "Test Book", keyTrackNumber: uint64(1), keyDiscNumber: uint64(0),
			keyTrackTitle: "Chapter 1", keyPath: "/path/to/track1.mp3",
		}),
		part(map[string]any{
			keyItemName: "Test Book", keyTrackNumber: uint64(2), keyDiscNumber: uint64(0),
			keyTrackTitle: "Chapter 2", keyPath: "/path/to/track2.mp3",
		}),
	)

	book, ok := parseEntry(document.New(entry))
	require.True(t, ok)

	assert.Equal(t, "Test Book", book.Title)
	assert.Equal(t, "Test Author", book.Author)
	assert.Equal(t, "sha1-abc123", book.FolderID)
	assert.False(t, book.HasNarrator())
	require.Len(t, book.Tracks, 2)
	assert.Equal(t, uint32(1), book.Tracks[0].TrackNumber)
	assert.Equal(t, uint32(2), book.Tracks[1].TrackNumber)
	assert.Equal(t, "track1.mp3", book.Tracks[0].Filename)
	assert.Equal(t, "Chapter 1", book.Tracks[0].Title)
}

func TestParseEntry_Defaults(t *testing.T) {
	entry := audiobook(nil, part(map[string]any{
		keyItemName:    "Only Title",
		keyPath:        "/a/b.mp3",
		keyTrackNumber: "7",
		keyDiscNumber:  int64(-1),
	}))

	book, ok := parseEntry(document.New(entry))
	require.True(t, ok)
	assert.Equal(t, UnknownAuthor, book.Author)
	assert.Equal(t, "", book.FolderID)
	assert.Equal(t, uint32(0), book.Tracks[0].TrackNumber)
	assert.Equal(t, uint32(0), book.Tracks[0].DiscNumber)
	assert.Equal(t, "", book.Tracks[0].Title)
}

func TestParseEntry_BlankAuthorDefaults(t *testing.T) {
	entry := audiobook(map[string]any{keyArtist: "  "},
		part(map[string]any{keyItemName: "T", keyPath: "/a/b.mp3"}))

	book, ok := parseEntry(document.New(entry))
	require.True(t, ok)
	assert.Equal(t, UnknownAuthor, book.Author)
}

func TestParseEntry_TitleFromFirstPartOnly(t *testing.T) {
	entry := audiobook(nil,
		part(map[string]any{keyItemName: "First", keyPath: "/a/1.mp3"}),
		part(map[string]any{keyItemName: "Second", keyPath: "/a/2.mp3"}),
	)
	book, ok := parseEntry(document.New(entry))
	require.True(t, ok)
	assert.Equal(t, "First", book.Title)

	tests := []struct {
		name  string
		first map[string]any
		ok    bool
		title string
	}{
		{"MissingName", map[string]any{keyPath: "/a/1.mp3"}, true, UnknownTitle},
		{"NonStringName", map[string]any{keyItemName: uint64(3), keyPath: "/a/1.mp3"}, true, UnknownTitle},
		{"EmptyName", map[string]any{keyItemName: "", keyPath: "/a/1.mp3"}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := audiobook(nil,
				part(tt.first),
				part(map[string]any{keyItemName: "Second", keyPath: "/a/2.mp3"}),
			)
			book, ok := parseEntry(document.New(entry))
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.title, book.Title)
		})
	}
}

func TestParseEntry_UntitledSinglePartIsKept(t *testing.T) {
	entry := audiobook(map[string]any{keyArtist: "Author"},
		part(map[string]any{keyPath: "/Users/x/Books/Audiobooks/sha1-y/1.mp3"}))

	book, ok := parseEntry(document.New(entry))
	require.True(t, ok)
	assert.Equal(t, UnknownTitle, book.Title)
	assert.Equal(t, "Author - Unknown Title", book.Key())
	assert.Len(t, book.Tracks, 1)
}

func TestParseEntry_NarratorFromFirstComposer(t *testing.T) {
	entry := audiobook(nil,
		part(map[string]any{keyItemName: "Book", keyPath: "/a/1.mp3"}),
		part(map[string]any{keyComposer: "", keyPath: "/a/2.mp3"}),
		part(map[string]any{keyComposer: "Reader One", keyPath: "/a/3.mp3"}),
		part(map[string]any{keyComposer: "Reader Two", keyPath: "/a/4.mp3"}),
	)
	book, ok := parseEntry(document.New(entry))
	require.True(t, ok)
	assert.True(t, book.HasNarrator())
	assert.Equal(t, "Reader One", book.Narrator)
}

func TestParseEntry_DropsPartsWithoutPath(t *testing.T) {
	entry := audiobook(nil,
		part(map[string]any{keyItemName: "Book", keyTrackNumber: uint64(1)}),
		part(map[string]any{keyPath: "", keyTrackNumber: uint64(2)}),
		part(map[string]any{keyPath: uint64(5)}),
		part(map[string]any{keyPath: "/a/..", keyTrackNumber: uint64(4)}),
		part(map[string]any{keyPath: "/a/3.mp3", keyTrackNumber: uint64(3)}),
	)
	book, ok := parseEntry(document.New(entry))
	require.True(t, ok)
	require.Len(t, book.Tracks, 1)
	assert.Equal(t, uint32(3), book.Tracks[0].TrackNumber)
	assert.Equal(t, "Book", book.Title, "a pathless first part still names the book")
}

func TestParseEntry_RejectsBooksWithoutTracks(t *testing.T) {
	entry := audiobook(nil, part(map[string]any{keyItemName: "Empty"}))
	_, ok := parseEntry(document.New(entry))
	assert.False(t, ok)

	_, ok = parseEntry(document.New(audiobook(nil)))
	assert.False(t, ok)

	noParts := map[string]any{keyBookType: bookTypeAudiobook}
	_, ok = parseEntry(document.New(noParts))
	assert.False(t, ok)
}

func TestParseEntry_StableTrackOrder(t *testing.T) {
	entry := audiobook(nil,
		part(map[string]any{keyItemName: "Book", keyPath: "/a/d2t1.mp3", keyDiscNumber: uint64(2), keyTrackNumber: uint64(1)}),
		part(map[string]any{keyPath: "/a/d1t2-first.mp3", keyDiscNumber: uint64(1), keyTrackNumber: uint64(2)}),
		part(map[string]any{keyPath: "/a/d1t1.mp3", keyDiscNumber: uint64(1), keyTrackNumber: uint64(1)}),
		part(map[string]any{keyPath: "/a/d1t2-second.mp3", keyDiscNumber: uint64(1), keyTrackNumber: uint64(2)}),
		part(map[string]any{keyPath: "/a/nodisc.mp3", keyTrackNumber: uint64(9)}),
	)
	book, ok := parseEntry(document.New(entry))
	require.True(t, ok)

	var names []string
	for _, tr := range book.Tracks {
		names = append(names, tr.Filename)
	}
	assert.Equal(t, []string{
		"nodisc.mp3",
		"d1t1.mp3",
		"d1t2-first.mp3",
		"d1t2-second.mp3",
		"d2t1.mp3",
	}, names)

	for i := 1; i < len(book.Tracks); i++ {
		prev, cur := book.Tracks[i-1], book.Tracks[i]
		assert.True(t, prev.DiscNumber < cur.DiscNumber ||
			(prev.DiscNumber == cur.DiscNumber && prev.TrackNumber <= cur.TrackNumber))
	}
}

func TestExtract(t *testing.T) {
	valid := audiobook(map[string]any{keyArtist: "Author"},
		part(map[string]any{keyItemName: "Book", keyPath: "/a/1.mp3"}))

	t.Run("SkipsMalformedEntries", func(t *testing.T) {
		cat, err := Extract(library(
			"not a dict",
			map[string]any{keyBookType: "ebook"},
			audiobook(nil),
			valid,
		))
		require.NoError(t, err)
		require.Len(t, cat.Books, 1)
		assert.Equal(t, "Author - Book", cat.Books[0].Key())
		assert.Equal(t, 1, cat.TrackCount())
	})

	t.Run("RootNotDictionary", func(t *testing.T) {
		_, err := Extract(document.New([]any{valid}))
		var structErr *StructureError
		require.True(t, errors.As(err, &structErr))
		assert.Contains(t, structErr.Reason, "root")
	})

	t.Run("MissingBooksArray", func(t *testing.T) {
		_, err := Extract(document.New(map[string]any{"Other": []any{}}))
		var structErr *StructureError
		assert.True(t, errors.As(err, &structErr))

		_, err = Extract(document.New(map[string]any{keyBooks: "wrong type"}))
		assert.True(t, errors.As(err, &structErr))
	})

	t.Run("NoAudiobooks", func(t *testing.T) {
		_, err := Extract(library(map[string]any{keyBookType: "ebook"}))
		assert.ErrorIs(t, err, ErrNoAudiobooks)

		_, err = Extract(library())
		assert.ErrorIs(t, err, ErrNoAudiobooks)
	})
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	client := storage.NewClient(fs)

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(client, "/lib/Books.plist")
		assert.ErrorIs(t, err, ErrMetadataNotFound)
		assert.Contains(t, err.Error(), "/lib/Books.plist")
	})

	t.Run("InvalidFile", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/bad/Books.plist", []byte("<plist><dict>"), 0o644))
		_, err := Load(client, "/bad/Books.plist")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/bad/Books.plist")
	})

	t.Run("BinaryPlist", func(t *testing.T) {
		data, err := plist.Marshal(map[string]any{
			keyBooks: []any{
				map[string]any{keyBookType: "ebook", "itemName": "A Novel"},
				audiobook(map[string]any{keyArtist: "Frank Herbert", keyItemID: "sha1-dune"},
					part(map[string]any{keyItemName: "Dune", keyComposer: "Scott Brick", keyTrackNumber: 2,
						keyPath: "/Users/x/Books/Audiobooks/sha1-dune/02.mp3"}),
					part(map[string]any{keyItemName: "Dune", keyTrackNumber: 1,
						keyPath: "/Users/x/Books/Audiobooks/sha1-dune/01.mp3"}),
				),
			},
		}, plist.BinaryFormat)
		require.NoError(t, err)
		require.NoError(t, afero.WriteFile(fs, "/lib/Books.plist", data, 0o644))

		cat, err := Load(client, "/lib/Books.plist")
		require.NoError(t, err)
		require.Len(t, cat.Books, 1)

		book := cat.Books[0]
		assert.Equal(t, "Dune", book.Title)
		assert.Equal(t, "Frank Herbert", book.Author)
		assert.Equal(t, "Scott Brick", book.Narrator)
		assert.Equal(t, "sha1-dune", book.FolderID)
		require.Len(t, book.Tracks, 2)
		assert.Equal(t, "01.mp3", book.Tracks[0].Filename)
		assert.Equal(t, "02.mp3", book.Tracks[1].Filename)
	})
}

func TestConfig(t *testing.T) {
	cfg := Config{MetadataFile: "Books.plist"}
	assert.Equal(t, DefaultSourcePath("/home/u"), cfg.ResolveSource("/home/u"))
	assert.Contains(t, DefaultSourcePath("/home/u"), "com.apple.BKAgentService")

	cfg.Source = "/Volumes/backup/Books"
	assert.Equal(t, "/Volumes/backup/Books", cfg.ResolveSource("/home/u"))
	assert.Equal(t, "/Volumes/backup/Books/Books.plist", filepath.ToSlash(cfg.MetadataPath(cfg.Source)))
}
