package catalog

// UnknownAuthor is used when a library entry carries no artist name.
const UnknownAuthor = "Unknown Author"

// UnknownTitle is used when the first part of an audiobook has no itemName.
const UnknownTitle = "Unknown Title"

// Track is one audio file of a book, in the order the player would read it.
type Track struct {
	// TrackNumber is the position within the disc (0 when unknown).
	TrackNumber uint32 `json:"track_number"`
	// DiscNumber is the disc the track belongs to (0 when unknown).
	DiscNumber uint32 `json:"disc_number"`
	// Title is the chapter title, possibly empty.
	Title string `json:"title"`
	// Path is the absolute path as recorded by Apple Books.
	Path string `json:"path"`
	// Filename is the last segment of Path.
	Filename string `json:"filename"`
}

// Book is a logical audiobook with its tracks sorted by disc then track.
type Book struct {
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	Narrator string  `json:"narrator,omitempty"`
	FolderID string  `json:"folder_id"`
	Tracks   []Track `json:"tracks"`
}

// HasNarrator reports whether the book names a narrator.
func (b *Book) HasNarrator() bool {
	return b.Narrator != ""
}

// Key identifies the book in reports.
func (b *Book) Key() string {
	return BookKey(b.Author, b.Title)
}

// BookKey builds the "Author - Title" label used to group files per book.
func BookKey(author, title string) string {
	return author + " - " + title
}

// Catalog is the set of valid audiobooks read from one metadata document.
type Catalog struct {
	Books []Book `json:"books"`
}

// TrackCount returns the number of tracks across all books.
func (c *Catalog) TrackCount() int {
	n := 0
	for i := range c.Books {
		n += len(c.Books[i].Tracks)
	}
	return n
}
