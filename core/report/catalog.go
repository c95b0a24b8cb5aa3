package report

import (
	"fmt"
	"io"
	"strconv"

	"audiobook-exporter/core/catalog"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderCatalog writes one table row per book.
func RenderCatalog(w io.Writer, cat *catalog.Catalog) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Author", "Title", "Narrator", "Tracks"})

	for i := range cat.Books {
		book := &cat.Books[i]
		tw.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			book.Author,
			book.Title,
			book.Narrator,
			strconv.Itoa(len(book.Tracks)),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	fmt.Fprintln(w, tw.Render())
	fmt.Fprintf(w, "%s audiobooks, %s tracks\n",
		humanize.Comma(int64(len(cat.Books))), humanize.Comma(int64(cat.TrackCount())))
}
