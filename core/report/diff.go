package report

import (
	"fmt"
	"io"

	"audiobook-exporter/core/reconcile"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	// toAddLimit caps the books listed under TO ADD.
	toAddLimit = 20
	// listLimit caps the books listed under the other sections.
	listLimit = 10
)

var (
	addColor     = color.New(color.FgGreen)
	existsColor  = color.New(color.FgYellow)
	missingColor = color.New(color.FgRed)
)

// RenderDiff writes the dry-run diff report for summary to w.
// Empty sections are omitted.
func RenderDiff(w io.Writer, summary reconcile.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, box("DIFF SUMMARY", table.StyleDouble))
	fmt.Fprintln(w)

	if summary.NewFiles > 0 {
		header := fmt.Sprintf("%s (%d files in %d books)",
			addColor.Sprint("+ TO ADD"), summary.NewFiles, len(summary.BooksToAdd))
		fmt.Fprintln(w, box(header, table.StyleRounded))

		for i, book := range summary.BooksToAdd {
			if i == toAddLimit {
				break
			}
			fmt.Fprintf(w, "  %s %s (%d files)\n", addColor.Sprint("+"), book.Key, book.Files)
		}
		writeOverflow(w, len(summary.BooksToAdd), toAddLimit)
		fmt.Fprintln(w)
	}

	if summary.ExistingFiles > 0 {
		header := fmt.Sprintf("%s (%d files in %d books)",
			existsColor.Sprint("= ALREADY EXISTS"), summary.ExistingFiles, len(summary.ExistingBooks))
		writeBookSection(w, header, existsColor.Sprint("="), summary.ExistingBooks)
	}

	if summary.MissingFiles > 0 {
		header := fmt.Sprintf("%s (%d files in %d books)",
			missingColor.Sprint("! SOURCE MISSING"), summary.MissingFiles, len(summary.MissingBooks))
		writeBookSection(w, header, missingColor.Sprint("!"), summary.MissingBooks)
	}

	fmt.Fprintln(w, renderTotals(summary))
}

func writeBookSection(w io.Writer, header, marker string, books []string) {
	fmt.Fprintln(w, box(header, table.StyleRounded))
	for i, key := range books {
		if i == listLimit {
			break
		}
		fmt.Fprintf(w, "  %s %s\n", marker, key)
	}
	writeOverflow(w, len(books), listLimit)
	fmt.Fprintln(w)
}

func writeOverflow(w io.Writer, total, limit int) {
	if total > limit {
		fmt.Fprintf(w, "  ... and %d more books\n", total-limit)
	}
}

func renderTotals(summary reconcile.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("TOTALS")
	tw.AppendRows([]table.Row{
		{addColor.Sprint("+"), "New files to copy:", summary.NewFiles},
		{existsColor.Sprint("="), "Already exist (skip):", summary.ExistingFiles},
		{missingColor.Sprint("!"), "Source missing:", summary.MissingFiles},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})
	return tw.Render()
}

// box frames a single line of text.
func box(content string, style table.Style) string {
	tw := table.NewWriter()
	tw.SetStyle(style)
	tw.AppendRow(table.Row{content})
	return tw.Render()
}
