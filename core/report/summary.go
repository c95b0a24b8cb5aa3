package report

import (
	"fmt"
	"io"

	"audiobook-exporter/core/export"

	"github.com/dustin/go-humanize"
)

// RenderExportSummary writes the end-of-run statistics. Skip counters are
// only shown when non-zero.
func RenderExportSummary(w io.Writer, stats *export.Stats) {
	fmt.Fprintln(w, "\n=== Export Summary ===")
	fmt.Fprintf(w, "Audiobooks processed: %d\n", stats.BooksExported)
	fmt.Fprintf(w, "Files copied: %d\n", stats.FilesCopied)
	if stats.BytesCopied > 0 {
		fmt.Fprintf(w, "Data copied: %s\n", humanize.Bytes(uint64(stats.BytesCopied)))
	}
	if stats.FilesAlreadyExist > 0 {
		fmt.Fprintf(w, "Files skipped (already exist): %d\n", stats.FilesAlreadyExist)
	}
	if stats.SourceMissing > 0 {
		fmt.Fprintf(w, "Files missing (skipped): %d\n", stats.SourceMissing)
	}
}
