package progress

import (
	"fmt"
	"io"
	"os"

	"audiobook-exporter/core/export"

	"github.com/mattn/go-isatty"
	pb "github.com/schollz/progressbar/v3"
)

const barWidth = 40

// New returns a per-book progress bar on out, or a no-op when out is not a
// terminal.
func New(out *os.File, total int) export.Progress {
	if out == nil || !IsTerminal(out) {
		return export.NopProgress()
	}
	return newBar(out, total)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type bar struct {
	pb  *pb.ProgressBar
	out io.Writer
}

func newBar(out io.Writer, total int) *bar {
	return &bar{
		out: out,
		pb: pb.NewOptions(total,
			pb.OptionSetWriter(out),
			pb.OptionSetWidth(barWidth),
			pb.OptionShowCount(),
			pb.OptionSetPredictTime(false),
			pb.OptionSpinnerType(14),
			pb.OptionSetTheme(pb.Theme{
				Saucer:        "#",
				SaucerHead:    ">",
				SaucerPadding: "-",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		),
	}
}

func (b *bar) Describe(description string) {
	b.pb.Describe(description)
}

func (b *bar) Increment() {
	_ = b.pb.Add(1)
}

func (b *bar) Finish() {
	b.pb.Describe("Done!")
	_ = b.pb.Finish()
	fmt.Fprintln(b.out)
}
