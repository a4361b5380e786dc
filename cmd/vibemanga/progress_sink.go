package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/ImTheFrack/VibeManga/internal/progress"
)

// isTerminal reports whether writer is a TTY, the same check the teacher's
// status renderer uses to decide between colorized/bar output and plain
// lines.
func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newCLISink returns a progress.Sink appropriate for out: a live progress
// bar when out is a terminal, a sink that writes one line per completed
// item otherwise. label identifies the operation in the plain-line form.
func newCLISink(out io.Writer, label string) (progress.Sink, func()) {
	if !isTerminal(out) {
		return progress.SinkFunc(func(ev progress.Event) {
			if ev.HasTotal {
				fmt.Fprintf(out, "%s: %d/%d %s\n", label, ev.Done, ev.Total, ev.Label)
			} else {
				fmt.Fprintf(out, "%s: %d %s\n", label, ev.Done, ev.Label)
			}
		}), func() {}
	}

	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWriter(out),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	sink := progress.SinkFunc(func(ev progress.Event) {
		if ev.HasTotal {
			bar.ChangeMax64(int64(ev.Total))
		}
		bar.Set64(int64(ev.Done))
		if ev.Label != "" {
			bar.Describe(fmt.Sprintf("%s: %s", label, ev.Label))
		}
	})
	return sink, func() { bar.Finish() }
}
