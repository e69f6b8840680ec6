package binary

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// ConsoleProgress returns a ProgressFunc that rewrites a single status line on w.
// With a known size it prints "Dload progress: 42.0%", otherwise
// "Downloaded 1.2 MiB". Write errors are ignored.
func ConsoleProgress(w io.Writer) ProgressFunc {
	last := ""
	return func(p Progress) {
		var line string
		if pct, ok := p.Percent(); ok {
			line = fmt.Sprintf("Dload progress: %.1f%%", pct)
		} else {
			line = fmt.Sprintf("Downloaded %s", humanize.IBytes(uint64(p.Downloaded)))
		}
		// Skip redraws that would not change the line.
		if line == last {
			return
		}
		last = line
		_, _ = fmt.Fprintf(w, "\r%s", line)
	}
}
