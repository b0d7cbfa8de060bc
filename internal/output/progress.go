package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Progress renders a single-line commit progress indicator. It is purely
// cosmetic: the analysis result does not depend on it in any way.
type Progress struct {
	out   io.Writer
	label string
	last  int
}

// NewProgress creates a progress printer writing to stderr.
func NewProgress() *Progress {
	return &Progress{
		out:   os.Stderr,
		label: color.New(color.FgCyan).Sprint("commits"),
	}
}

// Update redraws the progress line. Safe to call with monotonically
// increasing completed values; the final call is followed by Finish.
func (p *Progress) Update(completed, total int) {
	p.last = total
	fmt.Fprintf(p.out, "\r%d/%d %s", completed, total, p.label)
}

// Finish terminates the progress line.
func (p *Progress) Finish() {
	if p.last > 0 {
		fmt.Fprintln(p.out)
	}
}
