// Package progress reports the files written by a static export.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Reporter receives one Update per exported file.
type Reporter interface {
	Start(total int)
	Update(done int, file string)
	Finish()
}

// NewReporter picks a progress bar when w is an interactive terminal and
// plain log lines otherwise, or when running under CI.
func NewReporter(w *os.File) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LineReporter{Out: w}
	}
	if !isatty.IsTerminal(w.Fd()) && !isatty.IsCygwinTerminal(w.Fd()) {
		return &LineReporter{Out: w}
	}
	return &BarReporter{Out: w}
}

// BarReporter draws a progress bar naming the file being written.
type BarReporter struct {
	Out io.Writer
	bar *progressbar.ProgressBar
}

func (r *BarReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.Out),
		progressbar.OptionSetDescription("Exporting site"),
		progressbar.OptionSetItsString("files"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *BarReporter) Update(done int, file string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(shorten(file, 32))
	_ = r.bar.Set(done)
}

func (r *BarReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LineReporter writes one line per file and a closing summary.
type LineReporter struct {
	Out   io.Writer
	Now   func() time.Time
	total int
	done  int
	start time.Time
}

func (r *LineReporter) Start(total int) {
	r.total = total
	r.start = r.now()
	fmt.Fprintf(r.out(), "Exporting %d files\n", total)
}

func (r *LineReporter) Update(done int, file string) {
	r.done = done
	fmt.Fprintf(r.out(), "  [%*d/%d] %s\n", len(fmt.Sprint(r.total)), done, r.total, file)
}

func (r *LineReporter) Finish() {
	elapsed := r.now().Sub(r.start).Round(time.Millisecond)
	fmt.Fprintf(r.out(), "Export complete: %d of %d files in %s\n", r.done, r.total, elapsed)
}

func (r *LineReporter) out() io.Writer {
	if r.Out == nil {
		return os.Stderr
	}
	return r.Out
}

func (r *LineReporter) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int)          {}
func (Nop) Update(int, string) {}
func (Nop) Finish()            {}

// shorten keeps the tail of long paths so the bar stays on one line.
func shorten(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
