package converter

import (
	"fmt"
	"io"
)

// Reporter receives per-file outcomes in listing order.
type Reporter interface {
	Skipped(name string)
	Converted(src, dst string)
	Failed(name string, err error)
	Done(summary Summary)
}

// TextReporter writes the plain line format: notices to Out, failures to Err.
// The closing summary line is only written when no file failed.
type TextReporter struct {
	Out io.Writer
	Err io.Writer
}

func (r TextReporter) Skipped(name string) {
	fmt.Fprintf(r.Out, "Přeskočeno (už obrázek): %s\n", name)
}

func (r TextReporter) Converted(src, dst string) {
	fmt.Fprintf(r.Out, "OK: %s -> %s\n", src, dst)
}

func (r TextReporter) Failed(name string, err error) {
	fmt.Fprintf(r.Err, "ERROR %s: %v\n", name, err)
}

func (r TextReporter) Done(summary Summary) {
	if summary.Failed() {
		return
	}
	fmt.Fprintf(r.Out, "\nPřevedeno: %d, přeskočeno: %d\n", summary.Converted, summary.Skipped)
}
