package dbg

import (
	"io"
	"os"
)

// Printer writes debug output to a single text sink. Disabled printers check
// their flag before any formatting work, so they never touch the writer.
//
// Printer performs no locking. Concurrent callers share the sink the same way
// concurrent writers share stdout: partial writes may interleave, and callers
// that need atomic lines must serialize externally.
type Printer struct {
	w       io.Writer
	enabled bool
}

// New returns a Printer writing to w. A nil w falls back to os.Stdout.
// The enabled flag is fixed for the lifetime of the Printer.
func New(w io.Writer, enabled bool) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w, enabled: enabled}
}

// std is the process-wide printer behind the package-level functions.
var std = New(os.Stdout, Enabled)

// Default returns the process-wide printer: os.Stdout, enabled according to
// the dbgprint build tag.
func Default() *Printer { return std }
