// Package logging provides the injectable log sink the rest of the
// module writes diagnostics through, replacing the debug printf calls
// (PK_DEBUG, dw_printf) scattered through the original C library with a
// single structured logger callers can redirect or silence.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Logger is the structured logger every package accepts instead of
// calling a global printf. New returns one writing human-readable,
// timestamped output to a caller-chosen writer at a caller-chosen level.
type Logger = log.Logger

// New creates a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return l
}

// Discard is a logger that drops everything: it writes to io.Discard at a
// level above Fatal, so no message passes its level check.
var Discard = New(io.Discard, log.FatalLevel+1)
