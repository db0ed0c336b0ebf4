// Package rlog provides the single structured logger used across rcomp.
//
// All diagnostics described by spec.md §7 (startup-fatal, per-window
// soft, GL runtime, inconsistency) go through this logger to stderr.
package rlog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// L is the process-wide logger. rcomp has no persisted state or
// configuration (§6), so there is nothing to parameterize construction
// with beyond the output stream.
var L = New(os.Stderr)

// New builds a console-formatted zerolog.Logger writing to w.
func New(w *os.File) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !isatty(w)}).
		With().
		Timestamp().
		Logger()
}

func isatty(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// Fatalf reports a startup-fatal error (§7) to stderr and exits with
// code 1, matching the "one-line message naming the specific cause"
// contract in §6.
func Fatalf(cause string, err error) {
	L.Fatal().Err(err).Msg(cause)
}
