// Package qlog provides a value-typed progress logger, threaded
// explicitly through Compress calls (via qtc.Options) rather than held as
// package-level mutable state (the antipattern flagged in Design Notes
// §9: "the logger uses process-wide state... re-architect as a
// value-typed logger explicitly threaded through calls").
package qlog

import (
	"fmt"
	"io"
	"log"
)

// Logger pairs an io.Writer sink with a verbosity flag. The zero value is a
// silent logger (Verbose is false and Out is nil), so an empty
// qlog.Logger{} is always safe to pass around.
type Logger struct {
	Out     io.Writer
	Verbose bool
}

// Discard returns a Logger that never writes anything.
func Discard() Logger { return Logger{} }

// New returns a Logger that writes to w when verbose is true.
func New(w io.Writer, verbose bool) Logger {
	return Logger{Out: w, Verbose: verbose}
}

// Printf writes a formatted progress line if the logger is verbose and
// has a sink; otherwise it is a no-op.
func (l Logger) Printf(format string, args ...any) {
	if !l.Verbose || l.Out == nil {
		return
	}
	fmt.Fprintf(l.Out, format+"\n", args...)
}

// Std returns a *log.Logger backed by this Logger's sink, for callers
// that need the standard library interface (e.g. passing to a
// third-party component that expects one). Returns nil if the logger is
// silent.
func (l Logger) Std() *log.Logger {
	if !l.Verbose || l.Out == nil {
		return nil
	}
	return log.New(l.Out, "", 0)
}
