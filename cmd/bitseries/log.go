package main

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// Log verbosity levels, passed to logr.Logger.V.
const (
	// SummaryLogLevel carries the one-line result of a run.
	SummaryLogLevel = 0
	// DetailLogLevel carries the resolved profile, the chosen seed, the
	// split sizes and the fitted matrices.
	DetailLogLevel = 1
	// TraceLogLevel carries per-step forecasts of the test part.
	TraceLogLevel = 2
)

// newLogger returns a logr.Logger writing key/value lines to w, showing
// messages up to the given verbosity.
func newLogger(w io.Writer, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity}).WithName("bitseries")
}
