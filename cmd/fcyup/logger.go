package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns the diagnostic logger. Status lines for the user go to
// stdout separately; this only carries debug and warning records.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "fcyup",
		Level:  log.InfoLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportCaller(true)
	}
	return logger
}
