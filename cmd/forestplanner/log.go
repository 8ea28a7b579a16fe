package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func newLogger(verbose bool) *log.Logger {
	lvl := log.InfoLevel
	if verbose {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           lvl,
	})
}
