// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// setupLogging installs a charmbracelet/log handler as the default slog
// logger. Verbose mode lowers the level to debug.
func setupLogging(w io.Writer, verbose bool) *slog.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		Prefix: "palinimi",
		Level:  level,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
