package console

import (
	"io"
	"log/slog"

	"github.com/pterm/pterm"
)

var logLevels = map[string]pterm.LogLevel{
	"debug": pterm.LogLevelDebug,
	"info":  pterm.LogLevelInfo,
	"warn":  pterm.LogLevelWarn,
	"error": pterm.LogLevelError,
}

// NewLogger returns a slog logger backed by the pterm logger. Unknown levels
// fall back to warn.
func NewLogger(w io.Writer, level string) *slog.Logger {
	lvl, ok := logLevels[level]
	if !ok {
		lvl = pterm.LogLevelWarn
	}

	logger := pterm.DefaultLogger.WithWriter(w).WithLevel(lvl)
	return slog.New(pterm.NewSlogHandler(logger))
}
