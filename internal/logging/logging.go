package logging

import (
	"io"
	"log/slog"
	"os"
)

// DebugEnv enables debug output when set to any non-empty value.
const DebugEnv = "WORKHOURS_DEBUG"

// DebugEnabled returns true if debug mode is enabled via WORKHOURS_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// New returns a text logger writing to w. Debug records are emitted only
// when debug is true or WORKHOURS_DEBUG is set.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug || DebugEnabled() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
