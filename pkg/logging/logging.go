package logging

import (
	"os"
)

// DefaultLogger is a logger at LevelInfo writing to standard error, suitable
// as a fallback for code paths that don't have an explicit logger injected.
func DefaultLogger() *Logger {
	return NewLogger(LevelInfo, os.Stderr)
}
