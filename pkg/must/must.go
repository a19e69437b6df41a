// Package must provides helpers for operations whose errors are worth
// logging but not worth propagating — closing a file after a different
// error has already occurred, removing a stale temporary file, and similar
// best-effort cleanup.
package must

import (
	"io"
	"os"

	"github.com/copycat-sync/copycat/pkg/logging"
)

// Close closes c, logging a warning if it fails.
func Close(c io.Closer, logger *logging.Logger) {
	if err := c.Close(); err != nil {
		logger.Warnf("unable to close: %s", err.Error())
	}
}

// OSRemove removes the named file, logging a warning if it fails.
func OSRemove(name string, logger *logging.Logger) {
	if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
		logger.Warnf("unable to remove '%s': %s", name, err.Error())
	}
}

// OSRemoveAll removes the named path and any children, logging a warning if
// it fails.
func OSRemoveAll(name string, logger *logging.Logger) {
	if err := os.RemoveAll(name); err != nil {
		logger.Warnf("unable to remove '%s': %s", name, err.Error())
	}
}
