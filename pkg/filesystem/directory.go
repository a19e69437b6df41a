package filesystem

import (
	"fmt"
	"os"
)

// CreateShallowDirectory creates a new, empty directory at path, per
// "shallow directory copy": the directory entry is created
// and its metadata is applied, but its contents are never recursed into
// here — that is the Reconciliation Walker's job.
func CreateShallowDirectory(path string) error {
	if err := os.Mkdir(path, os.FileMode(DefaultDirectoryMode)); err != nil {
		return fmt.Errorf("unable to create directory: %w", err)
	}
	return nil
}
