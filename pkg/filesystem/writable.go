package filesystem

import (
	"fmt"
	"os"

	"github.com/copycat-sync/copycat/pkg/must"
)

// checkWritable verifies that directory accepts a new file, by creating and
// immediately removing a probe file. This is the simplest portable test
// available; checking permission bits directly is unreliable in the
// presence of ACLs, network filesystem mappings, and (on Windows) the
// absence of POSIX-style permission semantics entirely.
func checkWritable(directory string) error {
	probe, err := os.CreateTemp(directory, TemporaryNamePrefix+"writable-")
	if err != nil {
		return fmt.Errorf("directory does not appear writable: %w", err)
	}
	name := probe.Name()
	must.Close(probe, nil)
	must.OSRemove(name, nil)
	return nil
}

// TemporaryNamePrefix is the prefix used for all temporary files and
// directories Copycat creates, so they are easy to recognize (and recover
// from) if a run is interrupted mid-copy.
const TemporaryNamePrefix = ".copycat-tmp-"
