package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/copycat-sync/copycat/pkg/logging"
	"github.com/copycat-sync/copycat/pkg/must"
)

// RenameAtomic renames oldPath to newPath, overwriting newPath if it
// already exists. On POSIX this is always atomic; on Windows it uses
// MoveFileEx with the replace-existing flag, which is atomic on NTFS for
// same-volume renames. If the rename fails (for example because oldPath and
// newPath are on different volumes), the caller should fall back to a
// direct overwrite.
func RenameAtomic(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// CopyFileContentAtomic copies the contents of source into a temporary
// sibling of destination and renames it into place, per // "writes to a sibling temp name, then renames atomically; on rename
// failure falls back to direct overwrite." It returns the number of bytes
// copied.
func CopyFileContentAtomic(ctx context.Context, source, destination string, permissions os.FileMode, logger *logging.Logger) (int64, error) {
	directory := filepath.Dir(destination)

	input, err := os.Open(source)
	if err != nil {
		return 0, fmt.Errorf("unable to open source file: %w", err)
	}
	defer must.Close(input, logger)

	temporary, err := os.CreateTemp(directory, TemporaryNamePrefix+"copy-")
	if err != nil {
		return 0, fmt.Errorf("unable to create temporary file: %w", err)
	}
	temporaryName := temporary.Name()

	written, copyErr := streamInChunks(ctx, temporary, input)
	if copyErr != nil {
		must.Close(temporary, logger)
		must.OSRemove(temporaryName, logger)
		return 0, fmt.Errorf("unable to write file content: %w", copyErr)
	}
	if err := temporary.Close(); err != nil {
		must.OSRemove(temporaryName, logger)
		return 0, fmt.Errorf("unable to close temporary file: %w", err)
	}
	if err := os.Chmod(temporaryName, permissions); err != nil {
		must.OSRemove(temporaryName, logger)
		return 0, fmt.Errorf("unable to set temporary file permissions: %w", err)
	}

	if err := RenameAtomic(temporaryName, destination); err != nil {
		logger.Debugf("atomic rename failed for %s, falling back to direct overwrite: %s", destination, err)
		if fallbackErr := copyDirectOverwrite(temporaryName, destination, permissions); fallbackErr != nil {
			must.OSRemove(temporaryName, logger)
			return 0, fmt.Errorf("unable to rename or overwrite destination: %w", fallbackErr)
		}
		must.OSRemove(temporaryName, logger)
	}

	return written, nil
}

// copyDirectOverwrite is the fallback used when an atomic rename isn't
// possible (cross-volume copy, some network filesystems). It is not
// crash-safe, but it is only reached after the rename path has already
// failed.
func copyDirectOverwrite(temporaryPath, destination string, permissions os.FileMode) error {
	data, err := os.ReadFile(temporaryPath)
	if err != nil {
		return err
	}
	return os.WriteFile(destination, data, permissions)
}

// chunkSize bounds the granularity at which CopyFileContentAtomic checks
// for cancellation between writes, so a cancelled context is observed
// within about one chunk instead of only after the whole file copies.
const chunkSize = 1 << 20

func streamInChunks(ctx context.Context, destination *os.File, source io.Reader) (int64, error) {
	buffer := make([]byte, chunkSize)
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		n, err := source.Read(buffer)
		if n > 0 {
			if _, writeErr := destination.Write(buffer[:n]); writeErr != nil {
				return total, writeErr
			}
			total += int64(n)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return total, nil
			}
			return total, err
		}
	}
}
