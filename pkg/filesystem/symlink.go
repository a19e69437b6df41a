package filesystem

import (
	"fmt"
	"os"
)

// CreateSymlink recreates a symbolic link at path pointing to target. It
// never follows an existing entry at path; callers are responsible for
// removing any conflicting entry first.
func CreateSymlink(path, target string) error {
	if err := os.Symlink(target, path); err != nil {
		return fmt.Errorf("unable to create symlink: %w", err)
	}
	return nil
}

// ReadSymlinkTarget reads the raw link text of the symlink at path, without
// following it.
func ReadSymlinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", fmt.Errorf("unable to read symlink target: %w", err)
	}
	return target, nil
}

// SameLinkTarget reports whether two symlinks point at the identical raw
// target text. A directory symlink whose target differs from the existing
// target symlink is deleted and recreated, rather than assumed equal
// merely because both are symlinks.
func SameLinkTarget(a, b string) bool {
	return a == b
}
