package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Canonicalize resolves path to an absolute, cleaned form. Unlike
// filepath.EvalSymlinks it does not require the path to exist, so it can be
// used on a target root whose parent exists but which has not yet been
// created.
func Canonicalize(path string) (string, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("unable to compute absolute path: %w", err)
	}
	return filepath.Clean(absolute), nil
}

// Contains reports whether candidate is equal to root or descends from it,
// comparing cleaned, absolute paths. It is used to enforce // "target path equals source path or descends from source" validation
// error.
func Contains(root, candidate string) bool {
	if root == candidate {
		return true
	}
	relative, err := filepath.Rel(root, candidate)
	if err != nil {
		return false
	}
	return relative != ".." && !strings.HasPrefix(relative, ".."+string(filepath.Separator))
}

// EnsureDirectoryExists verifies that path exists and is a directory. It
// does not create it.
func EnsureDirectoryExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

// EnsureParentWritable verifies that path's parent directory exists and
// appears writable, for the case where the target root itself does not yet
// exist: a target root is valid if it either already exists as a writable
// directory or its parent does.
func EnsureParentWritable(path string) error {
	parent := filepath.Dir(path)
	info, err := os.Stat(parent)
	if err != nil {
		return fmt.Errorf("parent directory does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("parent %s is not a directory", parent)
	}
	return checkWritable(parent)
}
