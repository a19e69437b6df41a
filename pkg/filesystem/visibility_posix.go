//go:build !windows

package filesystem

import (
	"path/filepath"
	"strings"
)

// IsHidden reports whether the entry at path is hidden.
// On POSIX, hidden status is purely a naming convention: the base name
// begins with a dot.
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}

// IsDOSSystem reports whether the entry at path has the DOS "system"
// attribute. POSIX filesystems have no such concept, so this is always
// false.
func IsDOSSystem(path string) bool {
	return false
}

// SupportsDOSAttributes reports whether the filesystem containing path
// exposes DOS-style hidden/system attribute bits.
func SupportsDOSAttributes(path string) bool {
	return false
}

// SupportsPOSIXPermissions reports whether the filesystem containing path
// honors POSIX permission bits.
func SupportsPOSIXPermissions(path string) bool {
	return true
}
