//go:build !windows

package filesystem

import (
	"golang.org/x/sys/unix"
)

const (
	// ModeTypeMask isolates type information from a Mode.
	ModeTypeMask = Mode(unix.S_IFMT)
	// ModeTypeDirectory represents a directory.
	ModeTypeDirectory = Mode(unix.S_IFDIR)
	// ModeTypeFile represents a regular file.
	ModeTypeFile = Mode(unix.S_IFREG)
	// ModeTypeSymbolicLink represents a symbolic link.
	ModeTypeSymbolicLink = Mode(unix.S_IFLNK)
	// ModePermissionsMask isolates permission bits from a Mode.
	ModePermissionsMask = Mode(unix.S_IRWXU | unix.S_IRWXG | unix.S_IRWXO)
)

// DefaultDirectoryMode is the permission mode applied to newly created
// directories: 0755 on POSIX.
const DefaultDirectoryMode = Mode(0o755)
