//go:build windows

package filesystem

import (
	"golang.org/x/sys/windows"
)

// IsHidden reports whether the entry at path carries the Win32
// FILE_ATTRIBUTE_HIDDEN bit.
func IsHidden(path string) bool {
	attributes, err := fileAttributes(path)
	if err != nil {
		return false
	}
	return attributes&windows.FILE_ATTRIBUTE_HIDDEN != 0
}

// IsDOSSystem reports whether the entry at path carries the Win32
// FILE_ATTRIBUTE_SYSTEM bit.
func IsDOSSystem(path string) bool {
	attributes, err := fileAttributes(path)
	if err != nil {
		return false
	}
	return attributes&windows.FILE_ATTRIBUTE_SYSTEM != 0
}

// SupportsDOSAttributes reports whether the filesystem containing path
// exposes DOS-style hidden/system attribute bits. All Windows-native
// filesystems do.
func SupportsDOSAttributes(path string) bool {
	return true
}

// SupportsPOSIXPermissions reports whether the filesystem containing path
// honors POSIX permission bits. Windows filesystems do not.
func SupportsPOSIXPermissions(path string) bool {
	return false
}

func fileAttributes(path string) (uint32, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	return windows.GetFileAttributes(p)
}

// SetDOSAttributes applies the hidden/system bits recorded in attributes to
// path, used by the copy primitive when propagating DOS metadata.
func SetDOSAttributes(path string, hidden, system bool) error {
	attributes, err := fileAttributes(path)
	if err != nil {
		return err
	}
	if hidden {
		attributes |= windows.FILE_ATTRIBUTE_HIDDEN
	} else {
		attributes &^= windows.FILE_ATTRIBUTE_HIDDEN
	}
	if system {
		attributes |= windows.FILE_ATTRIBUTE_SYSTEM
	} else {
		attributes &^= windows.FILE_ATTRIBUTE_SYSTEM
	}
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	return windows.SetFileAttributes(p, attributes)
}
