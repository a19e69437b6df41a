//go:build !windows

package filesystem

import (
	"golang.org/x/sys/unix"
)

// SameObject reports whether two paths refer to the same underlying
// filesystem object (same device and inode), used to validate that source
// and target roots do not alias each other.
func SameObject(a, b string) (bool, error) {
	var statA, statB unix.Stat_t
	if err := unix.Stat(a, &statA); err != nil {
		return false, err
	}
	if err := unix.Stat(b, &statB); err != nil {
		return false, err
	}
	return statA.Dev == statB.Dev && statA.Ino == statB.Ino, nil
}
