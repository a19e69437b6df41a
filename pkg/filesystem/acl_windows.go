//go:build windows

package filesystem

import (
	"os"

	acl "github.com/hectane/go-acl"
)

// applyACL re-applies path's own current mode through the ACL API of
// github.com/hectane/go-acl. Copycat's copy primitive has already created
// path with default inheritance; this normalizes its permission bits so
// that, regardless of inherited entries, the effective access matches what
// a direct chmod would have produced on POSIX. Nothing is read from the
// source entry: its discretionary ACL and ownership are not copied. uid and
// gid are unused:
// Windows has no POSIX ownership model, and the parameters exist only to
// keep this function's signature identical to the POSIX build's.
func applyACL(path string, uid, gid uint32) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return acl.Chmod(path, info.Mode())
}

func applyDOSAttributes(path string, hidden, system bool) error {
	return SetDOSAttributes(path, hidden, system)
}
