//go:build !windows

package filesystem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// applyACL propagates POSIX ownership as the closest available analogue to
// an ACL on this platform: the target's owning user and group are set to
// match the source via Lchown, following the link itself rather than its
// target. Full POSIX ACL entry propagation (setfacl-equivalent) is
// intentionally out of scope; ownership and permission bits (the latter
// applied unconditionally in ApplyMetadata) are the substitute.
func applyACL(path string, uid, gid uint32) error {
	if err := unix.Lchown(path, int(uid), int(gid)); err != nil {
		return fmt.Errorf("unable to set ownership: %w", err)
	}
	return nil
}

// applyDOSAttributes is a no-op on POSIX, which has no DOS attribute
// concept (SupportsDOSAttributes already guards calls to this function, but
// it is kept for symmetry with the Windows build).
func applyDOSAttributes(path string, hidden, system bool) error {
	return nil
}
