package filesystem

import (
	"os"
	"time"
)

// EntryAttrs holds the attributes read for a single filesystem entry during
// one visit. It is derived from exactly one non-following stat plus, for
// symlinks, one following stat attempt, and is never re-read within the
// same visit.
type EntryAttrs struct {
	// Kind is the entry's classification.
	Kind EntryKind
	// Size is the entry's size in bytes, as reported by the non-following
	// stat. For symlinks this is the size of the link text, not the target.
	Size uint64
	// Mode is the raw POSIX-style mode bits (permissions plus type bits).
	Mode Mode
	// ModificationTime is the entry's last-modified time.
	ModificationTime time.Time
	// ChangeTime is the entry's last-status-change time (POSIX ctime; on
	// Windows this is populated from the creation time, the closest
	// analogue available).
	ChangeTime time.Time
	// LinkTarget is the raw symlink target text, populated only when Kind
	// is one of the symlink kinds.
	LinkTarget string
	// device and inode identify the underlying filesystem object, used for
	// the same-inode validation check and symlink-loop detection. They are
	// zero on platforms/filesystems that don't expose stable values.
	device uint64
	inode  uint64
	// uid and gid are the owning user and group ids from the non-following
	// stat, used to propagate ownership when --copy-acl is set. Both are
	// zero on Windows, which has no POSIX ownership model.
	uid uint32
	gid uint32
}

// SameObjectAs reports whether two EntryAttrs values refer to the same
// underlying filesystem object (same device and inode), used to validate
// that source and target roots do not alias each other.
func (a EntryAttrs) SameObjectAs(other EntryAttrs) bool {
	if a.device == 0 && a.inode == 0 {
		return false
	}
	return a.device == other.device && a.inode == other.inode
}

// Identity returns the device and inode pair used to recognize that two
// visits reached the same underlying filesystem object, used by the
// reconciliation walker's symlink-loop detection. The pair is zero on
// platforms/filesystems that don't expose stable values, in which case
// loop detection based on it is meaningless.
func (a EntryAttrs) Identity() (device, inode uint64) {
	return a.device, a.inode
}

// Ownership returns the owning user and group ids captured by the
// non-following stat, used to propagate ownership when --copy-acl is set.
// Both are zero on Windows, which has no POSIX ownership model.
func (a EntryAttrs) Ownership() (uid, gid uint32) {
	return a.uid, a.gid
}

// IsRegularFile reports whether the attrs describe a plain regular file
// (not a symlink, not a directory).
func (a EntryAttrs) IsRegularFile() bool {
	return a.Kind == EntryKindFile
}

// Permissions isolates the POSIX permission bits from Mode.
func (a EntryAttrs) Permissions() os.FileMode {
	return os.FileMode(a.Mode & ModePermissionsMask)
}

// truncateToSecond truncates a time.Time to one-second precision, used by
// the size+mtime equality criterion below, which never falls back to
// content hashing.
func truncateToSecond(t time.Time) time.Time {
	return t.Truncate(time.Second)
}

// EqualForSync reports whether a source file and an existing target file
// are equal for sync purposes: their sizes match and their modification
// times match to one-second precision. It is only meaningful when both
// attrs describe regular files.
func EqualForSync(source, target EntryAttrs) bool {
	if source.Size != target.Size {
		return false
	}
	return truncateToSecond(source.ModificationTime).Equal(truncateToSecond(target.ModificationTime))
}
