//go:build !windows

package filesystem

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// lstat performs the single non-following stat described by Classify,
// returning provisional attrs (Kind set to File/Directory/Other/symlink
// placeholder) and whether the entry is a symbolic link requiring a follow
// attempt.
func lstat(path string) (EntryAttrs, bool, error) {
	var raw unix.Stat_t
	if err := unix.Lstat(path, &raw); err != nil {
		return EntryAttrs{}, false, &os.PathError{Op: "lstat", Path: path, Err: err}
	}

	mode := Mode(raw.Mode)
	attrs := EntryAttrs{
		Size:             uint64(raw.Size),
		Mode:             mode,
		ModificationTime: time.Unix(raw.Mtim.Sec, raw.Mtim.Nsec),
		ChangeTime:       time.Unix(raw.Ctim.Sec, raw.Ctim.Nsec),
		device:           uint64(raw.Dev),
		inode:            raw.Ino,
		uid:              raw.Uid,
		gid:              raw.Gid,
	}

	switch mode & ModeTypeMask {
	case ModeTypeSymbolicLink:
		return attrs, true, nil
	case ModeTypeDirectory:
		attrs.Kind = EntryKindDirectory
	case ModeTypeFile:
		attrs.Kind = EntryKindFile
	default:
		attrs.Kind = EntryKindOther
	}
	return attrs, false, nil
}
