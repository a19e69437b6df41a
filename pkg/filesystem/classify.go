package filesystem

import (
	"errors"
	"os"
)

// Classify reads a filesystem entry's attributes exactly once: one
// non-following stat, plus — only if that stat reports a symbolic link —
// one additional following-stat attempt to resolve the target's kind.
//
// Error mapping: a NotFound result from the follow attempt yields
// EntryKindBrokenSymlink. Any other I/O error from the follow attempt
// (permission denied, or a target filesystem whose metadata cannot be
// read, e.g. a stale network mount) yields EntryKindFileSymlink
// conservatively, so that the reconciliation walker never mistakes an
// unreadable link for one to recreate destructively.
func Classify(path string) (EntryAttrs, error) {
	attrs, isSymlink, err := lstat(path)
	if err != nil {
		return EntryAttrs{}, err
	}
	if !isSymlink {
		return attrs, nil
	}

	target, err := os.Readlink(path)
	if err != nil {
		return EntryAttrs{}, err
	}
	attrs.LinkTarget = target

	targetInfo, followErr := os.Stat(path)
	switch {
	case followErr == nil:
		if targetInfo.IsDir() {
			attrs.Kind = EntryKindDirSymlink
		} else if targetInfo.Mode().IsRegular() {
			attrs.Kind = EntryKindFileSymlink
		} else {
			attrs.Kind = EntryKindOtherSymlink
		}
	case errors.Is(followErr, os.ErrNotExist):
		attrs.Kind = EntryKindBrokenSymlink
	default:
		// Conservative: treat an unreadable target (permission error, dead
		// network mount, etc.) as a file symlink rather than risk a
		// destructive broken-symlink recreation. See .
		attrs.Kind = EntryKindFileSymlink
	}

	return attrs, nil
}

// IsNotExist reports whether err indicates that the entry being classified
// does not exist at all (as opposed to existing but being unreadable).
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
