package filesystem

// EntryKind identifies the classification of a filesystem entry, derived
// once per visit by Classify. It corresponds to EntryKind
// tagged variant.
type EntryKind uint8

const (
	// EntryKindFile is a regular file.
	EntryKindFile EntryKind = iota
	// EntryKindDirectory is a directory.
	EntryKindDirectory
	// EntryKindFileSymlink is a symbolic link whose target resolves to a
	// regular file (or whose target's kind could not be determined because
	// of an I/O error during the follow attempt — demoted here
	// conservatively per ).
	EntryKindFileSymlink
	// EntryKindDirSymlink is a symbolic link whose target resolves to a
	// directory.
	EntryKindDirSymlink
	// EntryKindBrokenSymlink is a symbolic link whose target does not exist.
	EntryKindBrokenSymlink
	// EntryKindOtherSymlink is a symbolic link whose target resolves to
	// something that is neither a file nor a directory (device, socket,
	// FIFO, ...).
	EntryKindOtherSymlink
	// EntryKindOther is a non-symlink entry that is neither a file nor a
	// directory (device, socket, FIFO, ...).
	EntryKindOther
)

// String renders a human-readable name for the kind, used in log lines.
func (k EntryKind) String() string {
	switch k {
	case EntryKindFile:
		return "file"
	case EntryKindDirectory:
		return "directory"
	case EntryKindFileSymlink:
		return "file-symlink"
	case EntryKindDirSymlink:
		return "dir-symlink"
	case EntryKindBrokenSymlink:
		return "broken-symlink"
	case EntryKindOtherSymlink:
		return "other-symlink"
	case EntryKindOther:
		return "other"
	default:
		return "unknown"
	}
}

// IsSymlink reports whether the kind was derived from a symbolic link entry.
func (k EntryKind) IsSymlink() bool {
	switch k {
	case EntryKindFileSymlink, EntryKindDirSymlink, EntryKindBrokenSymlink, EntryKindOtherSymlink:
		return true
	default:
		return false
	}
}

// IsDirectoryLike reports whether the kind should be traversed as a
// directory by the reconciliation walker (a real directory or a symlink
// resolving to one).
func (k EntryKind) IsDirectoryLike() bool {
	return k == EntryKindDirectory || k == EntryKindDirSymlink
}

// IsFileLike reports whether the kind is handled by the file copy primitive
// rather than the directory mirror primitive.
func (k EntryKind) IsFileLike() bool {
	switch k {
	case EntryKindFile, EntryKindFileSymlink, EntryKindBrokenSymlink, EntryKindOtherSymlink, EntryKindOther:
		return true
	default:
		return false
	}
}
