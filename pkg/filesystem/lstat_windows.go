//go:build windows

package filesystem

import (
	"os"
)

// lstat performs the single non-following stat described by Classify. On
// Windows this uses os.Lstat (which does not follow reparse points) since
// golang.org/x/sys/windows does not expose a uniformly simpler surface for
// basic attribute retrieval than the standard library already provides.
func lstat(path string) (EntryAttrs, bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return EntryAttrs{}, false, err
	}

	attrs := EntryAttrs{
		Size:             uint64(info.Size()),
		Mode:             modeFromFileMode(info.Mode()),
		ModificationTime: info.ModTime(),
		ChangeTime:       info.ModTime(),
	}

	if sys, err := creationTimeAndIDs(info); err == nil {
		attrs.ChangeTime = sys.creationTime
		attrs.device = sys.volumeSerial
		attrs.inode = sys.fileIndex
	}

	if info.Mode()&os.ModeSymlink != 0 {
		return attrs, true, nil
	}
	if info.IsDir() {
		attrs.Kind = EntryKindDirectory
	} else if info.Mode().IsRegular() {
		attrs.Kind = EntryKindFile
	} else {
		attrs.Kind = EntryKindOther
	}
	return attrs, false, nil
}

// modeFromFileMode synthesizes a Mode value from a standard os.FileMode,
// since Windows exposes no raw mode field analogous to POSIX's st_mode.
func modeFromFileMode(m os.FileMode) Mode {
	var mode Mode
	switch {
	case m&os.ModeSymlink != 0:
		mode = ModeTypeSymbolicLink
	case m.IsDir():
		mode = ModeTypeDirectory
	default:
		mode = ModeTypeFile
	}
	if m.Perm()&0o200 == 0 {
		mode |= Mode(0o444)
	} else {
		mode |= Mode(0o666)
	}
	if m.IsDir() {
		mode |= Mode(0o111)
	}
	return mode
}
