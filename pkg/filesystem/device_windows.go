//go:build windows

package filesystem

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/windows"
)

// windowsIdentity carries the volume serial number and file index that
// together identify a file object on Windows, used as the device/inode
// analogue for the same-object validation check.
type windowsIdentity struct {
	creationTime time.Time
	volumeSerial uint64
	fileIndex    uint64
}

// creationTimeAndIDs recovers the creation time from the attribute data in
// info.Sys(). It opens nothing, so volumeSerial and fileIndex are always
// left zero.
func creationTimeAndIDs(info os.FileInfo) (windowsIdentity, error) {
	// os.FileInfo on Windows doesn't expose the original path, so volume
	// serial and file index (which require an open handle, via SameObject
	// below) aren't available here; this only recovers the creation time
	// from the syscall attribute data embedded in info.Sys().
	if sys, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return windowsIdentity{
			creationTime: time.Unix(0, sys.CreationTime.Nanoseconds()),
		}, nil
	}
	return windowsIdentity{}, os.ErrInvalid
}

// SameObject reports whether two paths refer to the same underlying file
// object, used to validate that source and target roots do not alias each
// other: source and target resolving to the same file is a validation
// error.
func SameObject(a, b string) (bool, error) {
	ha, err := openForIdentity(a)
	if err != nil {
		return false, err
	}
	defer windows.CloseHandle(ha)
	hb, err := openForIdentity(b)
	if err != nil {
		return false, err
	}
	defer windows.CloseHandle(hb)

	var infoA, infoB windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(ha, &infoA); err != nil {
		return false, err
	}
	if err := windows.GetFileInformationByHandle(hb, &infoB); err != nil {
		return false, err
	}
	return infoA.VolumeSerialNumber == infoB.VolumeSerialNumber &&
		infoA.FileIndexHigh == infoB.FileIndexHigh &&
		infoA.FileIndexLow == infoB.FileIndexLow, nil
}

func openForIdentity(path string) (windows.Handle, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	return windows.CreateFile(
		p,
		0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
}
