package filesystem

import (
	"fmt"
	"os"
	"time"

	"github.com/copycat-sync/copycat/pkg/logging"
)

// MetadataOptions controls which metadata the copy primitive propagates
// from a source entry to its target counterpart.
type MetadataOptions struct {
	// ModificationTime is applied to the target via Chtimes.
	ModificationTime time.Time
	// Permissions are the POSIX permission bits to apply.
	Permissions os.FileMode
	// Hidden and System carry the DOS attribute bits to apply on platforms
	// that support them.
	Hidden bool
	System bool
	// CopyACL indicates whether ACL/ownership propagation was requested via
	// --copy-acl.
	CopyACL bool
	// UID and GID are the owning user/group ids to propagate when CopyACL is
	// set. Ignored on Windows.
	UID uint32
	GID uint32
}

// ApplyMetadata applies the requested metadata to path, following
// platform rules: on Windows, DOS attributes are preserved and POSIX
// permissions are ignored; on POSIX, permission bits are preserved and
// the DOS system flag is not applicable. ACL propagation failures are
// demoted to warnings (the entry is still considered copied).
func ApplyMetadata(path string, options MetadataOptions, logger *logging.Logger) error {
	if !options.ModificationTime.IsZero() {
		if err := os.Chtimes(path, options.ModificationTime, options.ModificationTime); err != nil {
			return fmt.Errorf("unable to set modification time: %w", err)
		}
	}

	if SupportsPOSIXPermissions(path) {
		if err := os.Chmod(path, options.Permissions); err != nil {
			return fmt.Errorf("unable to set permissions: %w", err)
		}
	}

	if SupportsDOSAttributes(path) {
		if err := applyDOSAttributes(path, options.Hidden, options.System); err != nil {
			logger.Warnf("unable to set DOS attributes on %s: %s", path, err.Error())
		}
	}

	if options.CopyACL {
		if err := applyACL(path, options.UID, options.GID); err != nil {
			logger.Warnf("unable to propagate ACL for %s, file still considered copied: %s", path, err.Error())
		}
	}

	return nil
}
