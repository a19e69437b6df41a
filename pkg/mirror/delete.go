package mirror

import (
	"os"

	"github.com/copycat-sync/copycat/pkg/configuration"
	"github.com/copycat-sync/copycat/pkg/copycat"
	"github.com/copycat-sync/copycat/pkg/logging"
)

// deleteEntry removes a single non-directory entry (file or symlink),
// wrapping the failure as an EntryError so callers can count it without
// unwinding the worker.
func deleteEntry(path string, logger *logging.Logger) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return copycat.NewEntryError(path, err)
	}
	return nil
}

// deleteTree removes a directory and everything beneath it unconditionally,
// used when a conflicting target entry of a different kind must be
// replaced by the source's own kind. The source is authoritative in that
// case, so forcing the removal is correct; it must not be used for Phase
// B's target-only deletion, where a child can be protected by a
// target-filter Include rule.
func deleteTree(path string, logger *logging.Logger) error {
	if err := os.RemoveAll(path); err != nil {
		return copycat.NewEntryError(path, err)
	}
	return nil
}

// deleteTreeIfEmpty removes path only if it is currently empty, reporting
// whether the removal happened. Used by Phase B's target-only directory
// deletion, where each child has already been individually resolved
// against the target filter before the walker considers the parent
// directory itself: a child that survived because it matched a
// target-filter Include rule must not be swept away merely because its
// parent is also a deletion candidate.
func deleteTreeIfEmpty(path string, logger *logging.Logger) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, copycat.NewEntryError(path, err)
	}
	if len(entries) > 0 {
		logger.Debugf("keeping %s: still contains a target-filter protected entry", path)
		return false, nil
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, copycat.NewEntryError(path, err)
	}
	return true, nil
}

// ExecuteDelete performs the Phase B deletion named by action for one
// target-only entry, the deletion counterpart of Execute's file-copy
// dispatch. It reports whether the target was actually removed: a
// directory that still contains a target-filter-protected child is left
// in place and reported as not removed, so the walker's deleted-entry
// stats stay accurate. Honors cfg.DryRun.
func ExecuteDelete(cfg *configuration.SyncConfig, action ActionKind, targetPath string, logger *logging.Logger) (bool, error) {
	if cfg.DryRun {
		return false, nil
	}
	switch action {
	case ActionDeleteTree:
		return deleteTreeIfEmpty(targetPath, logger)
	case ActionDeleteFile, ActionDeleteSymlink:
		if err := deleteEntry(targetPath, logger); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, copycat.NewInvariantViolation("ExecuteDelete called with non-delete action %s", action)
	}
}
