package mirror

import (
	"context"

	"github.com/copycat-sync/copycat/pkg/configuration"
	"github.com/copycat-sync/copycat/pkg/copycat"
	"github.com/copycat-sync/copycat/pkg/filesystem"
	"github.com/copycat-sync/copycat/pkg/logging"
)

// Execute performs the mutation named by action for one file-like entry.
// It is the single entry point the reconciliation
// walker calls once DecideFileEntry has chosen an action; ActionSkip is a
// no-op here (callers should avoid dispatching it at all, but Execute
// tolerates it for simplicity at call sites).
func Execute(ctx context.Context, cfg *configuration.SyncConfig, action ActionKind, sourcePath, targetPath string, source filesystem.EntryAttrs, target filesystem.EntryAttrs, logger *logging.Logger) error {
	switch action {
	case ActionSkip:
		return nil
	case ActionCopyFile, ActionOverwriteFile:
		return copyFileLike(ctx, cfg, sourcePath, targetPath, source, logger)
	case ActionReplaceWithFile:
		if err := removeConflictingFileTarget(cfg, targetPath, target, logger); err != nil {
			return err
		}
		return copyFileLike(ctx, cfg, sourcePath, targetPath, source, logger)
	case ActionReplaceSymlink:
		return createSymlinkEntry(cfg, targetPath, source, logger)
	default:
		return copycat.NewInvariantViolation("Execute called with non-file action %s", action)
	}
}

func copyFileLike(ctx context.Context, cfg *configuration.SyncConfig, sourcePath, targetPath string, source filesystem.EntryAttrs, logger *logging.Logger) error {
	switch source.Kind {
	case filesystem.EntryKindFile:
		return copyRegularFile(ctx, cfg, sourcePath, targetPath, source, logger)
	case filesystem.EntryKindFileSymlink:
		return createSymlinkEntry(cfg, targetPath, source, logger)
	default:
		return copycat.NewInvariantViolation("copyFileLike called with non-copyable source kind %s", source.Kind)
	}
}

// copyRegularFile implements the regular-file copy branch: atomic
// temp-then-rename content copy, followed by metadata propagation.
func copyRegularFile(ctx context.Context, cfg *configuration.SyncConfig, sourcePath, targetPath string, source filesystem.EntryAttrs, logger *logging.Logger) error {
	if cfg.DryRun {
		return nil
	}
	if _, err := filesystem.CopyFileContentAtomic(ctx, sourcePath, targetPath, source.Permissions(), logger); err != nil {
		return copycat.NewEntryError(targetPath, err)
	}
	uid, gid := source.Ownership()
	options := filesystem.MetadataOptions{
		ModificationTime: source.ModificationTime,
		Permissions:      source.Permissions(),
		CopyACL:          cfg.CopyACL,
		UID:              uid,
		GID:              gid,
	}
	if err := filesystem.ApplyMetadata(targetPath, options, logger); err != nil {
		return copycat.NewEntryError(targetPath, err)
	}
	return nil
}

// createSymlinkEntry implements symlink copy: read the raw
// link text from source and recreate it at target, replacing anything
// already there. Never follows either path.
func createSymlinkEntry(cfg *configuration.SyncConfig, targetPath string, source filesystem.EntryAttrs, logger *logging.Logger) error {
	if cfg.DryRun {
		return nil
	}
	// Clear whatever, if anything, already occupies targetPath; a plain
	// os.Symlink fails if the path is already taken, including by a stale
	// symlink being replaced with an identical-looking one.
	if err := deleteEntry(targetPath, logger); err != nil {
		return err
	}
	if err := filesystem.CreateSymlink(targetPath, source.LinkTarget); err != nil {
		if cfg.IgnoreSymlinkErrors {
			logger.Warnf("ignoring symlink creation failure at %s: %s", targetPath, err.Error())
			return nil
		}
		return copycat.NewSymlinkError(targetPath, err)
	}
	return nil
}

func removeConflictingFileTarget(cfg *configuration.SyncConfig, targetPath string, target filesystem.EntryAttrs, logger *logging.Logger) error {
	if cfg.DryRun {
		return nil
	}
	if target.Kind == filesystem.EntryKindDirectory {
		return deleteTree(targetPath, logger)
	}
	return deleteEntry(targetPath, logger)
}
