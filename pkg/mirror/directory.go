package mirror

import (
	"github.com/copycat-sync/copycat/pkg/configuration"
	"github.com/copycat-sync/copycat/pkg/copycat"
	"github.com/copycat-sync/copycat/pkg/filesystem"
	"github.com/copycat-sync/copycat/pkg/logging"
)

// EnsureDirectory brings targetPath into a state consistent with
// sourceAttrs, which must describe a directory or a directory symlink. It
// performs at most one delete and one create, following the decision
// table exactly. Under cfg.DryRun the decision is still made (and
// returned) but no mutation is performed.
func EnsureDirectory(cfg *configuration.SyncConfig, sourcePath, targetPath string, sourceAttrs filesystem.EntryAttrs, logger *logging.Logger) (ActionKind, error) {
	if !sourceAttrs.Kind.IsDirectoryLike() {
		return ActionSkip, copycat.NewInvariantViolation("EnsureDirectory called with non-directory source kind %s", sourceAttrs.Kind)
	}

	targetAttrs, err := filesystem.Classify(targetPath)
	targetExists := err == nil
	if err != nil && !filesystem.IsNotExist(err) {
		return ActionSkip, copycat.NewEntryError(targetPath, err)
	}

	if sourceAttrs.Kind == filesystem.EntryKindDirectory {
		return ensureRealDirectory(cfg, sourcePath, targetPath, sourceAttrs, targetExists, targetAttrs, logger)
	}
	return ensureDirSymlink(cfg, sourcePath, targetPath, sourceAttrs, targetExists, targetAttrs, logger)
}

func ensureRealDirectory(cfg *configuration.SyncConfig, sourcePath, targetPath string, source filesystem.EntryAttrs, targetExists bool, target filesystem.EntryAttrs, logger *logging.Logger) (ActionKind, error) {
	switch {
	case !targetExists:
		return ActionCreateDir, createDirectory(cfg, targetPath, source, logger)
	case target.Kind == filesystem.EntryKindDirectory:
		return ActionSkip, nil
	default:
		if err := removeConflictingTarget(cfg, targetPath, target, logger); err != nil {
			return ActionSkip, err
		}
		return ActionReplaceWithDir, createDirectory(cfg, targetPath, source, logger)
	}
}

func ensureDirSymlink(cfg *configuration.SyncConfig, sourcePath, targetPath string, source filesystem.EntryAttrs, targetExists bool, target filesystem.EntryAttrs, logger *logging.Logger) (ActionKind, error) {
	if !targetExists {
		return ActionCreateDir, createDirSymlink(cfg, targetPath, source, logger)
	}
	if target.Kind.IsSymlink() {
		if filesystem.SameLinkTarget(source.LinkTarget, target.LinkTarget) {
			return ActionSkip, nil
		}
		if err := removeConflictingTarget(cfg, targetPath, target, logger); err != nil {
			return ActionSkip, err
		}
		return ActionReplaceWithDir, createDirSymlink(cfg, targetPath, source, logger)
	}
	if err := removeConflictingTarget(cfg, targetPath, target, logger); err != nil {
		return ActionSkip, err
	}
	return ActionReplaceWithDir, createDirSymlink(cfg, targetPath, source, logger)
}

func createDirectory(cfg *configuration.SyncConfig, targetPath string, source filesystem.EntryAttrs, logger *logging.Logger) error {
	if cfg.DryRun {
		return nil
	}
	if err := filesystem.CreateShallowDirectory(targetPath); err != nil {
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

func createDirSymlink(cfg *configuration.SyncConfig, targetPath string, source filesystem.EntryAttrs, logger *logging.Logger) error {
	if cfg.DryRun {
		return nil
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

// removeConflictingTarget clears whatever currently occupies targetPath so
// that a directory or directory symlink can be created in its place.
func removeConflictingTarget(cfg *configuration.SyncConfig, targetPath string, target filesystem.EntryAttrs, logger *logging.Logger) error {
	if cfg.DryRun {
		return nil
	}
	if target.Kind == filesystem.EntryKindDirectory {
		return deleteTree(targetPath, logger)
	}
	return deleteEntry(targetPath, logger)
}
