package mirror

import "github.com/copycat-sync/copycat/pkg/filesystem"

// ActionKind is the tagged variant produced by the decision functions in
// this package.
type ActionKind uint8

const (
	// ActionSkip means no mutation is needed: the entry is excluded,
	// already equal, or of a kind the walker does not handle.
	ActionSkip ActionKind = iota
	// ActionCreateDir creates a new directory and applies shallow metadata.
	ActionCreateDir
	// ActionReplaceWithDir deletes a conflicting target entry and creates a
	// directory in its place.
	ActionReplaceWithDir
	// ActionCopyFile copies a regular file or symlink that has no target
	// counterpart yet.
	ActionCopyFile
	// ActionOverwriteFile copies over an existing target of the same kind
	// whose content/metadata differs.
	ActionOverwriteFile
	// ActionReplaceWithFile deletes a target of a different kind, then
	// copies the source file or symlink into its place.
	ActionReplaceWithFile
	// ActionReplaceSymlink (re)creates a symlink, overwriting whatever
	// (possibly nothing) currently occupies the target path.
	ActionReplaceSymlink
	// ActionDeleteFile removes a regular file, used by Phase B.
	ActionDeleteFile
	// ActionDeleteTree removes a directory and its contents, used by
	// Phase B.
	ActionDeleteTree
	// ActionDeleteSymlink removes a symlink entry, used by Phase B.
	ActionDeleteSymlink
)

// String renders a human-readable action name for log lines.
func (a ActionKind) String() string {
	switch a {
	case ActionSkip:
		return "skip"
	case ActionCreateDir:
		return "create-dir"
	case ActionReplaceWithDir:
		return "replace-with-dir"
	case ActionCopyFile:
		return "copy-file"
	case ActionOverwriteFile:
		return "overwrite-file"
	case ActionReplaceWithFile:
		return "replace-with-file"
	case ActionReplaceSymlink:
		return "replace-symlink"
	case ActionDeleteFile:
		return "delete-file"
	case ActionDeleteTree:
		return "delete-tree"
	case ActionDeleteSymlink:
		return "delete-symlink"
	default:
		return "unknown"
	}
}

// DecideTargetDeletion maps a target-only entry's kind to the ActionKind
// Phase B dispatches through ExecuteDelete, mirroring how DecideFileEntry
// drives Phase A's dispatch through Execute.
func DecideTargetDeletion(kind filesystem.EntryKind) ActionKind {
	switch {
	case kind == filesystem.EntryKindDirectory:
		return ActionDeleteTree
	case kind.IsSymlink():
		return ActionDeleteSymlink
	default:
		return ActionDeleteFile
	}
}

// DecideFileEntry implements the file/symlink branch of the Phase A
// decision table: a child that is not itself a directory
// or directory-symlink is resolved to a single ActionKind given its source
// classification and whatever (if anything) already occupies the target
// path.
func DecideFileEntry(source filesystem.EntryAttrs, targetExists bool, target filesystem.EntryAttrs) ActionKind {
	switch source.Kind {
	case filesystem.EntryKindFile, filesystem.EntryKindFileSymlink:
		if !targetExists {
			return ActionCopyFile
		}
		if target.Kind != source.Kind {
			return ActionReplaceWithFile
		}
		if filesystem.EqualForSync(source, target) {
			return ActionSkip
		}
		return ActionOverwriteFile
	case filesystem.EntryKindBrokenSymlink:
		// A broken link is still a valid link operation: recreate it
		// regardless of what, if anything, is at the target.
		return ActionReplaceSymlink
	default:
		// EntryKindOther and EntryKindOtherSymlink: devices, sockets,
		// FIFOs. Skip with an info log.
		return ActionSkip
	}
}
