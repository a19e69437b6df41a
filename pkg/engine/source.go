package engine

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/copycat-sync/copycat/pkg/copycat"
	"github.com/copycat-sync/copycat/pkg/filesystem"
	"github.com/copycat-sync/copycat/pkg/filter"
	"github.com/copycat-sync/copycat/pkg/mirror"
)

// walkSourceDirectory implements Phase A for the directory at the given
// root-relative path: it ensures the corresponding target
// directory exists, then decides and dispatches an action for each child.
// Directory-like children recurse (via further g.TryGo calls); file-like
// children are dispatched to processSourceFile.
func (e *Engine) walkSourceDirectory(ctx context.Context, g *errgroup.Group, relative string) error {
	if err := checkCancelled(ctx); err != nil {
		return err
	}

	sourcePath := filesystem.JoinRelative(e.cfg.SourceRoot, relative)
	targetPath := filesystem.JoinRelative(e.cfg.TargetRoot, relative)

	sourceAttrs, err := filesystem.Classify(sourcePath)
	if err != nil {
		return e.handleEntryError(copycat.NewEntryError(relative, err))
	}

	if !e.visited.enter(sourceAttrs.Identity()) {
		e.logger.Debugf("skipping already-visited directory %q (symlink cycle)", relative)
		e.stats.AddSkipped()
		return nil
	}

	action, err := mirror.EnsureDirectory(e.cfg, sourcePath, targetPath, sourceAttrs, e.logger)
	if err != nil {
		return e.handleEntryError(err)
	}
	if action == mirror.ActionCreateDir || action == mirror.ActionReplaceWithDir {
		e.stats.AddDirsCreated()
	}
	if e.tracker != nil {
		e.tracker.Touch()
	}

	entries, err := os.ReadDir(sourcePath)
	if err != nil {
		return e.handleEntryError(copycat.NewEntryError(relative, err))
	}

	for _, entry := range entries {
		childRelative := joinRelativeName(relative, entry.Name())
		if err := e.dispatchSourceChild(ctx, g, childRelative); err != nil {
			return err
		}
	}

	return nil
}

// dispatchSourceChild classifies, filters, and decides what to do with one
// child of a source directory, then either recurses (directories) or
// enqueues a file-level task.
func (e *Engine) dispatchSourceChild(ctx context.Context, g *errgroup.Group, relative string) error {
	sourcePath := filesystem.JoinRelative(e.cfg.SourceRoot, relative)

	childAttrs, err := filesystem.Classify(sourcePath)
	if err != nil {
		return e.handleEntryError(copycat.NewEntryError(relative, err))
	}

	normalized := filesystem.NormalizeRelativePath(relative)
	if e.sourceEvaluator.Excluded(filter.Entry{
		RelativePath: normalized,
		IsDirectory:  childAttrs.Kind.IsDirectoryLike(),
		IsRegular:    childAttrs.IsRegularFile(),
		Hidden:       filesystem.IsHidden(sourcePath),
		DOSSystem:    filesystem.IsDOSSystem(sourcePath),
		ModTime:      childAttrs.ModificationTime,
	}) {
		e.stats.AddSkipped()
		return nil
	}

	task := func() error {
		return e.processSourceFile(ctx, relative, childAttrs)
	}
	if childAttrs.Kind.IsDirectoryLike() {
		task = func() error {
			return e.walkSourceDirectory(ctx, g, relative)
		}
	}
	if !g.TryGo(task) {
		return task()
	}
	return nil
}

// processSourceFile implements the file/symlink branch of the Phase A
// decision table for one already-filtered child.
func (e *Engine) processSourceFile(ctx context.Context, relative string, sourceAttrs filesystem.EntryAttrs) error {
	if err := checkCancelled(ctx); err != nil {
		return err
	}
	sourcePath := filesystem.JoinRelative(e.cfg.SourceRoot, relative)
	targetPath := filesystem.JoinRelative(e.cfg.TargetRoot, relative)

	targetAttrs, err := filesystem.Classify(targetPath)
	targetExists := err == nil
	if err != nil && !filesystem.IsNotExist(err) {
		return e.handleEntryError(copycat.NewEntryError(relative, err))
	}

	action := mirror.DecideFileEntry(sourceAttrs, targetExists, targetAttrs)
	if action == mirror.ActionSkip {
		if sourceAttrs.Kind == filesystem.EntryKindOther || sourceAttrs.Kind == filesystem.EntryKindOtherSymlink {
			e.logger.Infof("skipping %q: unsupported entry kind %s", relative, sourceAttrs.Kind)
		}
		e.stats.AddSkipped()
		return nil
	}

	if err := mirror.Execute(ctx, e.cfg, action, sourcePath, targetPath, sourceAttrs, targetAttrs, e.logger); err != nil {
		return e.handleEntryError(err)
	}

	if action == mirror.ActionCopyFile || action == mirror.ActionOverwriteFile || action == mirror.ActionReplaceWithFile {
		e.stats.AddFilesCopied(sourceAttrs.Size)
	}
	if e.tracker != nil {
		e.tracker.Touch()
	}

	return nil
}

func joinRelativeName(relative, name string) string {
	if relative == "" {
		return name
	}
	return relative + "/" + name
}
