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

// walkTargetDirectory implements the entry point of Phase B, invoked
// only when cfg.DeleteExcluded is set and only after Phase A
// has fully completed. The root target directory itself is never a
// deletion candidate, so this function only dispatches its children.
func (e *Engine) walkTargetDirectory(ctx context.Context, g *errgroup.Group, relative string) error {
	if err := checkCancelled(ctx); err != nil {
		return err
	}

	targetPath := filesystem.JoinRelative(e.cfg.TargetRoot, relative)
	entries, err := os.ReadDir(targetPath)
	if err != nil {
		return e.handleEntryError(copycat.NewEntryError(relative, err))
	}

	for _, entry := range entries {
		childRelative := joinRelativeName(relative, entry.Name())
		task := func() error {
			return e.processTargetEntry(ctx, childRelative)
		}
		if !g.TryGo(task) {
			if err := task(); err != nil {
				return err
			}
		}
	}

	return nil
}

// processTargetEntry decides the fate of one target-tree entry. If it is a
// directory, its own children are reconciled first (via a bounded
// sub-group), so that directories are deleted only after their contents.
func (e *Engine) processTargetEntry(ctx context.Context, relative string) error {
	if err := checkCancelled(ctx); err != nil {
		return err
	}

	targetPath := filesystem.JoinRelative(e.cfg.TargetRoot, relative)
	targetAttrs, err := filesystem.Classify(targetPath)
	if err != nil {
		return e.handleEntryError(copycat.NewEntryError(relative, err))
	}

	if targetAttrs.Kind == filesystem.EntryKindDirectory {
		entries, err := os.ReadDir(targetPath)
		if err != nil {
			return e.handleEntryError(copycat.NewEntryError(relative, err))
		}
		sub, subCtx := errgroup.WithContext(ctx)
		sub.SetLimit(e.limit)
		for _, entry := range entries {
			childRelative := joinRelativeName(relative, entry.Name())
			sub.Go(func() error {
				return e.processTargetEntry(subCtx, childRelative)
			})
		}
		if err := sub.Wait(); err != nil {
			return err
		}
	}

	return e.decideTargetDeletion(relative, targetPath, targetAttrs)
}

// decideTargetDeletion implements the deletion predicate and tie-break
// rules: a target entry is deleted when its source counterpart is absent
// or excluded by the source filter, unless the target filter itself
// protects the entry.
func (e *Engine) decideTargetDeletion(relative, targetPath string, targetAttrs filesystem.EntryAttrs) error {
	sourcePath := filesystem.JoinRelative(e.cfg.SourceRoot, relative)
	sourceAttrs, err := filesystem.Classify(sourcePath)
	sourceExists := err == nil
	if err != nil && !filesystem.IsNotExist(err) {
		return e.handleEntryError(copycat.NewEntryError(relative, err))
	}

	candidateForDeletion := !sourceExists
	if sourceExists {
		normalized := filesystem.NormalizeRelativePath(relative)
		candidateForDeletion = e.sourceEvaluator.Excluded(filter.Entry{
			RelativePath: normalized,
			IsDirectory:  sourceAttrs.Kind.IsDirectoryLike(),
			IsRegular:    sourceAttrs.IsRegularFile(),
			Hidden:       filesystem.IsHidden(sourcePath),
			DOSSystem:    filesystem.IsDOSSystem(sourcePath),
			ModTime:      sourceAttrs.ModificationTime,
		})
	}
	if !candidateForDeletion {
		return nil
	}

	normalized := filesystem.NormalizeRelativePath(relative)
	protectedByTargetFilter := e.targetEvaluator.Excluded(filter.Entry{
		RelativePath: normalized,
		IsDirectory:  targetAttrs.Kind.IsDirectoryLike(),
		IsRegular:    targetAttrs.IsRegularFile(),
		Hidden:       filesystem.IsHidden(targetPath),
		DOSSystem:    filesystem.IsDOSSystem(targetPath),
		ModTime:      targetAttrs.ModificationTime,
	})
	if protectedByTargetFilter {
		return nil
	}

	action := mirror.DecideTargetDeletion(targetAttrs.Kind)
	removed, deleteErr := mirror.ExecuteDelete(e.cfg, action, targetPath, e.logger)
	if deleteErr != nil {
		return e.handleEntryError(deleteErr)
	}
	if removed {
		if action == mirror.ActionDeleteTree {
			e.stats.AddDirsDeleted()
		} else {
			e.stats.AddFilesDeleted()
		}
	}

	if e.tracker != nil {
		e.tracker.Touch()
	}
	return nil
}
