package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/copycat-sync/copycat/pkg/configuration"
	"github.com/copycat-sync/copycat/pkg/copycat"
	"github.com/copycat-sync/copycat/pkg/filter"
	"github.com/copycat-sync/copycat/pkg/logging"
	"github.com/copycat-sync/copycat/pkg/progress"
)

// Engine owns one sync run: the bounded worker pool and the directory/file
// traversal state shared across its goroutines.
//
// Concurrency model: a single golang.org/x/sync/errgroup with SetLimit(N)
// stands in for a pair of bounded directory/file queues feeding N workers.
// Children are handed to g.TryGo(); when all N slots are busy the caller
// runs the child task itself instead of waiting, so at most N tasks run in
// parallel and a walker never blocks on a slot that only another blocked
// walker could free. A directory task dispatches its children only after
// the directory itself has been created or confirmed, which preserves the
// directory-before-children happens-before edge.
type Engine struct {
	cfg     *configuration.SyncConfig
	stats   *progress.Stats
	tracker *progress.Tracker
	logger  *logging.Logger

	sourceEvaluator *filter.Evaluator
	targetEvaluator *filter.Evaluator

	visited *visitSet
	limit   int
}

// New constructs an Engine for one sync run.
func New(cfg *configuration.SyncConfig, stats *progress.Stats, tracker *progress.Tracker, logger *logging.Logger) *Engine {
	limit := int(cfg.ThreadCount)
	if limit < 1 {
		limit = 1
	}
	return &Engine{
		cfg:     cfg,
		stats:   stats,
		tracker: tracker,
		logger:  logger,
		limit:   limit,
		sourceEvaluator: &filter.Evaluator{
			Rules:               cfg.SourceFilters,
			ExcludeHidden:       cfg.ExcludeHidden,
			ExcludeSystem:       cfg.ExcludeSystem,
			ExcludeHiddenSystem: cfg.ExcludeHiddenSystem,
			ModificationWindow:  cfg.Window,
		},
		targetEvaluator: &filter.Evaluator{
			Rules:               cfg.TargetFilters,
			ExcludeHidden:       cfg.ExcludeHidden,
			ExcludeSystem:       cfg.ExcludeSystem,
			ExcludeHiddenSystem: cfg.ExcludeHiddenSystem,
		},
		visited: newVisitSet(),
	}
}

// Run executes Phase A (always) and Phase B (only if cfg.DeleteExcluded).
// It returns a *copycat.ErrorsEncountered if --fail-fast
// is set and at least one non-fatal entry error occurred, or the first
// fatal error encountered otherwise.
func (e *Engine) Run(ctx context.Context) error {
	sourceGroup, sourceCtx := errgroup.WithContext(ctx)
	sourceGroup.SetLimit(e.limit)
	sourceGroup.Go(func() error {
		return e.walkSourceDirectory(sourceCtx, sourceGroup, "")
	})
	if err := sourceGroup.Wait(); err != nil {
		return err
	}

	if e.cfg.DeleteExcluded {
		targetGroup, targetCtx := errgroup.WithContext(ctx)
		targetGroup.SetLimit(e.limit)
		targetGroup.Go(func() error {
			return e.walkTargetDirectory(targetCtx, targetGroup, "")
		})
		if err := targetGroup.Wait(); err != nil {
			return err
		}
	}

	if e.cfg.FailFast {
		if count := e.stats.ErrorCount(); count > 0 {
			return &copycat.ErrorsEncountered{Count: count}
		}
	}

	return nil
}

// handleEntryError applies cancellation policy: fatal
// filesystem errors and invariant violations always propagate and cancel
// the run; everything else is counted in stats and, if --fail-fast is set,
// also propagated as a *copycat.ErrorsEncountered (which cancels the
// errgroup's context for every other worker).
func (e *Engine) handleEntryError(err error) error {
	if err == nil {
		return nil
	}

	switch err.(type) {
	case *copycat.FilesystemError, *copycat.InvariantViolation:
		return err
	}

	e.stats.AddError()
	e.logger.Warnf("%s", err.Error())

	if e.cfg.FailFast {
		return &copycat.ErrorsEncountered{Count: e.stats.ErrorCount()}
	}
	return nil
}

func checkCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
