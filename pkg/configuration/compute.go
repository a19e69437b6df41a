package configuration

import (
	"os"
	"runtime"
	"time"

	"github.com/copycat-sync/copycat/pkg/copycat"
	"github.com/copycat-sync/copycat/pkg/filesystem"
	"github.com/copycat-sync/copycat/pkg/filter"
)

// Compute merges the three configuration layers and validates the result,
// producing an immutable SyncConfig: it (a) canonicalizes paths to
// absolute, (b) enforces the source/target existence and permission
// preconditions, (c) compiles filter rules for both roots, (d) normalizes
// the modification-time window.
func Compute(defaults, fileLayer, cliLayer Layer) (*SyncConfig, error) {
	merged := Merge(defaults, fileLayer, cliLayer)

	if merged.SourceRoot == "" {
		return nil, copycat.NewValidationError("source path is required")
	}
	if merged.TargetRoot == "" {
		return nil, copycat.NewValidationError("target path is required")
	}

	sourceRoot, err := filesystem.Canonicalize(merged.SourceRoot)
	if err != nil {
		return nil, copycat.NewValidationError("invalid source path: %s", err)
	}
	targetRoot, err := filesystem.Canonicalize(merged.TargetRoot)
	if err != nil {
		return nil, copycat.NewValidationError("invalid target path: %s", err)
	}

	if err := filesystem.EnsureDirectoryExists(sourceRoot); err != nil {
		return nil, copycat.NewValidationError("source is not an accessible directory: %s", err)
	}

	if info, statErr := os.Stat(targetRoot); statErr == nil {
		if !info.IsDir() {
			return nil, copycat.NewValidationError("target exists and is not a directory")
		}
	} else if os.IsNotExist(statErr) {
		if err := filesystem.EnsureParentWritable(targetRoot); err != nil {
			return nil, copycat.NewValidationError("target's parent directory is not writable: %s", err)
		}
	} else {
		return nil, copycat.NewValidationError("unable to stat target: %s", statErr)
	}

	if filesystem.Contains(sourceRoot, targetRoot) {
		return nil, copycat.NewValidationError("target path must not equal or descend from the source path")
	}
	if same, sameErr := filesystem.SameObject(sourceRoot, targetRoot); sameErr == nil && same {
		return nil, copycat.NewValidationError("source and target resolve to the same filesystem object")
	}

	specs := merged.Filters
	if specs == nil {
		specs = []string{}
	}
	rules, err := filter.ParseRules(specs)
	if err != nil {
		return nil, copycat.NewValidationError("%s", err)
	}
	sourceFilters, err := filter.Compile(rules)
	if err != nil {
		return nil, copycat.NewValidationError("invalid filter pattern: %s", err)
	}
	targetFilters, err := filter.Compile(rules)
	if err != nil {
		return nil, copycat.NewValidationError("invalid filter pattern: %s", err)
	}

	threadCount := defaultThreadCount(runtime.NumCPU())
	if merged.ThreadCount != nil && *merged.ThreadCount > 0 {
		threadCount = *merged.ThreadCount
	}

	window, err := resolveWindow(merged.Since, merged.Until)
	if err != nil {
		return nil, err
	}

	var stallTimeout time.Duration
	if merged.StallTimeoutMinutes != nil {
		stallTimeout = time.Duration(*merged.StallTimeoutMinutes) * time.Minute
	}

	return &SyncConfig{
		SourceRoot:          sourceRoot,
		TargetRoot:          targetRoot,
		CopyACL:             boolValue(merged.CopyACL),
		DeleteExcluded:      boolValue(merged.DeleteExcluded),
		ExcludeHidden:       boolValue(merged.ExcludeHiddenFiles),
		ExcludeSystem:       boolValue(merged.ExcludeSystemFiles),
		ExcludeHiddenSystem: boolValue(merged.ExcludeHiddenSystemFiles),
		DryRun:              boolValue(merged.DryRun),
		IgnoreSymlinkErrors: boolValue(merged.IgnoreSymlinkErrors),
		FailFast:            boolValue(merged.FailFast),
		ThreadCount:         threadCount,
		StallTimeout:        stallTimeout,
		FilterSpecs:         specs,
		Window:              window,
		SourceFilters:       sourceFilters,
		TargetFilters:       targetFilters,
	}, nil
}

func resolveWindow(since, until *time.Time) (filter.Window, error) {
	window := filter.Window{}
	if since != nil {
		window.From = since.Local()
	}
	if until != nil {
		window.Until = until.Local()
	}
	if !window.From.IsZero() && !window.Until.IsZero() && !window.From.Before(window.Until) {
		return filter.Window{}, copycat.NewValidationError("--since must be earlier than --until")
	}
	return window, nil
}
