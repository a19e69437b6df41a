// Package configuration implements Copycat's configuration model: the
// three-layer merge (defaults, config file, CLI), validation of the
// source/target pair, and compilation of the filter rule sets used by the
// reconciliation walker.
package configuration

import (
	"time"

	"github.com/copycat-sync/copycat/pkg/filter"
)

// Layer is one of the three configuration sources merged by Merge, in
// increasing priority order.
type Layer struct {
	CopyACL                  *bool
	DeleteExcluded           *bool
	ExcludeHiddenFiles       *bool
	ExcludeSystemFiles       *bool
	ExcludeHiddenSystemFiles *bool
	// Filters, if non-nil, replaces (never concatenates with) any lower
	// layer's filter list.
	Filters []string
	Since   *time.Time
	Until   *time.Time
	DryRun  *bool
	IgnoreSymlinkErrors *bool
	ThreadCount         *uint32
	StallTimeoutMinutes *uint64
	FailFast            *bool

	SourceRoot string
	TargetRoot string
}

// SyncConfig is the immutable, validated configuration for one sync task.
type SyncConfig struct {
	SourceRoot string
	TargetRoot string

	CopyACL                  bool
	DeleteExcluded           bool
	ExcludeHidden            bool
	ExcludeSystem            bool
	ExcludeHiddenSystem      bool
	DryRun                   bool
	IgnoreSymlinkErrors      bool
	FailFast                 bool
	ThreadCount              uint32
	StallTimeout             time.Duration

	FilterSpecs []string
	Window      filter.Window

	// SourceFilters and TargetFilters are two independently compiled sets
	// built by Compute from the same rule list, one for source-side and one
	// for target-side evaluation. Compilation does not depend on either
	// root; both sets match the same root-relative paths.
	SourceFilters *filter.CompiledRuleSet
	TargetFilters *filter.CompiledRuleSet
}

// defaultThreadCount is min(8, cpu count).
func defaultThreadCount(numCPU int) uint32 {
	if numCPU > 8 {
		return 8
	}
	if numCPU < 1 {
		return 1
	}
	return uint32(numCPU)
}
