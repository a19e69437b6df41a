package main

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/copycat-sync/copycat/pkg/configuration"
)

// syncFlags holds the raw flag destinations for the sync/watch commands'
// options. They are translated into a configuration.Layer by toLayer,
// which only sets a field's pointer when the flag was actually provided,
// preserving the "previously-unset fields" merge semantics.
type syncFlags struct {
	copyACL                  bool
	deleteExcluded           bool
	excludeHiddenFiles       bool
	excludeSystemFiles       bool
	excludeHiddenSystemFiles bool
	filters                  []string
	since                    string
	until                    string
	dryRun                   bool
	threads                  uint32
	stallTimeout             uint64
	failFast                 bool
	ignoreSymlinkErrors      bool
	configPath               string
}

func registerSyncFlags(flags *pflag.FlagSet, dest *syncFlags) {
	flags.BoolVar(&dest.copyACL, "copy-acl", false, "Preserve ACL/ownership where supported")
	flags.BoolVar(&dest.deleteExcluded, "delete-excluded", false, "Delete target entries with no source counterpart or excluded by filter")
	flags.BoolVar(&dest.excludeHiddenFiles, "exclude-hidden-files", false, "Skip hidden files")
	flags.BoolVar(&dest.excludeSystemFiles, "exclude-system-files", false, "Skip DOS-system files")
	flags.BoolVar(&dest.excludeHiddenSystemFiles, "exclude-hidden-system-files", false, "Skip files that are both hidden and DOS-system")
	flags.StringArrayVar(&dest.filters, "filter", nil, "Include/exclude rule, in:<glob> or ex:<glob> (repeatable)")
	flags.StringVar(&dest.since, "since", "", "Only sync entries modified at or after this RFC3339 timestamp")
	flags.StringVar(&dest.until, "until", "", "Only sync entries modified before this RFC3339 timestamp")
	flags.BoolVar(&dest.dryRun, "dry-run", false, "Log decisions without modifying the target")
	flags.Uint32Var(&dest.threads, "threads", 0, "Worker count (default min(8, cpu count))")
	flags.Uint64Var(&dest.stallTimeout, "stall-timeout", 0, "Abort after this many minutes with no progress (0 disables)")
	flags.BoolVar(&dest.failFast, "fail-fast", false, "Abort on the first entry error")
	flags.BoolVar(&dest.ignoreSymlinkErrors, "ignore-symlink-errors", false, "Demote symlink errors to warnings")
	flags.StringVar(&dest.configPath, "config", "", "Path to an external configuration file")
}

// toLayer converts flags that were actually set on the command line into a
// configuration.Layer, leaving every other field nil so it does not
// override a lower layer during Merge.
func toLayer(flags *pflag.FlagSet, dest *syncFlags) configuration.Layer {
	var layer configuration.Layer

	if flags.Changed("copy-acl") {
		layer.CopyACL = &dest.copyACL
	}
	if flags.Changed("delete-excluded") {
		layer.DeleteExcluded = &dest.deleteExcluded
	}
	if flags.Changed("exclude-hidden-files") {
		layer.ExcludeHiddenFiles = &dest.excludeHiddenFiles
	}
	if flags.Changed("exclude-system-files") {
		layer.ExcludeSystemFiles = &dest.excludeSystemFiles
	}
	if flags.Changed("exclude-hidden-system-files") {
		layer.ExcludeHiddenSystemFiles = &dest.excludeHiddenSystemFiles
	}
	if flags.Changed("filter") {
		layer.Filters = dest.filters
	}
	if flags.Changed("dry-run") {
		layer.DryRun = &dest.dryRun
	}
	if flags.Changed("threads") {
		layer.ThreadCount = &dest.threads
	}
	if flags.Changed("stall-timeout") {
		layer.StallTimeoutMinutes = &dest.stallTimeout
	}
	if flags.Changed("fail-fast") {
		layer.FailFast = &dest.failFast
	}
	if flags.Changed("ignore-symlink-errors") {
		layer.IgnoreSymlinkErrors = &dest.ignoreSymlinkErrors
	}

	return layer
}

// parseTimestampFlags resolves --since/--until into the Layer's *time.Time
// fields, returning a *copycat.ValidationError (via the caller) on a
// malformed timestamp.
func parseTimestampFlags(dest *syncFlags, layer *configuration.Layer) error {
	if dest.since != "" {
		parsed, err := time.Parse(time.RFC3339, dest.since)
		if err != nil {
			return err
		}
		layer.Since = &parsed
	}
	if dest.until != "" {
		parsed, err := time.Parse(time.RFC3339, dest.until)
		if err != nil {
			return err
		}
		layer.Until = &parsed
	}
	return nil
}
