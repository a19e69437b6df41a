package configuration

// Merge combines layers in increasing priority (defaults, config file,
// CLI): the merge is field-by-field, and every field a higher layer sets
// replaces the value from the lower layers, while a field it leaves unset
// keeps that value. Filter lists never concatenate across layers — the
// highest layer that sets them wins outright.
func Merge(layers ...Layer) Layer {
	var result Layer
	for _, layer := range layers {
		result = mergeTwo(result, layer)
	}
	return result
}

func mergeTwo(lower, higher Layer) Layer {
	result := lower

	if higher.CopyACL != nil {
		result.CopyACL = higher.CopyACL
	}
	if higher.DeleteExcluded != nil {
		result.DeleteExcluded = higher.DeleteExcluded
	}
	if higher.ExcludeHiddenFiles != nil {
		result.ExcludeHiddenFiles = higher.ExcludeHiddenFiles
	}
	if higher.ExcludeSystemFiles != nil {
		result.ExcludeSystemFiles = higher.ExcludeSystemFiles
	}
	if higher.ExcludeHiddenSystemFiles != nil {
		result.ExcludeHiddenSystemFiles = higher.ExcludeHiddenSystemFiles
	}
	if higher.Filters != nil {
		result.Filters = higher.Filters
	}
	if higher.Since != nil {
		result.Since = higher.Since
	}
	if higher.Until != nil {
		result.Until = higher.Until
	}
	if higher.DryRun != nil {
		result.DryRun = higher.DryRun
	}
	if higher.IgnoreSymlinkErrors != nil {
		result.IgnoreSymlinkErrors = higher.IgnoreSymlinkErrors
	}
	if higher.ThreadCount != nil {
		result.ThreadCount = higher.ThreadCount
	}
	if higher.StallTimeoutMinutes != nil {
		result.StallTimeoutMinutes = higher.StallTimeoutMinutes
	}
	if higher.FailFast != nil {
		result.FailFast = higher.FailFast
	}
	if higher.SourceRoot != "" {
		result.SourceRoot = higher.SourceRoot
	}
	if higher.TargetRoot != "" {
		result.TargetRoot = higher.TargetRoot
	}

	return result
}

// Defaults returns the built-in default layer: all booleans default to
// false, filters empty.
func Defaults() Layer {
	falseValue := false
	return Layer{
		CopyACL:                  &falseValue,
		DeleteExcluded:           &falseValue,
		ExcludeHiddenFiles:       &falseValue,
		ExcludeSystemFiles:       &falseValue,
		ExcludeHiddenSystemFiles: &falseValue,
		Filters:                  []string{},
		DryRun:                   &falseValue,
		IgnoreSymlinkErrors:      &falseValue,
		FailFast:                 &falseValue,
	}
}

func boolValue(p *bool) bool {
	return p != nil && *p
}
