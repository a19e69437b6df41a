package configuration

import (
	"fmt"
	"time"

	"github.com/copycat-sync/copycat/pkg/copycat"
	"github.com/copycat-sync/copycat/pkg/filter"
)

// recognizedTaskKeys lists the keys a task map may carry, in kebab-case,
// matching the CLI flag names in exactly so that a config file
// task and an equivalent CLI invocation read the same way.
var recognizedTaskKeys = map[string]bool{
	"source": true, "target": true,
	"copy-acl": true, "delete-excluded": true,
	"exclude-hidden-files": true, "exclude-system-files": true, "exclude-hidden-system-files": true,
	"filter": true, "exclude": true,
	"since": true, "until": true,
	"dry-run": true, "threads": true, "stall-timeout": true,
	"fail-fast": true, "ignore-symlink-errors": true,
}

// FromMap decodes one task's pre-parsed key/value tree into a Layer. The
// core never parses YAML itself, only the already-decoded key/value tree
// an external reader (cmd/copycat, using gopkg.in/yaml.v2) hands it.
// Unknown keys, and the deprecated "exclude" key, produce a warning rather
// than an error.
func FromMap(tree map[string]any) (Layer, []string, error) {
	var layer Layer
	var warnings []string

	for key := range tree {
		if !recognizedTaskKeys[key] {
			warnings = append(warnings, fmt.Sprintf("unrecognized configuration key %q", key))
		}
	}
	if _, ok := tree["exclude"]; ok {
		warnings = append(warnings, "the \"exclude\" key is deprecated; its patterns are applied as \"ex:\" filter rules")
	}

	if value, ok := tree["source"].(string); ok {
		layer.SourceRoot = value
	}
	if value, ok := tree["target"].(string); ok {
		layer.TargetRoot = value
	}
	if value, ok := lookupBool(tree, "copy-acl"); ok {
		layer.CopyACL = &value
	}
	if value, ok := lookupBool(tree, "delete-excluded"); ok {
		layer.DeleteExcluded = &value
	}
	if value, ok := lookupBool(tree, "exclude-hidden-files"); ok {
		layer.ExcludeHiddenFiles = &value
	}
	if value, ok := lookupBool(tree, "exclude-system-files"); ok {
		layer.ExcludeSystemFiles = &value
	}
	if value, ok := lookupBool(tree, "exclude-hidden-system-files"); ok {
		layer.ExcludeHiddenSystemFiles = &value
	}
	if value, ok := lookupBool(tree, "dry-run"); ok {
		layer.DryRun = &value
	}
	if value, ok := lookupBool(tree, "fail-fast"); ok {
		layer.FailFast = &value
	}
	if value, ok := lookupBool(tree, "ignore-symlink-errors"); ok {
		layer.IgnoreSymlinkErrors = &value
	}

	filters, err := lookupFilters(tree)
	if err != nil {
		return Layer{}, warnings, err
	}
	if filters != nil {
		layer.Filters = filters
	}

	if value, ok := tree["since"].(string); ok {
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return Layer{}, warnings, copycat.NewValidationError("invalid since timestamp %q: %s", value, err)
		}
		layer.Since = &parsed
	}
	if value, ok := tree["until"].(string); ok {
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return Layer{}, warnings, copycat.NewValidationError("invalid until timestamp %q: %s", value, err)
		}
		layer.Until = &parsed
	}

	if value, ok := lookupUint(tree, "threads"); ok {
		v := uint32(value)
		layer.ThreadCount = &v
	}
	if value, ok := lookupUint(tree, "stall-timeout"); ok {
		layer.StallTimeoutMinutes = &value
	}

	return layer, warnings, nil
}

// lookupFilters handles both the "filter" key (already in "in:"/"ex:"
// form) and the deprecated "exclude" key, which is rewritten with an "ex:"
// prefix per open question.
func lookupFilters(tree map[string]any) ([]string, error) {
	var filters []string

	if raw, ok := tree["filter"]; ok {
		values, err := toStringSlice(raw)
		if err != nil {
			return nil, copycat.NewValidationError("invalid \"filter\" value: %s", err)
		}
		filters = append(filters, values...)
	}

	if raw, ok := tree["exclude"]; ok {
		values, err := toStringSlice(raw)
		if err != nil {
			return nil, copycat.NewValidationError("invalid \"exclude\" value: %s", err)
		}
		filters = append(filters, filter.RewriteDeprecatedExcludes(values)...)
	}

	if filters == nil {
		return nil, nil
	}
	return filters, nil
}

func toStringSlice(raw any) ([]string, error) {
	switch value := raw.(type) {
	case []string:
		return value, nil
	case []any:
		result := make([]string, 0, len(value))
		for _, item := range value {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected a string, got %T", item)
			}
			result = append(result, s)
		}
		return result, nil
	case string:
		return []string{value}, nil
	default:
		return nil, fmt.Errorf("expected a string or list of strings, got %T", raw)
	}
}

func lookupBool(tree map[string]any, key string) (bool, bool) {
	value, ok := tree[key].(bool)
	return value, ok
}

func lookupUint(tree map[string]any, key string) (uint64, bool) {
	switch value := tree[key].(type) {
	case int:
		return uint64(value), true
	case int64:
		return uint64(value), true
	case uint64:
		return value, true
	case float64:
		return uint64(value), true
	default:
		return 0, false
	}
}
