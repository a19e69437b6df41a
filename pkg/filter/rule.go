// Package filter implements Copycat's filter engine: ordered
// include/exclude glob rules plus the hidden/system/modification-time
// predicates, evaluated against paths relative to a sync root.
package filter

import (
	"fmt"
	"strings"
)

// Action is the effect of a matched FilterRule.
type Action uint8

const (
	// Include means a matching path is kept.
	Include Action = iota
	// Exclude means a matching path is dropped.
	Exclude
)

func (a Action) String() string {
	if a == Exclude {
		return "ex"
	}
	return "in"
}

// Rule is a single, uncompiled filter rule: an action paired with a glob
// pattern, exactly as parsed from a "--filter" flag or config file entry.
type Rule struct {
	Action  Action
	Pattern string
}

// ParseRule parses a filter specification of the form "in:<glob>" or
// "ex:<glob>" (the prefix match is case-insensitive). An
// unrecognized prefix is a validation error.
func ParseRule(spec string) (Rule, error) {
	lowered := strings.ToLower(spec)
	switch {
	case strings.HasPrefix(lowered, "in:"):
		return Rule{Action: Include, Pattern: spec[3:]}, nil
	case strings.HasPrefix(lowered, "ex:"):
		return Rule{Action: Exclude, Pattern: spec[3:]}, nil
	default:
		return Rule{}, fmt.Errorf("invalid filter specification %q: must start with \"in:\" or \"ex:\"", spec)
	}
}

// ParseRules parses a slice of filter specifications in order, preserving
// their relative priority: rules are tried in order, and the first
// matching rule decides.
func ParseRules(specs []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(specs))
	for _, spec := range specs {
		rule, err := ParseRule(spec)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// RewriteDeprecatedExcludes converts the deprecated "exclude:" config key
// into filter rule specifications, prefixing each glob with "ex:"
// (kept as warn-and-accept until a documented removal version).
func RewriteDeprecatedExcludes(excludes []string) []string {
	rewritten := make([]string, 0, len(excludes))
	for _, pattern := range excludes {
		rewritten = append(rewritten, "ex:"+pattern)
	}
	return rewritten
}
