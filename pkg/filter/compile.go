package filter

import (
	pathpkg "path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// compiledRule is a Rule whose glob has been validated and annotated with
// the metadata needed for descendant matching.
type compiledRule struct {
	action Action
	// pattern is the doublestar pattern as written in the rule.
	pattern string
	// matchLeaf indicates the pattern contains no "/" and so should also be
	// tried against each path segment (not just the full relative path),
	// matching shell glob conventions for bare names like "*.log" or
	// "build".
	matchLeaf bool
	// anchoredDescendant indicates the pattern does not already end in
	// "/**" (or equal "**"), so the implicit-descendant rule applies: a
	// match on a directory also excludes everything beneath it.
	anchoredDescendant bool
}

// CompiledRuleSet is an ordered collection of compiled rules bound to one
// synchronization root. Two independent sets are normally maintained — one
// per root — because, while doublestar itself has no per-filesystem state,
// calls for independently compiled lists so that source and
// target evaluation never share mutable state.
type CompiledRuleSet struct {
	rules []compiledRule
}

// Compile validates and compiles an ordered list of rules. It fails fast on
// the first invalid glob, since an invalid pattern can never usefully
// match.
func Compile(rules []Rule) (*CompiledRuleSet, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		pattern := rule.Pattern
		if _, err := doublestar.Match(pattern, "probe"); err != nil {
			return nil, err
		}

		anchoredDescendant := !strings.HasSuffix(pattern, "/**") && pattern != "**"

		compiled = append(compiled, compiledRule{
			action:             rule.Action,
			pattern:            pattern,
			matchLeaf:          !strings.Contains(pattern, "/"),
			anchoredDescendant: anchoredDescendant,
		})
	}
	return &CompiledRuleSet{rules: compiled}, nil
}

// firstMatch walks the compiled rules in order and returns the action of
// the first one that matches relativePath, and whether any rule matched at
// all: first matching rule decides, no rule matched means included.
func (s *CompiledRuleSet) firstMatch(relativePath string, isDirectory bool) (Action, bool) {
	for _, rule := range s.rules {
		if rule.matches(relativePath, isDirectory) {
			return rule.action, true
		}
	}
	return Include, false
}

func (r compiledRule) matches(relativePath string, isDirectory bool) bool {
	if ok, _ := doublestar.Match(r.pattern, relativePath); ok {
		return true
	}
	if r.matchLeaf {
		if ok, _ := doublestar.Match(r.pattern, pathpkg.Base(relativePath)); ok {
			return true
		}
	}
	if r.anchoredDescendant && r.matchesAncestor(relativePath) {
		return true
	}
	return false
}

// matchesAncestor implements implicit-descendant rule: a rule
// with no terminating "/**" also matches every path beneath a directory it
// matches. For a bare (matchLeaf) pattern this means any path segment; for
// an anchored pattern (one containing "/") this means a literal path
// prefix.
func (r compiledRule) matchesAncestor(relativePath string) bool {
	segments := strings.Split(relativePath, "/")
	if r.matchLeaf {
		for i := 0; i < len(segments)-1; i++ {
			if ok, _ := doublestar.Match(r.pattern, segments[i]); ok {
				return true
			}
		}
		return false
	}
	prefix := r.pattern + "/"
	return strings.HasPrefix(relativePath, prefix)
}
