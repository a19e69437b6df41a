package filter

import "time"

// Window is an optional, inclusive/exclusive modification-time range. A
// zero Window (both bounds zero) is unbounded.
type Window struct {
	From  time.Time // inclusive
	Until time.Time // exclusive
}

// contains reports whether mtime falls within the window. An unset bound
// imposes no constraint on that side.
func (w Window) contains(mtime time.Time) bool {
	if !w.From.IsZero() && mtime.Before(w.From) {
		return false
	}
	if !w.Until.IsZero() && !mtime.Before(w.Until) {
		return false
	}
	return true
}

// IsZero reports whether the window is unbounded.
func (w Window) IsZero() bool {
	return w.From.IsZero() && w.Until.IsZero()
}

// Evaluator bundles one compiled rule set with the hidden/system/mtime
// predicates for a single root, implementing the full decision order of
// .
type Evaluator struct {
	Rules               *CompiledRuleSet
	ExcludeHidden       bool
	ExcludeSystem       bool
	ExcludeHiddenSystem bool
	ModificationWindow  Window
}

// Entry carries exactly the attributes Evaluate needs, decoupling this
// package from pkg/filesystem's richer EntryAttrs.
type Entry struct {
	RelativePath string
	IsDirectory  bool
	IsRegular    bool
	Hidden       bool
	DOSSystem    bool
	ModTime      time.Time
}

// Excluded implements the six-step decision order:
//  1. hidden AND system, if exclude_hidden_system
//  2. system, if exclude_system
//  3. hidden, if exclude_hidden
//  4. outside the modification-time window (regular files only)
//  5. first matching glob rule
//  6. otherwise included
func (e *Evaluator) Excluded(entry Entry) bool {
	if e.ExcludeHiddenSystem && entry.Hidden && entry.DOSSystem {
		return true
	}
	if e.ExcludeSystem && entry.DOSSystem {
		return true
	}
	if e.ExcludeHidden && entry.Hidden {
		return true
	}
	if entry.IsRegular && !e.ModificationWindow.IsZero() && !e.ModificationWindow.contains(entry.ModTime) {
		return true
	}
	if e.Rules != nil {
		if action, matched := e.Rules.firstMatch(entry.RelativePath, entry.IsDirectory); matched {
			return action == Exclude
		}
	}
	return false
}
