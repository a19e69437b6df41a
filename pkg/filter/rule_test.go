package filter

import "testing"

func TestParseRuleInclude(t *testing.T) {
	rule, err := ParseRule("in:*.go")
	if err != nil {
		t.Fatal(err)
	}
	if rule.Action != Include || rule.Pattern != "*.go" {
		t.Fatalf("unexpected rule: %+v", rule)
	}
}

func TestParseRuleExcludeCaseInsensitivePrefix(t *testing.T) {
	rule, err := ParseRule("EX:*.tmp")
	if err != nil {
		t.Fatal(err)
	}
	if rule.Action != Exclude || rule.Pattern != "*.tmp" {
		t.Fatalf("unexpected rule: %+v", rule)
	}
}

func TestParseRuleUnknownPrefix(t *testing.T) {
	if _, err := ParseRule("skip:*.tmp"); err == nil {
		t.Fatal("expected an error for an unknown prefix")
	}
}

func TestRewriteDeprecatedExcludes(t *testing.T) {
	got := RewriteDeprecatedExcludes([]string{"build", "*.log"})
	want := []string{"ex:build", "ex:*.log"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
