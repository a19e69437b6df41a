package configuration

import "testing"

func TestFromMapDecodesRecognizedKeys(t *testing.T) {
	tree := map[string]any{
		"source":          "/a",
		"target":          "/b",
		"copy-acl":        true,
		"delete-excluded": true,
		"threads":         float64(4),
		"filter":          []any{"in:*.keep", "ex:*.log"},
	}

	layer, warnings, err := FromMap(tree)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if layer.SourceRoot != "/a" || layer.TargetRoot != "/b" {
		t.Fatalf("unexpected source/target: %+v", layer)
	}
	if !boolValue(layer.CopyACL) || !boolValue(layer.DeleteExcluded) {
		t.Fatal("expected copy-acl and delete-excluded to be true")
	}
	if layer.ThreadCount == nil || *layer.ThreadCount != 4 {
		t.Fatalf("expected thread count 4, got %+v", layer.ThreadCount)
	}
	if len(layer.Filters) != 2 {
		t.Fatalf("expected 2 filters, got %v", layer.Filters)
	}
}

func TestFromMapWarnsOnUnrecognizedKey(t *testing.T) {
	tree := map[string]any{"bogus-key": true}

	_, warnings, err := FromMap(tree)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
}

func TestFromMapRewritesDeprecatedExclude(t *testing.T) {
	tree := map[string]any{"exclude": []any{"*.tmp"}}

	layer, _, err := FromMap(tree)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(layer.Filters) != 1 || layer.Filters[0] != "ex:*.tmp" {
		t.Fatalf("expected the deprecated exclude to be rewritten with an ex: prefix, got %v", layer.Filters)
	}
}

func TestFromMapRejectsInvalidTimestamp(t *testing.T) {
	tree := map[string]any{"since": "not-a-timestamp"}

	if _, _, err := FromMap(tree); err == nil {
		t.Fatal("expected an error for an invalid since timestamp")
	}
}

func TestFromMapParsesValidTimestamp(t *testing.T) {
	tree := map[string]any{"since": "2026-01-01T00:00:00Z"}

	layer, _, err := FromMap(tree)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if layer.Since == nil {
		t.Fatal("expected Since to be populated")
	}
}
