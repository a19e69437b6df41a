package configuration

import (
	"strings"
	"testing"
)

func TestFromTreeRejectsUnrecognizedTopLevelKey(t *testing.T) {
	tree := map[string]any{"bogus": map[string]any{}}

	if _, err := FromTree(tree); err == nil {
		t.Fatal("expected an error for an unrecognized top-level key")
	}
}

func TestFromTreeDecodesDefaultsAndWarnings(t *testing.T) {
	tree := map[string]any{
		"defaults": map[string]any{
			"copy-acl":  true,
			"not-a-key": true,
		},
	}

	file, err := FromTree(tree)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !boolValue(file.Defaults.CopyACL) {
		t.Fatal("expected defaults.copy-acl to be true")
	}
	if len(file.DefaultsWarnings) != 1 {
		t.Fatalf("expected the defaults warning to survive, got %v", file.DefaultsWarnings)
	}
}

func TestFromTreeDecodesNamedTasks(t *testing.T) {
	tree := map[string]any{
		"sync": map[string]any{
			"photos": map[string]any{
				"source": "/src/photos",
				"target": "/dst/photos",
			},
		},
	}

	file, err := FromTree(tree)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(file.Tasks) != 1 {
		t.Fatalf("expected one task, got %d", len(file.Tasks))
	}
	task := file.Tasks[0]
	if task.Name != "photos" || task.Layer.SourceRoot != "/src/photos" {
		t.Fatalf("unexpected task: %+v", task)
	}
}

func TestFromTreeWrapsTaskErrorsWithName(t *testing.T) {
	tree := map[string]any{
		"sync": map[string]any{
			"broken": map[string]any{"since": "garbage"},
		},
	}

	_, err := FromTree(tree)
	if err == nil {
		t.Fatal("expected an error from the broken task")
	}
	if !strings.Contains(err.Error(), `"broken"`) {
		t.Fatalf("expected the error to name the task, got %s", err)
	}
}

func TestFromTreeWithNoSyncKeyReturnsEmptyTasks(t *testing.T) {
	file, err := FromTree(map[string]any{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(file.Tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(file.Tasks))
	}
}
