package configuration

import (
	"fmt"

	"github.com/copycat-sync/copycat/pkg/copycat"
)

// recognizedTopLevelKeys are the only keys permitted at the root of a
// config file tree: a defaults: map and a sync: map from task name to task
// map.
// Anything else is an error rather than a warning, unlike per-task
// unknown keys.
var recognizedTopLevelKeys = map[string]bool{
	"defaults": true,
	"sync":     true,
}

// Task is one named entry from a config file's "sync:" map, decoded into
// the Layer that will be merged on top of defaults and beneath the CLI
// layer.
type Task struct {
	Name     string
	Layer    Layer
	Warnings []string
}

// File holds the decoded contents of a config file: the optional defaults
// layer and the task layers. Tasks are collected by iterating the "sync:"
// map, so their order is not defined; a "sync:" list is rejected.
type File struct {
	Defaults         Layer
	DefaultsWarnings []string
	Tasks            []Task
}

// FromTree decodes a full config file tree (as already parsed by an
// external YAML reader) into a File.
func FromTree(tree map[string]any) (*File, error) {
	for key := range tree {
		if !recognizedTopLevelKeys[key] {
			return nil, copycat.NewValidationError("unrecognized top-level configuration key %q", key)
		}
	}

	file := &File{}

	if raw, ok := tree["defaults"]; ok {
		defaultsTree, ok := raw.(map[string]any)
		if !ok {
			return nil, copycat.NewValidationError("\"defaults\" must be a map")
		}
		layer, warnings, err := FromMap(defaultsTree)
		if err != nil {
			return nil, err
		}
		file.Defaults = layer
		file.DefaultsWarnings = warnings
	}

	raw, ok := tree["sync"]
	if !ok {
		return file, nil
	}
	entries, ok := raw.(map[string]any)
	if !ok {
		return nil, copycat.NewValidationError("\"sync\" must be a map of task name to task configuration")
	}

	for name, rawTask := range entries {
		taskTree, ok := rawTask.(map[string]any)
		if !ok {
			return nil, copycat.NewValidationError("task %q must be a map", name)
		}
		layer, warnings, err := FromMap(taskTree)
		if err != nil {
			return nil, fmt.Errorf("task %q: %w", name, err)
		}
		file.Tasks = append(file.Tasks, Task{Name: name, Layer: layer, Warnings: warnings})
	}

	return file, nil
}
