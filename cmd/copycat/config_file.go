package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/copycat-sync/copycat/pkg/configuration"
)

// loadConfigFile reads and decodes a copycat config file at path: a
// key/value tree with an optional defaults: map and a sync: map from task
// name to task map. Only this file touches YAML directly — everything downstream of
// normalizeYAMLValue operates on plain map[string]any, since the core
// never parses YAML itself.
func loadConfigFile(path string) (*configuration.File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	var decoded map[interface{}]interface{}
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}

	tree, ok := normalizeYAMLValue(decoded).(map[string]any)
	if !ok {
		tree = map[string]any{}
	}

	file, err := configuration.FromTree(tree)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// normalizeYAMLValue recursively converts the map[interface{}]interface{}
// and []interface{} shapes produced by gopkg.in/yaml.v2 into the
// map[string]any/[]any shapes pkg/configuration expects, since yaml.v2
// (unlike encoding/json) does not decode directly into string-keyed maps.
func normalizeYAMLValue(value any) any {
	switch v := value.(type) {
	case map[interface{}]interface{}:
		result := make(map[string]any, len(v))
		for key, element := range v {
			result[fmt.Sprintf("%v", key)] = normalizeYAMLValue(element)
		}
		return result
	case []interface{}:
		result := make([]any, len(v))
		for i, element := range v {
			result[i] = normalizeYAMLValue(element)
		}
		return result
	default:
		return v
	}
}
