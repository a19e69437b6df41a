package configuration

import "testing"

func TestMergeHigherLayerOverridesLower(t *testing.T) {
	trueValue := true
	falseValue := false

	lower := Layer{DryRun: &falseValue}
	higher := Layer{DryRun: &trueValue}

	merged := Merge(lower, higher)
	if !boolValue(merged.DryRun) {
		t.Fatal("expected the higher layer's DryRun to win")
	}
}

func TestMergeLowerLayerSurvivesWhenHigherUnset(t *testing.T) {
	trueValue := true
	lower := Layer{CopyACL: &trueValue}
	higher := Layer{}

	merged := Merge(lower, higher)
	if !boolValue(merged.CopyACL) {
		t.Fatal("expected the lower layer's CopyACL to survive")
	}
}

func TestMergeFiltersReplaceRatherThanConcatenate(t *testing.T) {
	lower := Layer{Filters: []string{"ex:*.log"}}
	higher := Layer{Filters: []string{"in:*.keep"}}

	merged := Merge(lower, higher)
	if len(merged.Filters) != 1 || merged.Filters[0] != "in:*.keep" {
		t.Fatalf("expected filters to be replaced, got %v", merged.Filters)
	}
}

func TestMergeThreeLayersInOrder(t *testing.T) {
	defaultFalse := false
	fileTrue := true

	merged := Merge(
		Layer{DeleteExcluded: &defaultFalse},
		Layer{DeleteExcluded: &fileTrue},
		Layer{},
	)
	if !boolValue(merged.DeleteExcluded) {
		t.Fatal("expected the config-file layer to override the default")
	}
}
