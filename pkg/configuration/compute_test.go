package configuration

import (
	"path/filepath"
	"testing"
	"time"
)

func TestComputeRequiresSourceAndTarget(t *testing.T) {
	if _, err := Compute(Defaults(), Layer{}, Layer{}); err == nil {
		t.Fatal("expected an error when source and target are unset")
	}
}

func TestComputeRejectsTargetInsideSource(t *testing.T) {
	source := t.TempDir()
	target := filepath.Join(source, "nested")

	cli := Layer{SourceRoot: source, TargetRoot: target}
	if _, err := Compute(Defaults(), Layer{}, cli); err == nil {
		t.Fatal("expected an error when target descends from source")
	}
}

func TestComputeRejectsSameObject(t *testing.T) {
	source := t.TempDir()

	cli := Layer{SourceRoot: source, TargetRoot: source}
	if _, err := Compute(Defaults(), Layer{}, cli); err == nil {
		t.Fatal("expected an error when source and target are identical")
	}
}

func TestComputeAcceptsFreshTarget(t *testing.T) {
	source := t.TempDir()
	parent := t.TempDir()
	target := filepath.Join(parent, "mirror")

	cli := Layer{SourceRoot: source, TargetRoot: target}
	config, err := Compute(Defaults(), Layer{}, cli)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if config.TargetRoot == "" {
		t.Fatal("expected a canonicalized target root")
	}
	if config.ThreadCount == 0 {
		t.Fatal("expected a nonzero default thread count")
	}
}

func TestComputeRejectsInvertedWindow(t *testing.T) {
	source := t.TempDir()
	parent := t.TempDir()
	target := filepath.Join(parent, "mirror")

	since := time.Now()
	until := since.Add(-time.Hour)

	cli := Layer{SourceRoot: source, TargetRoot: target, Since: &since, Until: &until}
	if _, err := Compute(Defaults(), Layer{}, cli); err == nil {
		t.Fatal("expected an error when --since is not before --until")
	}
}

func TestComputeRejectsInvalidFilterPattern(t *testing.T) {
	source := t.TempDir()
	parent := t.TempDir()
	target := filepath.Join(parent, "mirror")

	cli := Layer{SourceRoot: source, TargetRoot: target, Filters: []string{"nope:*.log"}}
	if _, err := Compute(Defaults(), Layer{}, cli); err == nil {
		t.Fatal("expected an error for an unrecognized filter prefix")
	}
}

func TestComputeHonorsExplicitThreadCount(t *testing.T) {
	source := t.TempDir()
	parent := t.TempDir()
	target := filepath.Join(parent, "mirror")

	threads := uint32(3)
	cli := Layer{SourceRoot: source, TargetRoot: target, ThreadCount: &threads}
	config, err := Compute(Defaults(), Layer{}, cli)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if config.ThreadCount != 3 {
		t.Fatalf("expected thread count 3, got %d", config.ThreadCount)
	}
}
