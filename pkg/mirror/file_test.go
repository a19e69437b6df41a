package mirror

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/copycat-sync/copycat/pkg/configuration"
	"github.com/copycat-sync/copycat/pkg/filesystem"
)

func TestExecuteCopyFileWritesContent(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "source.txt")
	target := filepath.Join(root, "target.txt")
	if err := os.WriteFile(source, []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}

	sourceAttrs, err := filesystem.Classify(source)
	if err != nil {
		t.Fatal(err)
	}

	err = Execute(context.Background(), &configuration.SyncConfig{}, ActionCopyFile, source, target, sourceAttrs, filesystem.EntryAttrs{}, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	data, readErr := os.ReadFile(target)
	if readErr != nil {
		t.Fatalf("unable to read copied file: %s", readErr)
	}
	if string(data) != "payload" {
		t.Fatalf("expected copied content %q, got %q", "payload", string(data))
	}
}

func TestExecuteReplaceWithFileRemovesConflictingDirectory(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "source.txt")
	target := filepath.Join(root, "target")
	if err := os.WriteFile(source, []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}

	sourceAttrs, err := filesystem.Classify(source)
	if err != nil {
		t.Fatal(err)
	}
	targetAttrs, err := filesystem.Classify(target)
	if err != nil {
		t.Fatal(err)
	}

	err = Execute(context.Background(), &configuration.SyncConfig{}, ActionReplaceWithFile, source, target, sourceAttrs, targetAttrs, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	info, statErr := os.Stat(target)
	if statErr != nil {
		t.Fatalf("expected target to exist as a file: %s", statErr)
	}
	if info.IsDir() {
		t.Fatal("expected the conflicting directory to have been replaced by a file")
	}
}

func TestExecuteDryRunSkipsMutation(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "source.txt")
	target := filepath.Join(root, "target.txt")
	if err := os.WriteFile(source, []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}

	sourceAttrs, err := filesystem.Classify(source)
	if err != nil {
		t.Fatal(err)
	}

	cfg := &configuration.SyncConfig{DryRun: true}
	err = Execute(context.Background(), cfg, ActionCopyFile, source, target, sourceAttrs, filesystem.EntryAttrs{}, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, statErr := os.Stat(target); !os.IsNotExist(statErr) {
		t.Fatal("expected dry-run to perform no mutation")
	}
}

func TestExecuteReplaceSymlinkCreatesLink(t *testing.T) {
	root := t.TempDir()
	linkTarget := filepath.Join(root, "does-not-exist")
	source := filepath.Join(root, "link")
	target := filepath.Join(root, "target-link")
	if err := os.Symlink(linkTarget, source); err != nil {
		t.Fatal(err)
	}

	sourceAttrs, err := filesystem.Classify(source)
	if err != nil {
		t.Fatal(err)
	}
	if sourceAttrs.Kind != filesystem.EntryKindBrokenSymlink {
		t.Fatalf("expected a broken symlink classification, got %s", sourceAttrs.Kind)
	}

	err = Execute(context.Background(), &configuration.SyncConfig{}, ActionReplaceSymlink, source, target, sourceAttrs, filesystem.EntryAttrs{}, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	got, readErr := os.Readlink(target)
	if readErr != nil {
		t.Fatalf("expected a symlink at target: %s", readErr)
	}
	if got != linkTarget {
		t.Fatalf("expected link target %q, got %q", linkTarget, got)
	}
}
