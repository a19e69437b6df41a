package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestCopyFileContentAtomicWritesDestination(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source.txt")
	destination := filepath.Join(dir, "destination.txt")
	content := []byte("the quick brown fox")
	if err := os.WriteFile(source, content, 0644); err != nil {
		t.Fatal(err)
	}

	written, err := CopyFileContentAtomic(context.Background(), source, destination, 0644, nil)
	if err != nil {
		t.Fatal(err)
	}
	if written != int64(len(content)) {
		t.Fatalf("expected %d bytes written, got %d", len(content), written)
	}

	result, err := os.ReadFile(destination)
	if err != nil {
		t.Fatal(err)
	}
	if string(result) != string(content) {
		t.Fatalf("destination content mismatch: got %q", result)
	}
}

func TestCopyFileContentAtomicLeavesNoTemporaryFiles(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source.txt")
	destination := filepath.Join(dir, "destination.txt")
	if err := os.WriteFile(source, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := CopyFileContentAtomic(context.Background(), source, destination, 0644, nil); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if entry.Name() != "source.txt" && entry.Name() != "destination.txt" {
			t.Fatalf("unexpected leftover entry: %s", entry.Name())
		}
	}
}
