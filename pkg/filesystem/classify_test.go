package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClassifyRegularFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	attrs, err := Classify(path)
	if err != nil {
		t.Fatal(err)
	}
	if attrs.Kind != EntryKindFile {
		t.Fatalf("expected EntryKindFile, got %s", attrs.Kind)
	}
	if attrs.Size != 5 {
		t.Fatalf("expected size 5, got %d", attrs.Size)
	}
}

func TestClassifyDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}

	attrs, err := Classify(sub)
	if err != nil {
		t.Fatal(err)
	}
	if attrs.Kind != EntryKindDirectory {
		t.Fatalf("expected EntryKindDirectory, got %s", attrs.Kind)
	}
}

func TestClassifyBrokenSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "link")
	if err := os.Symlink(filepath.Join(dir, "does-not-exist"), link); err != nil {
		t.Fatal(err)
	}

	attrs, err := Classify(link)
	if err != nil {
		t.Fatal(err)
	}
	if attrs.Kind != EntryKindBrokenSymlink {
		t.Fatalf("expected EntryKindBrokenSymlink, got %s", attrs.Kind)
	}
}

func TestClassifyFileSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	if err := os.WriteFile(target, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	attrs, err := Classify(link)
	if err != nil {
		t.Fatal(err)
	}
	if attrs.Kind != EntryKindFileSymlink {
		t.Fatalf("expected EntryKindFileSymlink, got %s", attrs.Kind)
	}
	if attrs.LinkTarget != target {
		t.Fatalf("expected link target %s, got %s", target, attrs.LinkTarget)
	}
}

func TestClassifyDirSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "targetdir")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	attrs, err := Classify(link)
	if err != nil {
		t.Fatal(err)
	}
	if attrs.Kind != EntryKindDirSymlink {
		t.Fatalf("expected EntryKindDirSymlink, got %s", attrs.Kind)
	}
}

func TestClassifyNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := Classify(filepath.Join(dir, "missing"))
	if !IsNotExist(err) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}
