package filesystem

import (
	"path/filepath"
	"testing"
)

func TestContainsIdentical(t *testing.T) {
	if !Contains("/a/b", "/a/b") {
		t.Fatal("expected identical paths to be contained")
	}
}

func TestContainsDescendant(t *testing.T) {
	if !Contains("/a/b", filepath.Join("/a/b", "c", "d")) {
		t.Fatal("expected descendant path to be contained")
	}
}

func TestContainsSibling(t *testing.T) {
	if Contains("/a/b", "/a/c") {
		t.Fatal("did not expect sibling path to be contained")
	}
}

func TestContainsUnrelatedPrefix(t *testing.T) {
	if Contains("/a/b", "/a/bc") {
		t.Fatal("did not expect lexical-prefix-only path to be contained")
	}
}
