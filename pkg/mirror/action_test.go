package mirror

import (
	"testing"
	"time"

	"github.com/copycat-sync/copycat/pkg/filesystem"
)

func TestDecideFileEntryCopyWhenMissing(t *testing.T) {
	source := filesystem.EntryAttrs{Kind: filesystem.EntryKindFile}
	if got := DecideFileEntry(source, false, filesystem.EntryAttrs{}); got != ActionCopyFile {
		t.Fatalf("expected ActionCopyFile, got %s", got)
	}
}

func TestDecideFileEntrySkipWhenEqual(t *testing.T) {
	now := time.Now()
	source := filesystem.EntryAttrs{Kind: filesystem.EntryKindFile, Size: 10, ModificationTime: now}
	target := filesystem.EntryAttrs{Kind: filesystem.EntryKindFile, Size: 10, ModificationTime: now}
	if got := DecideFileEntry(source, true, target); got != ActionSkip {
		t.Fatalf("expected ActionSkip, got %s", got)
	}
}

func TestDecideFileEntryOverwriteWhenUnequalSameKind(t *testing.T) {
	source := filesystem.EntryAttrs{Kind: filesystem.EntryKindFile, Size: 20, ModificationTime: time.Now()}
	target := filesystem.EntryAttrs{Kind: filesystem.EntryKindFile, Size: 10, ModificationTime: time.Now().Add(-time.Hour)}
	if got := DecideFileEntry(source, true, target); got != ActionOverwriteFile {
		t.Fatalf("expected ActionOverwriteFile, got %s", got)
	}
}

func TestDecideFileEntryReplaceWhenKindChanged(t *testing.T) {
	source := filesystem.EntryAttrs{Kind: filesystem.EntryKindFile}
	target := filesystem.EntryAttrs{Kind: filesystem.EntryKindFileSymlink}
	if got := DecideFileEntry(source, true, target); got != ActionReplaceWithFile {
		t.Fatalf("expected ActionReplaceWithFile, got %s", got)
	}
}

func TestDecideFileEntryBrokenSymlinkAlwaysReplaces(t *testing.T) {
	source := filesystem.EntryAttrs{Kind: filesystem.EntryKindBrokenSymlink}
	if got := DecideFileEntry(source, true, filesystem.EntryAttrs{Kind: filesystem.EntryKindFile}); got != ActionReplaceSymlink {
		t.Fatalf("expected ActionReplaceSymlink, got %s", got)
	}
}

func TestDecideFileEntrySkipsOtherKinds(t *testing.T) {
	source := filesystem.EntryAttrs{Kind: filesystem.EntryKindOther}
	if got := DecideFileEntry(source, false, filesystem.EntryAttrs{}); got != ActionSkip {
		t.Fatalf("expected ActionSkip for an unhandled entry kind, got %s", got)
	}
}
