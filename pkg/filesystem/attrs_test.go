package filesystem

import (
	"testing"
	"time"
)

func TestEqualForSyncMatchesWithinSecondPrecision(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	source := EntryAttrs{Size: 100, ModificationTime: base}
	target := EntryAttrs{Size: 100, ModificationTime: base.Add(400 * time.Millisecond)}

	if !EqualForSync(source, target) {
		t.Fatal("expected entries within the same second to be equal")
	}
}

func TestEqualForSyncDiffersOnSize(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	source := EntryAttrs{Size: 100, ModificationTime: base}
	target := EntryAttrs{Size: 200, ModificationTime: base}

	if EqualForSync(source, target) {
		t.Fatal("expected differing sizes to be unequal")
	}
}

func TestEqualForSyncDiffersAcrossSecondBoundary(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	source := EntryAttrs{Size: 100, ModificationTime: base}
	target := EntryAttrs{Size: 100, ModificationTime: base.Add(1100 * time.Millisecond)}

	if EqualForSync(source, target) {
		t.Fatal("expected entries a full second apart to be unequal")
	}
}
