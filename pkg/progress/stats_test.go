package progress

import "testing"

func TestStatsAccumulate(t *testing.T) {
	var stats Stats
	stats.AddFilesCopied(100)
	stats.AddFilesCopied(50)
	stats.AddFilesDeleted()
	stats.AddDirsCreated()
	stats.AddDirsDeleted()
	stats.AddSkipped()
	stats.AddError()
	stats.AddError()

	snapshot := stats.Snapshot()
	if snapshot.FilesCopied != 2 {
		t.Fatalf("expected 2 files copied, got %d", snapshot.FilesCopied)
	}
	if snapshot.BytesCopied != 150 {
		t.Fatalf("expected 150 bytes copied, got %d", snapshot.BytesCopied)
	}
	if snapshot.FilesDeleted != 1 || snapshot.DirsCreated != 1 || snapshot.DirsDeleted != 1 || snapshot.Skipped != 1 {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
	if snapshot.Errors != 2 {
		t.Fatalf("expected 2 errors, got %d", snapshot.Errors)
	}
	if stats.ErrorCount() != 2 {
		t.Fatalf("expected ErrorCount 2, got %d", stats.ErrorCount())
	}
}
