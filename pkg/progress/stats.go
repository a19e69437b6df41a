// Package progress implements Copycat's progress and stats component:
// lock-free run counters, an EWMA throughput estimate, and a background
// reporter that emits periodic human-readable status lines and detects a
// stalled run.
package progress

import "sync/atomic"

// Stats holds the monotonic counters updated by the worker pool as it
// processes entries. Every field is mutated exclusively through atomic
// operations so that workers never contend on a lock merely to report
// progress.
type Stats struct {
	filesCopied  uint64
	bytesCopied  uint64
	filesDeleted uint64
	dirsCreated  uint64
	dirsDeleted  uint64
	skipped      uint64
	errors       uint64
}

// AddFilesCopied increments the copied-file counter by one and the
// byte counter by the given size.
func (s *Stats) AddFilesCopied(bytes uint64) {
	atomic.AddUint64(&s.filesCopied, 1)
	atomic.AddUint64(&s.bytesCopied, bytes)
}

// AddFilesDeleted increments the deleted-file counter by one.
func (s *Stats) AddFilesDeleted() { atomic.AddUint64(&s.filesDeleted, 1) }

// AddDirsCreated increments the created-directory counter by one.
func (s *Stats) AddDirsCreated() { atomic.AddUint64(&s.dirsCreated, 1) }

// AddDirsDeleted increments the deleted-directory counter by one.
func (s *Stats) AddDirsDeleted() { atomic.AddUint64(&s.dirsDeleted, 1) }

// AddSkipped increments the skipped-entry counter by one.
func (s *Stats) AddSkipped() { atomic.AddUint64(&s.skipped, 1) }

// AddError increments the error counter by one.
func (s *Stats) AddError() { atomic.AddUint64(&s.errors, 1) }

// Snapshot is an eventually-consistent read of every counter at one
// instant, used for reporting and for the final summary printed at the end
// of a run.
type Snapshot struct {
	FilesCopied  uint64
	BytesCopied  uint64
	FilesDeleted uint64
	DirsCreated  uint64
	DirsDeleted  uint64
	Skipped      uint64
	Errors       uint64
}

// Snapshot reads every counter. Because the fields are read independently,
// the result may not reflect a single consistent instant under concurrent
// writers; callers should treat stats reads as eventually consistent.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		FilesCopied:  atomic.LoadUint64(&s.filesCopied),
		BytesCopied:  atomic.LoadUint64(&s.bytesCopied),
		FilesDeleted: atomic.LoadUint64(&s.filesDeleted),
		DirsCreated:  atomic.LoadUint64(&s.dirsCreated),
		DirsDeleted:  atomic.LoadUint64(&s.dirsDeleted),
		Skipped:      atomic.LoadUint64(&s.skipped),
		Errors:       atomic.LoadUint64(&s.errors),
	}
}

// ErrorCount returns the current error count without building a full
// Snapshot, used by the engine's fail-fast handling.
func (s *Stats) ErrorCount() uint64 {
	return atomic.LoadUint64(&s.errors)
}
