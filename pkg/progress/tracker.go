package progress

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"github.com/copycat-sync/copycat/pkg/copycat"
	"github.com/copycat-sync/copycat/pkg/logging"
)

// touchThrottle is the minimum spacing between recorded progress
// timestamps: updated with compare-and-swap from completion callbacks at
// most every 500ms, to reduce cache-line contention.
const touchThrottle = 500 * time.Millisecond

// throughputWindow is the effective averaging window for the EWMA
// throughput estimate.
const throughputWindow = 30 * time.Second

// Tracker watches a Stats for activity, emits periodic human-readable
// status lines, and raises a fatal StallError when no progress has been
// observed for longer than its configured timeout.
type Tracker struct {
	id           uuid.UUID
	stats        *Stats
	logger       *logging.Logger
	stallTimeout time.Duration
	interval     time.Duration

	lastProgressNanos int64

	throughputMu   sync.Mutex
	ewmaBytesPerSecond float64
	lastSampleBytes    uint64
	lastSampleAt       time.Time
}

// NewTracker constructs a Tracker. stallTimeout of zero disables stall
// detection, since stall detection is optional. interval of zero selects
// a default of 5 seconds between status lines.
func NewTracker(stats *Stats, stallTimeout time.Duration, interval time.Duration, logger *logging.Logger) (*Tracker, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "unable to generate run identifier")
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	now := time.Now()
	return &Tracker{
		id:                id,
		stats:             stats,
		logger:            logger,
		stallTimeout:      stallTimeout,
		interval:          interval,
		lastProgressNanos: now.UnixNano(),
		lastSampleAt:      now,
	}, nil
}

// RunID returns the run identifier. Its first 8 characters are attached to
// every periodic status line; Summary and the stall error do not carry it.
func (t *Tracker) RunID() string {
	return t.id.String()
}

// Touch records that progress was just made. It is safe to call from any
// worker goroutine; the CAS loop ensures concurrent callers never block
// each other and that the timestamp is updated at most once per
// touchThrottle interval.
func (t *Tracker) Touch() {
	now := time.Now().UnixNano()
	for {
		last := atomic.LoadInt64(&t.lastProgressNanos)
		if now-last < int64(touchThrottle) {
			return
		}
		if atomic.CompareAndSwapInt64(&t.lastProgressNanos, last, now) {
			return
		}
	}
}

// Run drives the periodic reporter until ctx is cancelled or a stall is
// detected, at which point it returns a *copycat.StallError. A nil return
// means ctx was cancelled normally (the sync finished or was interrupted).
func (t *Tracker) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := t.tick(); err != nil {
				return err
			}
		}
	}
}

func (t *Tracker) tick() error {
	if t.stallTimeout > 0 {
		lastProgress := time.Unix(0, atomic.LoadInt64(&t.lastProgressNanos))
		if idle := time.Since(lastProgress); idle > t.stallTimeout {
			return copycat.NewStallError("operation appears stuck: no progress for %s", idle.Round(time.Second))
		}
	}

	snapshot := t.stats.Snapshot()
	throughput := t.sampleThroughput(snapshot.BytesCopied)

	t.logger.Infof(
		"[%s] %s copied (%s), %d deleted, %d skipped, %d errors, %s/s",
		t.id.String()[:8],
		humanize.Comma(int64(snapshot.FilesCopied)),
		humanize.Bytes(snapshot.BytesCopied),
		snapshot.FilesDeleted,
		snapshot.Skipped,
		snapshot.Errors,
		humanize.Bytes(uint64(math.Max(throughput, 0))),
	)

	return nil
}

// sampleThroughput folds the bytes copied since the last sample into an
// exponentially-weighted moving average with an effective window of
// throughputWindow.
func (t *Tracker) sampleThroughput(totalBytes uint64) float64 {
	t.throughputMu.Lock()
	defer t.throughputMu.Unlock()

	now := time.Now()
	elapsed := now.Sub(t.lastSampleAt)
	if elapsed <= 0 {
		return t.ewmaBytesPerSecond
	}

	var delta uint64
	if totalBytes > t.lastSampleBytes {
		delta = totalBytes - t.lastSampleBytes
	}
	instantaneous := float64(delta) / elapsed.Seconds()

	alpha := 1 - math.Exp(-elapsed.Seconds()/throughputWindow.Seconds())
	t.ewmaBytesPerSecond = alpha*instantaneous + (1-alpha)*t.ewmaBytesPerSecond

	t.lastSampleBytes = totalBytes
	t.lastSampleAt = now

	return t.ewmaBytesPerSecond
}

// Summary renders a final, one-line human-readable report, used once a run
// completes (successfully or not) rather than on the periodic ticker.
func (t *Tracker) Summary() string {
	snapshot := t.stats.Snapshot()
	return fmt.Sprintf(
		"%s files copied (%s), %d deleted, %d dirs created, %d dirs deleted, %d skipped, %d errors",
		humanize.Comma(int64(snapshot.FilesCopied)),
		humanize.Bytes(snapshot.BytesCopied),
		snapshot.FilesDeleted,
		snapshot.DirsCreated,
		snapshot.DirsDeleted,
		snapshot.Skipped,
		snapshot.Errors,
	)
}
