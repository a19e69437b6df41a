package progress

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/copycat-sync/copycat/pkg/copycat"
	"github.com/copycat-sync/copycat/pkg/logging"
)

func TestNewTrackerAssignsRunID(t *testing.T) {
	var stats Stats
	tracker, err := NewTracker(&stats, 0, 0, logging.NewLogger(logging.LevelDisabled, os.Stderr))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if tracker.RunID() == "" {
		t.Fatal("expected a non-empty run identifier")
	}
}

func TestTrackerDetectsStall(t *testing.T) {
	var stats Stats
	tracker, err := NewTracker(&stats, 10*time.Millisecond, 5*time.Millisecond, logging.NewLogger(logging.LevelDisabled, os.Stderr))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	// Force the tracker's last-progress timestamp far enough into the past
	// that the very first tick observes a stall.
	tracker.lastProgressNanos = time.Now().Add(-time.Second).UnixNano()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err = tracker.Run(ctx)
	if err == nil {
		t.Fatal("expected a stall error")
	}
	if _, ok := err.(*copycat.StallError); !ok {
		t.Fatalf("expected a *copycat.StallError, got %T", err)
	}
}

func TestTrackerRunReturnsNilOnCancellation(t *testing.T) {
	var stats Stats
	tracker, err := NewTracker(&stats, 0, 5*time.Millisecond, logging.NewLogger(logging.LevelDisabled, os.Stderr))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := tracker.Run(ctx); err != nil {
		t.Fatalf("expected a nil error on cancellation, got %s", err)
	}
}

func TestTrackerTouchThrottlesUpdates(t *testing.T) {
	var stats Stats
	tracker, err := NewTracker(&stats, 0, 0, logging.NewLogger(logging.LevelDisabled, os.Stderr))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	before := tracker.lastProgressNanos
	tracker.Touch()
	if tracker.lastProgressNanos != before {
		t.Fatal("expected Touch to be throttled immediately after construction")
	}
}

func TestTrackerSummaryFormatsCounts(t *testing.T) {
	var stats Stats
	stats.AddFilesCopied(1024)
	tracker, err := NewTracker(&stats, 0, 0, logging.NewLogger(logging.LevelDisabled, os.Stderr))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if summary := tracker.Summary(); summary == "" {
		t.Fatal("expected a non-empty summary")
	}
}
