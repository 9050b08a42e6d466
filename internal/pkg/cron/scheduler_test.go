package cron

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunsJobAtStartupAndOnInterval(t *testing.T) {
	s := NewScheduler(discardLogger())

	runs := make(chan struct{}, 64)
	s.Every(10*time.Millisecond, "tick", func(ctx context.Context) error {
		runs <- struct{}{}
		return nil
	})
	s.Start()
	defer s.Stop()

	// Startup run, then at least one ticker run.
	for i := 0; i < 2; i++ {
		select {
		case <-runs:
		case <-time.After(2 * time.Second):
			t.Fatalf("job did not run (run %d)", i+1)
		}
	}
}

func TestScheduler_StopHaltsJobs(t *testing.T) {
	s := NewScheduler(discardLogger())

	var count atomic.Int64
	s.Every(5*time.Millisecond, "tick", func(ctx context.Context) error {
		count.Add(1)
		return nil
	})
	s.Start()

	require.Eventually(t, func() bool { return count.Load() >= 2 }, 2*time.Second, time.Millisecond)

	s.Stop()
	after := count.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, count.Load())
}

func TestScheduler_FailingJobKeepsRunning(t *testing.T) {
	s := NewScheduler(discardLogger())

	var count atomic.Int64
	s.Every(5*time.Millisecond, "flaky", func(ctx context.Context) error {
		count.Add(1)
		return context.DeadlineExceeded
	})
	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return count.Load() >= 2 }, 2*time.Second, time.Millisecond)
}
