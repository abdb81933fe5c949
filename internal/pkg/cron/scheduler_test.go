package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()

	var ran int64
	s.Register("counter", time.Hour, func(ctx context.Context) error {
		atomic.AddInt64(&ran, 1)
		return nil
	})
	s.Register("failing", time.Hour, func(ctx context.Context) error {
		return errors.New("boom")
	})

	// A failing job must not stop the others.
	s.RunOnce(context.Background())
	s.RunOnce(context.Background())
	assert.Equal(t, int64(2), atomic.LoadInt64(&ran))
}

func TestScheduler_StartRunsJobsImmediately(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{})
	var once int64
	s.Register("immediate", time.Hour, func(ctx context.Context) error {
		if atomic.AddInt64(&once, 1) == 1 {
			close(done)
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		require.Fail(t, "job did not run on start")
	}
}

func TestScheduler_StopWaitsForJobs(t *testing.T) {
	s := NewScheduler()

	var finished atomic.Bool
	s.Register("slow", time.Hour, func(ctx context.Context) error {
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
		return nil
	})

	s.Start()
	s.Stop()
	assert.True(t, finished.Load())
}
