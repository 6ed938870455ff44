package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsJobImmediatelyOnStart(t *testing.T) {
	s := NewScheduler()
	ran := make(chan struct{}, 1)

	s.AddJob("first-run", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not fire on start")
	}
}

func TestScheduler_StopWaitsForJobGoroutines(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32

	s.AddJob("counter", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	after := runs.Load()
	assert.GreaterOrEqual(t, after, int32(1))

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, runs.Load(), "job kept running after Stop")
}

func TestScheduler_PanickingJobDoesNotStopOthers(t *testing.T) {
	s := NewScheduler()
	var healthy atomic.Int32

	s.AddJob("broken", 10*time.Millisecond, func(ctx context.Context) error {
		panic("boom")
	})
	s.AddJob("healthy", 10*time.Millisecond, func(ctx context.Context) error {
		healthy.Add(1)
		return errors.New("logged, not fatal")
	})

	s.Start()
	time.Sleep(60 * time.Millisecond)
	s.Stop()

	assert.GreaterOrEqual(t, healthy.Load(), int32(2))
}

func TestScheduler_AddJobAfterStartIsIgnored(t *testing.T) {
	s := NewScheduler()
	s.Start()
	defer s.Stop()

	ran := make(chan struct{}, 1)
	s.AddJob("late", time.Millisecond, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	select {
	case <-ran:
		t.Fatal("job registered after start should not run")
	case <-time.After(50 * time.Millisecond):
	}
}
