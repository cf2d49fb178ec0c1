package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestScheduler(t *testing.T, spec string, clock Clock, runs *int) *Scheduler {
	t.Helper()
	s, err := New(spec, time.Minute, clock, func(ctx context.Context) { *runs++ })
	require.NoError(t, err)
	return s
}

func TestNew_InvalidSchedule(t *testing.T) {
	_, err := New("not a cron spec", time.Minute, SystemClock(), func(ctx context.Context) {})
	require.Error(t, err)
}

func TestScheduler_NoRunBeforeTrigger(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 8, 30, 5, 0, 0, 0, time.UTC)}
	runs := 0
	s := newTestScheduler(t, "0 6 * * *", clock, &runs)

	assert.Equal(t, time.Date(2026, 8, 30, 6, 0, 0, 0, time.UTC), s.NextRun())

	// Polling up to one tick before the trigger never fires the job
	for clock.now.Before(time.Date(2026, 8, 30, 5, 59, 30, 0, time.UTC)) {
		assert.False(t, s.Tick(context.Background()), "Must not run before 06:00")
		clock.Advance(time.Minute)
	}
	assert.Zero(t, runs)
}

func TestScheduler_RunsWithinPollIntervalAfterTrigger(t *testing.T) {
	// Poll granularity of one minute: the job fires on the first tick
	// after the clock crosses 06:00:00, at most 60s late
	clock := &fakeClock{now: time.Date(2026, 8, 30, 5, 59, 30, 0, time.UTC)}
	runs := 0
	s := newTestScheduler(t, "0 6 * * *", clock, &runs)

	assert.False(t, s.Tick(context.Background()), "5:59:30 is before the trigger")

	clock.Advance(time.Minute) // 6:00:30
	assert.True(t, s.Tick(context.Background()), "First tick past 06:00 runs the job")
	assert.Equal(t, 1, runs)
}

func TestScheduler_ReschedulesForNextDay(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 8, 30, 6, 0, 30, 0, time.UTC)}
	runs := 0
	s := newTestScheduler(t, "0 6 * * *", clock, &runs)

	// Created just past today's trigger: next run is tomorrow
	assert.Equal(t, time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC), s.NextRun())

	clock.now = time.Date(2026, 8, 31, 6, 0, 15, 0, time.UTC)
	require.True(t, s.Tick(context.Background()))
	assert.Equal(t, 1, runs)
	assert.Equal(t, time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC), s.NextRun())

	// Further ticks the same day are no-ops
	clock.Advance(time.Minute)
	assert.False(t, s.Tick(context.Background()))
	assert.Equal(t, 1, runs)
}

func TestScheduler_SlowSyncDelaysNextCheckNotNextRun(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 8, 30, 5, 0, 0, 0, time.UTC)}
	runs := 0
	slowJob := func(ctx context.Context) {
		runs++
		// Simulate a sync that takes two hours; the reschedule still
		// lands on tomorrow's trigger, not a second run today
		clock.Advance(2 * time.Hour)
	}

	s, err := New("0 6 * * *", time.Minute, clock, slowJob)
	require.NoError(t, err)

	clock.now = time.Date(2026, 8, 30, 6, 0, 45, 0, time.UTC)
	require.True(t, s.Tick(context.Background()))
	assert.Equal(t, 1, runs)
	assert.Equal(t, time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC), s.NextRun())
}

func TestScheduler_RunStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s, err := New("0 6 * * *", 10*time.Millisecond, SystemClock(), func(ctx context.Context) {})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}
