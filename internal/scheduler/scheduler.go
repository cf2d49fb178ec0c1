// Package scheduler drives the daily sync on a cooperative polling
// loop: a ticker fires on a fixed interval and the job runs once the
// wall clock crosses the next cron trigger time. The job executes
// inline on the loop goroutine, so two syncs can never overlap - a
// slow sync simply delays the next check.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"football_sync/ingestion/internal/metrics"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Clock abstracts wall-clock time so the loop is testable without
// sleeping through real trigger windows
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock
func SystemClock() Clock { return systemClock{} }

// Scheduler holds the loop state: the parsed trigger schedule, the
// poll interval, and the next pending run time
type Scheduler struct {
	schedule cron.Schedule
	clock    Clock
	interval time.Duration
	job      func(ctx context.Context)
	nextRun  time.Time
}

// New creates a scheduler from a standard cron expression, e.g.
// "0 6 * * *" for daily at 06:00
func New(spec string, pollInterval time.Duration, clock Clock, job func(ctx context.Context)) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sync schedule %q: %w", spec, err)
	}

	s := &Scheduler{
		schedule: schedule,
		clock:    clock,
		interval: pollInterval,
		job:      job,
	}
	s.nextRun = s.schedule.Next(s.clock.Now())

	return s, nil
}

// NextRun returns the pending trigger time
func (s *Scheduler) NextRun() time.Time {
	return s.nextRun
}

// Run blocks, polling the trigger condition every interval until the
// context is cancelled. Actual trigger time may drift up to one poll
// interval past the scheduled time.
func (s *Scheduler) Run(ctx context.Context) {
	log.Info().
		Time("next_run", s.nextRun).
		Dur("poll_interval", s.interval).
		Msg("Scheduler started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Scheduler stopped")
			return
		case <-ticker.C:
			metrics.RecordSchedulerIteration()
			s.Tick(ctx)
		}
	}
}

// Tick runs the job when the clock has crossed the next trigger time
// and reschedules; otherwise it is a no-op. Returns whether the job
// ran.
func (s *Scheduler) Tick(ctx context.Context) bool {
	now := s.clock.Now()
	if now.Before(s.nextRun) {
		return false
	}

	log.Info().Time("scheduled_for", s.nextRun).Msg("Trigger time reached, running sync")
	s.job(ctx)

	s.nextRun = s.schedule.Next(s.clock.Now())
	log.Info().Time("next_run", s.nextRun).Msg("Next sync scheduled")

	return true
}
