package task

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweeney/pico-controller/internal/status"
)

// DeadlineLoop runs a single task at a strict period and measures every
// iteration against the period budget. When an iteration finishes early the
// loop sleeps for the remainder; when it overruns, the loop logs a
// deadline-miss event with the overrun magnitude and starts the next
// iteration immediately. Misses are observed, never enforced: the loop does
// not abort, catch up, or skip.
type DeadlineLoop struct {
	Name   string
	Period time.Duration
	Step   func()

	// Tracker records deadline misses; may be nil.
	Tracker *status.Tracker

	Log zerolog.Logger

	// Now and Sleep are injectable for tests; nil means real time.
	Now   func() time.Time
	Sleep func(time.Duration)
}

// NewDeadlineLoop creates a loop on the real clock.
func NewDeadlineLoop(name string, period time.Duration, step func(), tracker *status.Tracker, log zerolog.Logger) *DeadlineLoop {
	return &DeadlineLoop{
		Name:    name,
		Period:  period,
		Step:    step,
		Tracker: tracker,
		Log:     log,
	}
}

// Run iterates until ctx is cancelled. The deployed node passes a context
// that never cancels; cancellation exists for tests.
func (l *DeadlineLoop) Run(ctx context.Context) {
	now := l.Now
	if now == nil {
		now = time.Now
	}
	sleep := l.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	l.Log.Info().
		Str("task", l.Name).
		Dur("period", l.Period).
		Msg("deadline loop starting")

	for ctx.Err() == nil {
		start := now()
		l.Step()
		elapsed := now().Sub(start)

		if elapsed <= l.Period {
			sleep(l.Period - elapsed)
			continue
		}

		l.Log.Warn().
			Str("task", l.Name).
			Dur("overrun", elapsed-l.Period).
			Dur("elapsed", elapsed).
			Dur("period", l.Period).
			Msg("deadline miss")
		if l.Tracker != nil {
			l.Tracker.RecordMiss()
		}
	}
}

// Periodic is one cooperatively scheduled task: Step runs once per Period.
type Periodic struct {
	Name   string
	Period time.Duration
	Step   func()
}

// Cooperative multiplexes periodic tasks on a single goroutine. A task
// yields only by returning from Step, so a long-running Step delays every
// other task's wake time. None of the tasks here carry a hard deadline, so
// that is an accepted property, not a fault.
type Cooperative struct {
	Tasks []Periodic
	Log   zerolog.Logger

	// Now and Sleep are injectable for tests; nil means real time.
	Now   func() time.Time
	Sleep func(time.Duration)
}

// NewCooperative creates a multiplexer on the real clock.
func NewCooperative(log zerolog.Logger, tasks ...Periodic) *Cooperative {
	return &Cooperative{Tasks: tasks, Log: log}
}

// Run iterates until ctx is cancelled: each task first sleeps out its own
// period, then steps once, then is rescheduled a full period after the step
// finished.
func (c *Cooperative) Run(ctx context.Context) {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	sleep := c.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	for _, t := range c.Tasks {
		c.Log.Info().
			Str("task", t.Name).
			Dur("period", t.Period).
			Msg("cooperative task starting")
	}

	next := make([]time.Time, len(c.Tasks))
	start := now()
	for i, t := range c.Tasks {
		next[i] = start.Add(t.Period)
	}

	for ctx.Err() == nil {
		// Pick the task with the earliest wake time.
		idx := 0
		for i := range next {
			if next[i].Before(next[idx]) {
				idx = i
			}
		}

		if d := next[idx].Sub(now()); d > 0 {
			sleep(d)
		}
		if ctx.Err() != nil {
			return
		}

		c.Tasks[idx].Step()
		next[idx] = now().Add(c.Tasks[idx].Period)
	}
}
