// Package schedule runs recurring tasks through a cron facade. The reset
// command uses it to keep a demo database pristine on a fixed interval.
package schedule

import (
	"context"
	"fmt"
	"time"
)

// Interval represents a cron schedule interval.
type Interval string

const (
	EveryMinute    Interval = "*/1 * * * *"  // Run every minute
	Every5Minutes  Interval = "*/5 * * * *"  // Run every 5 minutes
	Every10Minutes Interval = "*/10 * * * *" // Run every 10 minutes
	Every15Minutes Interval = "*/15 * * * *" // Run every 15 minutes
	Every30Minutes Interval = "*/30 * * * *" // Run every 30 minutes
	EveryHour      Interval = "@hourly"      // Run every hour
)

// Scheduler is an interface for scheduling tasks.
type Scheduler interface {
	Task(ctx context.Context, interval Interval, task func(context.Context) error) error
	GetTimezone() *time.Location
	Stop()
}

// scheduler is a simple cron scheduler.
type scheduler struct {
	timezone *time.Location
	cron     Cron
}

// NewScheduler creates a new scheduler instance with the given timezone.
//
// Parameters:
//   - timezone: the timezone for the scheduler
//
// Returns:
//   - Scheduler: the scheduler instance
//   - error: an error if the operation failed
func NewScheduler(timezone *time.Location) (Scheduler, error) {
	if timezone == nil {
		return nil, fmt.Errorf("timezone cannot be nil")
	}

	sc := &scheduler{
		timezone: timezone,
		cron:     newCron(timezone),
	}
	sc.cron.Start()

	return sc, nil
}

// Task schedules a task to run at the given interval.
//
// Errors returned by the task are handed to the context-free cron runner
// and dropped; tasks that care should report failures themselves.
//
// Parameters:
//   - ctx: the context passed to each task run
//   - interval: the schedule for the task
//   - task: the task to execute
//
// Returns:
//   - error: an error if the operation failed
func (sc *scheduler) Task(
	ctx context.Context,
	interval Interval,
	task func(context.Context) error,
) error {
	_, err := sc.cron.AddFunc(string(interval), func() {
		_ = task(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule task: %w", err)
	}

	return nil
}

// GetTimezone returns the scheduler timezone.
func (sc *scheduler) GetTimezone() *time.Location {
	return sc.timezone
}

// Stop stops the scheduler.
func (sc *scheduler) Stop() {
	if sc.cron != nil {
		sc.cron.Stop()
	}
}
