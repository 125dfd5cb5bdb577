package ports

import (
	"context"
	"time"
)

type Task func(ctx context.Context) error

// Scheduler runs a task on a cron expression with a seconds field.
type Scheduler interface {
	Schedule(ctx context.Context, spec string, task Task) error
	Stop()
}

type SchedulerFactory interface {
	CreateScheduler(timeout time.Duration) Scheduler
}

// Clock returns the current instant. Injected where "today" matters.
type Clock func() time.Time
