package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jfgoncalves/morning-weather/internal/domain/ports"
	"github.com/jfgoncalves/morning-weather/internal/pkg/logger"
	"github.com/robfig/cron/v3"
)

// CronScheduler runs tasks on six-field cron expressions (seconds first).
// A task still running when its next tick fires is skipped, so runs never
// overlap.
type CronScheduler struct {
	cron    *cron.Cron
	timeout time.Duration
	logger  logger.Logger

	mu      sync.Mutex
	started bool
	entries map[cron.EntryID]context.CancelFunc
}

func NewCronScheduler(timeout time.Duration, log logger.Logger) *CronScheduler {
	return &CronScheduler{
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		timeout: timeout,
		logger:  logger.Component(log, "cron_scheduler"),
		entries: make(map[cron.EntryID]context.CancelFunc),
	}
}

func (s *CronScheduler) Schedule(ctx context.Context, spec string, task ports.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	taskCtx, cancel := context.WithCancel(ctx)

	entryID, err := s.cron.AddFunc(spec, s.wrapTask(taskCtx, task))
	if err != nil {
		cancel()
		return fmt.Errorf("invalid cron expression %q: %w", spec, err)
	}
	s.entries[entryID] = cancel

	if !s.started {
		s.cron.Start()
		s.started = true
		s.logger.Info("Cron scheduler started")
	}

	s.logger.Infof("Task scheduled with entry ID %d on %q, next run at %s",
		entryID, spec, s.cron.Entry(entryID).Next.Format(time.RFC3339))
	return nil
}

func (s *CronScheduler) wrapTask(ctx context.Context, task ports.Task) func() {
	return func() {
		startTime := time.Now()
		s.logger.Debug("Starting scheduled task")

		taskCtx, cancel := s.taskContext(ctx)
		defer cancel()

		if err := task(taskCtx); err != nil {
			s.logger.Errorf("Task failed after %v: %v", time.Since(startTime), err)
			return
		}

		s.logger.Debugf("Task completed successfully in %v", time.Since(startTime))
	}
}

func (s *CronScheduler) taskContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Stop cancels running tasks and waits for them to return.
func (s *CronScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("Stopping cron scheduler")

	for entryID, cancel := range s.entries {
		s.logger.Debugf("Cancelling task with entry ID: %d", entryID)
		cancel()
		s.cron.Remove(entryID)
	}
	s.entries = make(map[cron.EntryID]context.CancelFunc)

	<-s.cron.Stop().Done()
	s.started = false

	s.logger.Info("Cron scheduler stopped")
}

func (s *CronScheduler) Entries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// ValidateSpec reports whether spec parses as a six-field cron expression.
func ValidateSpec(spec string) error {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(spec); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", spec, err)
	}
	return nil
}

type CronSchedulerFactory struct {
	logger logger.Logger
}

func NewCronSchedulerFactory(log logger.Logger) ports.SchedulerFactory {
	return &CronSchedulerFactory{logger: log}
}

func (f *CronSchedulerFactory) CreateScheduler(timeout time.Duration) ports.Scheduler {
	logger.Component(f.logger, "cron_scheduler_factory").Infof("Creating CronScheduler with timeout: %v", timeout)
	return NewCronScheduler(timeout, f.logger)
}
