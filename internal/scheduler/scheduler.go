package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/osse101/GatchaLife_Go/internal/logger"
	"github.com/osse101/GatchaLife_Go/internal/worker"
)

// Scheduler enqueues jobs on the worker pool following cron specs.
type Scheduler struct {
	workerPool *worker.Pool
	cron       *cron.Cron
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		cron:       cron.New(cron.WithLogger(cronLogger{})),
	}
}

// Schedule registers a job. schedule accepts standard five field cron
// expressions and descriptors such as "@every 15m". An empty schedule leaves
// the job unscheduled.
func (s *Scheduler) Schedule(name, schedule string, job worker.Job) error {
	if schedule == "" {
		logger.Info(LogMsgJobDisabled, "job", name)
		return nil
	}
	_, err := s.cron.AddFunc(schedule, func() {
		if !s.workerPool.Enqueue(job) {
			logger.Warn(LogMsgJobNotQueued, "job", name)
		}
	})
	if err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgInvalidSchedule, schedule, err)
	}
	logger.Info(LogMsgJobScheduled, "job", name, "schedule", schedule)
	return nil
}

// Start begins firing scheduled jobs.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for the current trigger functions to
// return. Jobs already handed to the pool are stopped with the pool.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger routes cron's internal logging through slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	logger.Debug(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	logger.Error(msg, append(keysAndValues, "error", err)...)
}
