package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GatchaLife_Go/internal/logger"
	"github.com/osse101/GatchaLife_Go/internal/metrics"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface.
type JobFunc func(ctx context.Context) error

// Process calls f.
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool runs queued jobs on a fixed number of goroutines.
type Pool struct {
	workers    int
	jobQueue   chan Job
	jobTimeout time.Duration
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once

	// ctx is the parent of every job context; it is cancelled only when
	// Stop gives up waiting.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, queueSize),
		jobTimeout: DefaultJobTimeout,
		quit:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			metrics.WorkerQueueDepth.Set(float64(len(p.jobQueue)))
			p.run(id, job)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) run(id int, job Job) {
	ctx, cancel := context.WithTimeout(p.ctx, p.jobTimeout)
	defer cancel()
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx).With("worker", id)

	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgWorkerJobPanic, "panic", fmt.Sprint(r))
		}
	}()

	if err := job.Process(ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job to the queue without blocking. It reports false when
// the queue is full or the pool is stopped.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}
	select {
	case p.jobQueue <- job:
		metrics.WorkerQueueDepth.Set(float64(len(p.jobQueue)))
		return true
	default:
		logger.Warn(LogMsgQueueFull, "queue_size", cap(p.jobQueue))
		return false
	}
}

// Stop waits for running jobs to finish. When ctx expires first the running
// jobs are cancelled. Queued jobs that have not started are dropped.
func (p *Pool) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		logger.Info(LogMsgPoolStopping, "pending", len(p.jobQueue))
		close(p.quit)
	})

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		logger.Warn(LogMsgPoolStopTimeout)
		p.cancel()
		return ctx.Err()
	}
}
