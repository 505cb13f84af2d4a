package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GatchaLife_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(job))

	// Wait a bit for workers to process
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	require.NoError(t, pool.Stop(context.Background()))

	if atomic.LoadInt32(&executed) != TestExpectedJobCount {
		t.Errorf("Expected %d jobs executed, got %d", TestExpectedJobCount, executed)
	}
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(TestWorkerCount, TestQueueSize)
		pool.Start()
		pool.Enqueue(JobFunc(func(context.Context) error { return nil }))

		require.NoError(t, pool.Stop(context.Background()))
	})
}

func TestPool_EnqueueWhenFull(t *testing.T) {
	// No workers started, so the queue never drains.
	pool := NewPool(1, 1)

	assert.True(t, pool.Enqueue(JobFunc(func(context.Context) error { return nil })))
	assert.False(t, pool.Enqueue(JobFunc(func(context.Context) error { return nil })))
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	require.NoError(t, pool.Stop(context.Background()))

	assert.False(t, pool.Enqueue(JobFunc(func(context.Context) error { return nil })))
}

func TestPool_SurvivesFailingAndPanickingJobs(t *testing.T) {
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer func() { _ = pool.Stop(context.Background()) }()

	done := make(chan struct{})
	pool.Enqueue(JobFunc(func(context.Context) error { return errors.New("boom") }))
	pool.Enqueue(JobFunc(func(context.Context) error { panic("kaboom") }))
	pool.Enqueue(JobFunc(func(context.Context) error {
		close(done)
		return nil
	}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not survive failing jobs")
	}
}

func TestPool_StopTimeoutCancelsRunningJob(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()

	started := make(chan struct{})
	cancelled := make(chan struct{})
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		close(cancelled)
		return ctx.Err()
	}))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := pool.Stop(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("running job was not cancelled")
	}
}
