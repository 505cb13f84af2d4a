package worker

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/osse101/GatchaLife_Go/internal/collection"
	"github.com/osse101/GatchaLife_Go/internal/logger"
	"github.com/osse101/GatchaLife_Go/internal/metrics"
)

// Backfiller generates artwork for owned cards that have none.
type Backfiller interface {
	Backfill(ctx context.Context, limit int) (*collection.BackfillResult, error)
}

// BackfillJob retries artwork for drops that were granted without it. Runs
// never overlap; a run triggered while another is active is skipped.
type BackfillJob struct {
	backfiller Backfiller
	batch      int
	running    atomic.Bool
}

// NewBackfillJob creates a backfill job handling up to batch cards per run.
func NewBackfillJob(backfiller Backfiller, batch int) *BackfillJob {
	if batch <= 0 {
		batch = DefaultBackfillBatch
	}
	return &BackfillJob{backfiller: backfiller, batch: batch}
}

// Process runs one backfill pass.
func (j *BackfillJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if !j.running.CompareAndSwap(false, true) {
		log.Info(LogMsgBackfillStillBusy)
		metrics.BackfillRunsTotal.WithLabelValues(metrics.ResultSkipped).Inc()
		return nil
	}
	defer j.running.Store(false)

	log.Debug(LogMsgBackfillStarting, "batch", j.batch)
	if _, err := j.backfiller.Backfill(ctx, j.batch); err != nil {
		metrics.BackfillRunsTotal.WithLabelValues(metrics.ResultFailed).Inc()
		return fmt.Errorf("%s: %w", ErrMsgBackfillFailed, err)
	}
	metrics.BackfillRunsTotal.WithLabelValues(metrics.ResultCompleted).Inc()
	return nil
}
