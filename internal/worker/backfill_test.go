package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GatchaLife_Go/internal/collection"
	"github.com/osse101/GatchaLife_Go/mocks"
)

func TestBackfillJob_Process(t *testing.T) {
	t.Run("runs one pass with the configured batch", func(t *testing.T) {
		svc := mocks.NewMockCollectionService(t)
		svc.EXPECT().Backfill(mock.Anything, 25).Return(&collection.BackfillResult{Scanned: 2, Generated: 2}, nil)

		err := NewBackfillJob(svc, 25).Process(context.Background())

		require.NoError(t, err)
	})

	t.Run("non-positive batch falls back to the default", func(t *testing.T) {
		svc := mocks.NewMockCollectionService(t)
		svc.EXPECT().Backfill(mock.Anything, DefaultBackfillBatch).Return(&collection.BackfillResult{}, nil)

		require.NoError(t, NewBackfillJob(svc, 0).Process(context.Background()))
	})

	t.Run("errors are wrapped", func(t *testing.T) {
		svc := mocks.NewMockCollectionService(t)
		svc.EXPECT().Backfill(mock.Anything, 5).Return(nil, errors.New("db down"))

		err := NewBackfillJob(svc, 5).Process(context.Background())

		assert.ErrorContains(t, err, ErrMsgBackfillFailed)
	})

	t.Run("overlapping run is skipped", func(t *testing.T) {
		svc := mocks.NewMockCollectionService(t)
		job := NewBackfillJob(svc, 5)
		job.running.Store(true)

		err := job.Process(context.Background())

		assert.NoError(t, err)
		svc.AssertNotCalled(t, "Backfill", mock.Anything, mock.Anything)
	})
}
