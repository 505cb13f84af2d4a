package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/GatchaLife_Go/internal/domain"
)

// AsyncJob defines persistence for workflow jobs
type AsyncJob interface {
	CreateJob(ctx context.Context, job *domain.AsyncJob) error
	GetJob(ctx context.Context, id uuid.UUID) (*domain.AsyncJob, error)
	// UpdateJob stores status, result and error message of the job.
	UpdateJob(ctx context.Context, job *domain.AsyncJob) error
}
