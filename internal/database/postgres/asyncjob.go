package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GatchaLife_Go/internal/domain"
)

// AsyncJobRepository implements the async job repository for PostgreSQL
type AsyncJobRepository struct {
	db *pgxpool.Pool
}

// NewAsyncJobRepository creates a new AsyncJobRepository
func NewAsyncJobRepository(db *pgxpool.Pool) *AsyncJobRepository {
	return &AsyncJobRepository{db: db}
}

// CreateJob inserts a job, assigning an id when the caller did not
func (r *AsyncJobRepository) CreateJob(ctx context.Context, job *domain.AsyncJob) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.Status == "" {
		job.Status = domain.JobStatusPending
	}
	payload := job.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	query := `
		INSERT INTO async_jobs (id, job_type, status, target_kind, object_id, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		job.ID,
		job.JobType,
		job.Status,
		job.Target.Kind,
		job.Target.ObjectID,
		payload,
	).Scan(&job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateJob, err)
	}
	return nil
}

// GetJob retrieves a job by id
func (r *AsyncJobRepository) GetJob(ctx context.Context, id uuid.UUID) (*domain.AsyncJob, error) {
	query := `
		SELECT id, job_type, status, target_kind, object_id, payload, result,
		       error_message, created_at, updated_at
		FROM async_jobs
		WHERE id = $1
	`

	var job domain.AsyncJob
	var payload, result []byte
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.JobType,
		&job.Status,
		&job.Target.Kind,
		&job.Target.ObjectID,
		&payload,
		&result,
		&job.ErrorMessage,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetJob, notFound(err, domain.ErrJobNotFound))
	}
	job.Payload = payload
	job.Result = result
	return &job, nil
}

// UpdateJob stores the job's status, result and error message
func (r *AsyncJobRepository) UpdateJob(ctx context.Context, job *domain.AsyncJob) error {
	var result []byte
	if len(job.Result) > 0 {
		result = job.Result
	}

	query := `
		UPDATE async_jobs
		SET status = $2, result = $3, error_message = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query, job.ID, job.Status, result, job.ErrorMessage).Scan(&job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateJob, notFound(err, domain.ErrJobNotFound))
	}
	return nil
}
