package asyncjob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/logger"
	"github.com/osse101/GatchaLife_Go/internal/metrics"
	"github.com/osse101/GatchaLife_Go/internal/repository"
	"github.com/osse101/GatchaLife_Go/internal/sse"
)

// Callback is the result message posted by the workflow engine.
type Callback struct {
	JobID  string          `json:"job_id"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
	File   *File           `json:"-"`
}

// CallbackResult reports what a callback did to its job.
type CallbackResult struct {
	JobID   uuid.UUID        `json:"job_id"`
	Status  domain.JobStatus `json:"status"`
	Ignored bool             `json:"ignored"`
	Message string           `json:"message"`
}

// Service manages async workflow jobs.
type Service interface {
	Create(ctx context.Context, jobType string, target domain.JobTarget, payload any) (*domain.AsyncJob, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.AsyncJob, error)
	Fail(ctx context.Context, id uuid.UUID, message string) error
	HandleCallback(ctx context.Context, cb Callback) (*CallbackResult, error)
}

// Notifier publishes job events to live listeners.
type Notifier interface {
	Broadcast(eventType string, payload interface{})
}

type service struct {
	repo     repository.AsyncJob
	registry *Registry
	events   Notifier
}

// NewService creates a new async job service. events may be nil.
func NewService(repo repository.AsyncJob, registry *Registry, events Notifier) Service {
	return &service{repo: repo, registry: registry, events: events}
}

// Create stores a pending job for target with the JSON encoded payload.
func (s *service) Create(ctx context.Context, jobType string, target domain.JobTarget, payload any) (*domain.AsyncJob, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncode, err)
	}

	job := &domain.AsyncJob{
		ID:      uuid.New(),
		JobType: jobType,
		Status:  domain.JobStatusPending,
		Target:  target,
		Payload: raw,
	}
	if err := s.repo.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateJob, err)
	}

	logger.FromContext(ctx).Info(LogMsgJobCreated,
		"job_id", job.ID, "job_type", jobType, "target_kind", target.Kind, "object_id", target.ObjectID)
	return job, nil
}

// Get returns a job by id
func (s *service) Get(ctx context.Context, id uuid.UUID) (*domain.AsyncJob, error) {
	return s.repo.GetJob(ctx, id)
}

// Fail marks a job failed when its request never reached the workflow engine.
func (s *service) Fail(ctx context.Context, id uuid.UUID, message string) error {
	job, err := s.repo.GetJob(ctx, id)
	if err != nil {
		return err
	}
	if job.Status.IsFinal() {
		return nil
	}
	job.Status = domain.JobStatusFailed
	job.ErrorMessage = message
	if err := s.repo.UpdateJob(ctx, job); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateJob, err)
	}
	s.publish(job)
	return nil
}

// HandleCallback applies a workflow result to its job. Final jobs are left
// untouched; a failing success handler fails the job and runs the failure
// handler.
func (s *service) HandleCallback(ctx context.Context, cb Callback) (*CallbackResult, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(cb.JobID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgJobIDRequired)
	}
	id, err := uuid.Parse(cb.JobID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidJobID)
	}

	log.Info(LogMsgCallbackReceived, "job_id", id, "status", cb.Status)

	job, err := s.repo.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	if job.Status.IsFinal() {
		log.Warn(LogMsgJobAlreadyFinal, "job_id", id, "status", job.Status)
		return &CallbackResult{JobID: id, Status: job.Status, Ignored: true, Message: MsgJobAlreadyCompleted}, nil
	}

	handler, ok := s.registry.Lookup(job.JobType)
	if !ok {
		job.Status = domain.JobStatusFailed
		job.ErrorMessage = fmt.Sprintf("%s: %s", domain.ErrMsgNoJobHandler, job.JobType)
		log.Error(LogMsgNoHandler, "job_id", id, "job_type", job.JobType)
		if err := s.repo.UpdateJob(ctx, job); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateJob, err)
		}
		s.record(job)
		return nil, fmt.Errorf("%w: %s", domain.ErrNoJobHandler, job.JobType)
	}

	if cb.Status == CallbackStatusSuccess {
		return s.applySuccess(ctx, job, handler, cb)
	}
	return s.applyFailure(ctx, job, handler, cb)
}

func (s *service) applySuccess(ctx context.Context, job *domain.AsyncJob, handler Handler, cb Callback) (*CallbackResult, error) {
	log := logger.FromContext(ctx)

	job.Status = domain.JobStatusProcessing
	if len(cb.Data) > 0 {
		job.Result = cb.Data
	}

	if herr := handler.HandleSuccess(ctx, job, cb.Data, cb.File); herr != nil {
		log.Error(LogMsgHandlerFailed, "job_id", job.ID, "job_type", job.JobType, "error", herr)
		job.Status = domain.JobStatusFailed
		job.ErrorMessage = herr.Error()
		if err := s.repo.UpdateJob(ctx, job); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateJob, err)
		}
		if ferr := handler.HandleFailure(ctx, job, herr.Error()); ferr != nil {
			log.Error(LogMsgFailureHandlerFailed, "job_id", job.ID, "error", ferr)
		}
		s.record(job)
		if errors.Is(herr, domain.ErrJobHandler) {
			return nil, herr
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrJobHandler, herr)
	}

	job.Status = domain.JobStatusCompleted
	if err := s.repo.UpdateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateJob, err)
	}
	s.record(job)
	return &CallbackResult{JobID: job.ID, Status: job.Status, Message: MsgCallbackProcessed}, nil
}

func (s *service) applyFailure(ctx context.Context, job *domain.AsyncJob, handler Handler, cb Callback) (*CallbackResult, error) {
	job.Status = domain.JobStatusFailed
	job.ErrorMessage = cb.Error
	if job.ErrorMessage == "" {
		job.ErrorMessage = DefaultWorkflowError
	}
	if len(cb.Data) > 0 {
		job.Result = cb.Data
	}
	if err := s.repo.UpdateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateJob, err)
	}
	if ferr := handler.HandleFailure(ctx, job, job.ErrorMessage); ferr != nil {
		logger.FromContext(ctx).Error(LogMsgFailureHandlerFailed, "job_id", job.ID, "error", ferr)
	}
	s.record(job)
	return &CallbackResult{JobID: job.ID, Status: job.Status, Message: MsgCallbackProcessed}, nil
}

// record counts a callback that moved job to its final status.
func (s *service) record(job *domain.AsyncJob) {
	metrics.AsyncCallbacksTotal.WithLabelValues(string(job.Status)).Inc()
	s.publish(job)
}

func (s *service) publish(job *domain.AsyncJob) {
	if s.events == nil {
		return
	}
	eventType := sse.EventTypeJobCompleted
	if job.Status == domain.JobStatusFailed {
		eventType = sse.EventTypeJobFailed
	}
	s.events.Broadcast(eventType, sse.JobUpdatedPayload{
		JobID:      job.ID.String(),
		JobType:    job.JobType,
		Status:     string(job.Status),
		TargetKind: string(job.Target.Kind),
		TargetID:   job.Target.ObjectID,
		Error:      job.ErrorMessage,
	})
}
