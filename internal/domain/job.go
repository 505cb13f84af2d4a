package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JobStatus is the state of an async workflow job.
type JobStatus string

const (
	JobStatusPending    JobStatus = "PENDING"
	JobStatusProcessing JobStatus = "PROCESSING"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusFailed     JobStatus = "FAILED"
)

// IsFinal reports whether no further callbacks should be applied.
func (s JobStatus) IsFinal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// TargetKind enumerates the entities an async job can point at.
type TargetKind string

const (
	TargetNone           TargetKind = ""
	TargetGeneratedImage TargetKind = "generated_image"
	TargetCharacter      TargetKind = "character"
	TargetCard           TargetKind = "card"
)

// JobTarget is the entity a job result is attached to.
type JobTarget struct {
	Kind     TargetKind `json:"kind"`
	ObjectID string     `json:"object_id"`
}

// Job types
const (
	JobTypeGenerateImage = "generate_image"
)

// AsyncJob is a request sent to the external workflow engine whose result
// arrives later through the callback endpoint.
type AsyncJob struct {
	ID           uuid.UUID       `json:"id"`
	JobType      string          `json:"job_type"`
	Status       JobStatus       `json:"status"`
	Target       JobTarget       `json:"target"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	Result       json.RawMessage `json:"result,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
