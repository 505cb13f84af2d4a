package asyncjob

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/osse101/GatchaLife_Go/internal/domain"
)

// File is an artifact uploaded alongside a callback.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Handler applies the outcome of a job to its target.
type Handler interface {
	HandleSuccess(ctx context.Context, job *domain.AsyncJob, data json.RawMessage, file *File) error
	HandleFailure(ctx context.Context, job *domain.AsyncJob, message string) error
}

// Registry maps job types to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register binds a handler to a job type, replacing any previous one.
func (r *Registry) Register(jobType string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[jobType]; exists {
		slog.Default().Warn(LogMsgHandlerOverwritten, "job_type", jobType)
	}
	r.handlers[jobType] = h
}

// Lookup returns the handler for a job type.
func (r *Registry) Lookup(jobType string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[jobType]
	return h, ok
}

// Types lists the registered job types.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		types = append(types, t)
	}
	return types
}
