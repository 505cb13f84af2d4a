package imagegen

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GatchaLife_Go/internal/domain"
)

// fakeImages is an in-memory repository.Image safe for concurrent use.
type fakeImages struct {
	mu       sync.Mutex
	nextID   int64
	images   map[int64]*domain.GeneratedImage
	findErr  error
	createFn func(img *domain.GeneratedImage) error
}

func newFakeImages() *fakeImages {
	return &fakeImages{images: make(map[int64]*domain.GeneratedImage)}
}

func (f *fakeImages) FindCoveredKeys(_ context.Context, keys []domain.ImageKey, pendingSince time.Time) (map[domain.ImageKey]bool, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[domain.ImageKey]bool)
	for _, k := range keys {
		for _, img := range f.images {
			switch {
			case img.Key != k:
			case img.Status == domain.ImageStatusReady:
				out[k] = true
			case img.Status == domain.ImageStatusPending && !img.CreatedAt.Before(pendingSince):
				out[k] = true
			}
		}
	}
	return out, nil
}

func (f *fakeImages) GetActiveImages(_ context.Context, keys []domain.ImageKey) (map[domain.ImageKey]domain.GeneratedImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[domain.ImageKey]domain.GeneratedImage)
	for _, k := range keys {
		for _, img := range f.images {
			if img.Key == k && img.Status == domain.ImageStatusReady {
				out[k] = *img
			}
		}
	}
	return out, nil
}

func (f *fakeImages) GetImage(_ context.Context, id int64) (*domain.GeneratedImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	img, ok := f.images[id]
	if !ok {
		return nil, domain.ErrImageNotFound
	}
	cp := *img
	return &cp, nil
}

func (f *fakeImages) CreateImage(_ context.Context, img *domain.GeneratedImage) error {
	if f.createFn != nil {
		if err := f.createFn(img); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	img.ID = f.nextID
	if img.CreatedAt.IsZero() {
		img.CreatedAt = time.Now()
	}
	cp := *img
	f.images[img.ID] = &cp
	return nil
}

func (f *fakeImages) MarkImageReady(_ context.Context, id int64, contentType string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	img, ok := f.images[id]
	if !ok {
		return domain.ErrImageNotFound
	}
	img.Status = domain.ImageStatusReady
	img.ContentType = contentType
	img.Data = data
	return nil
}

func (f *fakeImages) MarkImageFailed(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	img, ok := f.images[id]
	if !ok {
		return domain.ErrImageNotFound
	}
	img.Status = domain.ImageStatusFailed
	return nil
}

func (f *fakeImages) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.images)
}

// fakeClient returns a fixed artifact and fails for variants listed in failFor.
type fakeClient struct {
	calls    atomic.Int32
	inFlight atomic.Int32
	peak     atomic.Int32
	failFor  map[int64]bool
	panicFor map[int64]bool
	gate     chan struct{}
	mu       sync.Mutex
	payloads []*Payload
}

func (c *fakeClient) Generate(_ context.Context, p *Payload) (*Artifact, error) {
	c.calls.Add(1)
	n := c.inFlight.Add(1)
	defer c.inFlight.Add(-1)
	for {
		peak := c.peak.Load()
		if n <= peak || c.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	if c.gate != nil {
		<-c.gate
	}

	c.mu.Lock()
	c.payloads = append(c.payloads, p)
	c.mu.Unlock()

	if c.panicFor[p.CharacterVariant.ID] {
		panic("generator exploded")
	}
	if c.failFor[p.CharacterVariant.ID] {
		return nil, errors.Join(domain.ErrImageGeneration, errors.New("gpu unavailable"))
	}
	if p.CallbackURL != "" {
		return nil, nil
	}
	return &Artifact{ContentType: "image/png", Data: []byte("png-bytes")}, nil
}

// fakeJobs records created jobs.
type fakeJobs struct {
	mu      sync.Mutex
	created []*domain.AsyncJob
	failed  map[uuid.UUID]string
}

func (j *fakeJobs) Create(_ context.Context, jobType string, target domain.JobTarget, _ any) (*domain.AsyncJob, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	job := &domain.AsyncJob{ID: uuid.New(), JobType: jobType, Target: target, Status: domain.JobStatusPending}
	j.created = append(j.created, job)
	return job, nil
}

func (j *fakeJobs) Fail(_ context.Context, id uuid.UUID, message string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.failed == nil {
		j.failed = make(map[uuid.UUID]string)
	}
	j.failed[id] = message
	return nil
}
