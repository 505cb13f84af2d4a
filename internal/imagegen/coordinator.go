package imagegen

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/logger"
	"github.com/osse101/GatchaLife_Go/internal/metrics"
	"github.com/osse101/GatchaLife_Go/internal/repository"
)

// JobCreator records async generation jobs.
type JobCreator interface {
	Create(ctx context.Context, jobType string, target domain.JobTarget, payload any) (*domain.AsyncJob, error)
	Fail(ctx context.Context, id uuid.UUID, message string) error
}

// Config tunes the coordinator.
type Config struct {
	Concurrency int
	// Async sends requests with a callback URL and lets the job callback
	// deliver the artifact.
	Async       bool
	CallbackURL string
	// PendingTTL is how long a pending image counts as on its way. After
	// that the key is treated as missing and generated again.
	PendingTTL time.Duration
}

// Outcome is the per-key result of EnsureImages.
type Outcome struct {
	Status  string
	ImageID int64
	Err     error
}

// HasImage reports whether the key has artwork stored or on its way.
func (o Outcome) HasImage() bool {
	return o.Status == StatusExisting || o.Status == StatusGenerated || o.Status == StatusPending
}

// Report maps each requested key to its outcome.
type Report map[domain.ImageKey]Outcome

// Failed counts keys whose generation failed.
func (r Report) Failed() int {
	n := 0
	for _, o := range r {
		if o.Status == StatusFailed {
			n++
		}
	}
	return n
}

// Coordinator makes sure planned drops have artwork before they are granted.
type Coordinator struct {
	client Client
	images repository.Image
	jobs   JobCreator
	cfg    Config
	now    func() time.Time
}

// NewCoordinator creates a coordinator. A nil client disables generation; a
// nil job creator forces synchronous mode.
func NewCoordinator(client Client, images repository.Image, jobs JobCreator, cfg Config) *Coordinator {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.PendingTTL <= 0 {
		cfg.PendingTTL = DefaultPendingTTL
	}
	if jobs == nil || cfg.CallbackURL == "" {
		cfg.Async = false
	}
	return &Coordinator{client: client, images: images, jobs: jobs, cfg: cfg, now: time.Now}
}

// PendingCutoff is the creation time before which a pending image is
// considered abandoned.
func (c *Coordinator) PendingCutoff() time.Time {
	return c.now().Add(-c.cfg.PendingTTL)
}

// EnsureImages generates artwork for every request whose key has neither a
// ready image nor a pending one younger than PendingTTL. Requests sharing a key are generated once, using the first
// request. Failures are recorded per key and never stop other keys. The call
// returns after every generation attempt has finished.
func (c *Coordinator) EnsureImages(ctx context.Context, reqs []Request) Report {
	log := logger.FromContext(ctx)
	report := make(Report, len(reqs))

	unique := make([]Request, 0, len(reqs))
	seen := make(map[domain.ImageKey]bool, len(reqs))
	for _, req := range reqs {
		key := req.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, req)
	}
	if len(unique) == 0 {
		return report
	}

	keys := make([]domain.ImageKey, len(unique))
	for i, req := range unique {
		keys[i] = req.Key()
	}
	covered, err := c.images.FindCoveredKeys(ctx, keys, c.PendingCutoff())
	if err != nil {
		err = fmt.Errorf("%s: %w", ErrMsgFailedToCheckImages, err)
		log.Error(LogMsgGenerationFailed, "error", err)
		for _, key := range keys {
			report[key] = Outcome{Status: StatusFailed, Err: err}
		}
		return report
	}

	missing := make([]Request, 0, len(unique))
	for _, req := range unique {
		if covered[req.Key()] {
			report[req.Key()] = Outcome{Status: StatusExisting}
			continue
		}
		missing = append(missing, req)
	}

	log.Debug(LogMsgEnsureStarted, "keys", len(unique), "missing", len(missing))
	if len(missing) == 0 {
		return report
	}
	if c.client == nil {
		log.Warn(LogMsgNoClient, "missing", len(missing))
		for _, req := range missing {
			report[req.Key()] = Outcome{Status: StatusSkipped}
		}
		return report
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(c.cfg.Concurrency)
	for _, req := range missing {
		g.Go(func() error {
			out := c.generateSafe(ctx, req)
			mu.Lock()
			report[req.Key()] = out
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return report
}

// Regenerate forces one generation for the request's key, ignoring existing
// artwork.
func (c *Coordinator) Regenerate(ctx context.Context, req Request) Outcome {
	if c.client == nil {
		return Outcome{Status: StatusSkipped, Err: fmt.Errorf("%w: %s", domain.ErrImageGeneration, LogMsgNoClient)}
	}
	return c.generateSafe(ctx, req)
}

func (c *Coordinator) generateSafe(ctx context.Context, req Request) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %s: %v", domain.ErrImageGeneration, ErrMsgPanic, r)
			logger.FromContext(ctx).Error(LogMsgGenerationPanic, "key", req.Key().String(), "panic", r)
			metrics.ImageGenerationsTotal.WithLabelValues(metrics.ResultFailed).Inc()
			out = Outcome{Status: StatusFailed, Err: err}
		}
	}()
	if c.cfg.Async {
		return c.generateAsync(ctx, req)
	}
	return c.generateSync(ctx, req)
}

func (c *Coordinator) generateSync(ctx context.Context, req Request) Outcome {
	log := logger.FromContext(ctx)
	key := req.Key()
	log.Info(LogMsgGenerationStarted, "key", key.String(), "mode", "sync")

	start := time.Now()
	art, err := c.client.Generate(ctx, BuildPayload(req))
	metrics.ImageGenerationDuration.Observe(time.Since(start).Seconds())
	if err == nil && (art == nil || len(art.Data) == 0) {
		err = fmt.Errorf("%w: %s", domain.ErrImageGeneration, ErrMsgEmptyArtifact)
	}
	if err != nil {
		return c.failed(ctx, key, err)
	}

	img := &domain.GeneratedImage{
		Key:         key,
		Status:      domain.ImageStatusReady,
		ContentType: art.ContentType,
		Data:        art.Data,
	}
	if err := c.images.CreateImage(ctx, img); err != nil {
		return c.failed(ctx, key, fmt.Errorf("%s: %w", ErrMsgFailedToStoreImage, err))
	}

	metrics.ImageGenerationsTotal.WithLabelValues(metrics.ResultGenerated).Inc()
	log.Info(LogMsgGenerationFinished, "key", key.String(), "image_id", img.ID, "bytes", len(art.Data))
	return Outcome{Status: StatusGenerated, ImageID: img.ID}
}

type jobPayload struct {
	Key  domain.ImageKey `json:"key"`
	Pose string          `json:"pose"`
}

func (c *Coordinator) generateAsync(ctx context.Context, req Request) Outcome {
	log := logger.FromContext(ctx)
	key := req.Key()

	img := &domain.GeneratedImage{Key: key, Status: domain.ImageStatusPending}
	if err := c.images.CreateImage(ctx, img); err != nil {
		return c.failed(ctx, key, fmt.Errorf("%s: %w", ErrMsgFailedToCreateImage, err))
	}

	target := domain.JobTarget{Kind: domain.TargetGeneratedImage, ObjectID: strconv.FormatInt(img.ID, 10)}
	job, err := c.jobs.Create(ctx, domain.JobTypeGenerateImage, target, jobPayload{Key: key, Pose: req.Pose})
	if err != nil {
		c.markFailed(ctx, img.ID)
		return c.failed(ctx, key, fmt.Errorf("%s: %w", ErrMsgFailedToCreateJob, err))
	}

	payload := BuildPayload(req)
	payload.CallbackURL = c.cfg.CallbackURL
	payload.JobID = job.ID.String()

	log.Info(LogMsgGenerationStarted, "key", key.String(), "mode", "async", "job_id", job.ID)
	start := time.Now()
	_, err = c.client.Generate(ctx, payload)
	metrics.ImageGenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.markFailed(ctx, img.ID)
		if ferr := c.jobs.Fail(ctx, job.ID, err.Error()); ferr != nil {
			log.Error(LogMsgGenerationFailed, "job_id", job.ID, "error", ferr)
		}
		return c.failed(ctx, key, err)
	}

	metrics.ImageGenerationsTotal.WithLabelValues(metrics.ResultPending).Inc()
	log.Info(LogMsgGenerationAccepted, "key", key.String(), "image_id", img.ID, "job_id", job.ID)
	return Outcome{Status: StatusPending, ImageID: img.ID}
}

func (c *Coordinator) markFailed(ctx context.Context, imageID int64) {
	if err := c.images.MarkImageFailed(ctx, imageID); err != nil {
		logger.FromContext(ctx).Error(LogMsgGenerationFailed, "image_id", imageID, "error", err)
	}
}

func (c *Coordinator) failed(ctx context.Context, key domain.ImageKey, err error) Outcome {
	metrics.ImageGenerationsTotal.WithLabelValues(metrics.ResultFailed).Inc()
	logger.FromContext(ctx).Error(LogMsgGenerationFailed, "key", key.String(), "error", err)
	return Outcome{Status: StatusFailed, Err: err}
}
