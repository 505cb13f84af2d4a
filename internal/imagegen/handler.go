package imagegen

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/osse101/GatchaLife_Go/internal/asyncjob"
	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/logger"
	"github.com/osse101/GatchaLife_Go/internal/repository"
)

// JobHandler stores artwork delivered through generate_image callbacks.
type JobHandler struct {
	images repository.Image
}

// NewJobHandler creates the generate_image callback handler.
func NewJobHandler(images repository.Image) *JobHandler {
	return &JobHandler{images: images}
}

type callbackData struct {
	ImageBase64 string `json:"image_base64"`
	Data        string `json:"data"`
	MimeType    string `json:"mimetype"`
}

// HandleSuccess marks the target image ready with the delivered artifact.
// The uploaded file wins over base64 fields in data.
func (h *JobHandler) HandleSuccess(ctx context.Context, job *domain.AsyncJob, data json.RawMessage, file *asyncjob.File) error {
	id, err := targetImageID(job)
	if err != nil {
		return err
	}

	art, err := decodeArtifact(data, file)
	if err != nil {
		return err
	}

	if err := h.images.MarkImageReady(ctx, id, art.ContentType, art.Data); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToStoreImage, err)
	}
	logger.FromContext(ctx).Info(LogMsgCallbackArtifact, "job_id", job.ID, "image_id", id, "bytes", len(art.Data))
	return nil
}

// HandleFailure marks the target image failed so its key can be generated again.
func (h *JobHandler) HandleFailure(ctx context.Context, job *domain.AsyncJob, message string) error {
	id, err := targetImageID(job)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Warn(LogMsgCallbackFailure, "job_id", job.ID, "image_id", id, "error", message)
	return h.images.MarkImageFailed(ctx, id)
}

func targetImageID(job *domain.AsyncJob) (int64, error) {
	if job.Target.Kind != domain.TargetGeneratedImage {
		return 0, fmt.Errorf("%w: %q", domain.ErrJobTargetKind, job.Target.Kind)
	}
	id, err := strconv.ParseInt(job.Target.ObjectID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q", domain.ErrJobTargetKind, ErrMsgInvalidTarget, job.Target.ObjectID)
	}
	return id, nil
}

func decodeArtifact(data json.RawMessage, file *asyncjob.File) (*Artifact, error) {
	if file != nil && len(file.Data) > 0 {
		ct := file.ContentType
		if ct == "" || ct == "application/octet-stream" {
			ct = http.DetectContentType(file.Data)
		}
		return &Artifact{ContentType: ct, Data: file.Data}, nil
	}

	if len(data) == 0 {
		return nil, domain.ErrMissingArtifact
	}
	var cd callbackData
	if err := json.Unmarshal(data, &cd); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeArtifact, err)
	}

	encoded := cd.ImageBase64
	if encoded == "" {
		encoded = cd.Data
	}
	if encoded == "" {
		return nil, domain.ErrMissingArtifact
	}
	// Accept data URLs as sent by some workflow nodes.
	if i := strings.Index(encoded, ";base64,"); i >= 0 && strings.HasPrefix(encoded, "data:") {
		if cd.MimeType == "" {
			cd.MimeType = encoded[len("data:"):i]
		}
		encoded = encoded[i+len(";base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeArtifact, err)
	}
	if len(raw) == 0 {
		return nil, domain.ErrMissingArtifact
	}

	ct := cd.MimeType
	if ct == "" {
		ct = http.DetectContentType(raw)
	}
	return &Artifact{ContentType: ct, Data: raw}, nil
}
