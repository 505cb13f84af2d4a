package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/osse101/GatchaLife_Go/internal/domain"
)

// Artifact is a generated image returned by the generator.
type Artifact struct {
	ContentType string
	Data        []byte
}

// Client sends generation requests to the workflow engine. A nil artifact
// with a nil error means the request was accepted and the result will arrive
// through the job callback.
type Client interface {
	Generate(ctx context.Context, payload *Payload) (*Artifact, error)
}

// HTTPClient posts payloads to a generation webhook.
type HTTPClient struct {
	url        string
	httpClient *http.Client
}

// NewHTTPClient creates a webhook client with a total request timeout.
func NewHTTPClient(url string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Generate posts the payload. Without a callback URL the response body is the
// image itself; with one, any 2xx response is an acknowledgement.
func (c *HTTPClient) Generate(ctx context.Context, payload *Payload) (*Artifact, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodePayload, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBuildRequest, err)
	}
	req.Header.Set(HeaderContentType, ContentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrImageGeneration, ErrMsgRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %s %d: %s", domain.ErrImageGeneration, ErrMsgUnexpectedStatus, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	if payload.CallbackURL != "" {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxResponseBytes))
		return nil, nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrImageGeneration, ErrMsgFailedToReadResponse, err)
	}
	if len(data) > MaxResponseBytes {
		return nil, fmt.Errorf("%w: %s (%d bytes)", domain.ErrImageGeneration, ErrMsgArtifactTooLarge, MaxResponseBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrImageGeneration, ErrMsgEmptyArtifact)
	}

	contentType := resp.Header.Get(HeaderContentType)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return &Artifact{ContentType: contentType, Data: data}, nil
}
