package domain

import "time"

// ImageStatus tracks the lifecycle of a generated artwork row.
type ImageStatus string

const (
	ImageStatusPending ImageStatus = "pending"
	ImageStatusReady   ImageStatus = "ready"
	ImageStatusFailed  ImageStatus = "failed"
)

// GeneratedImage is one artwork generated for a key. Several rows may share
// a key; the latest ready row is the active one.
type GeneratedImage struct {
	ID          int64       `json:"id"`
	Key         ImageKey    `json:"key"`
	Status      ImageStatus `json:"status"`
	ContentType string      `json:"content_type"`
	Data        []byte      `json:"-"`
	CreatedAt   time.Time   `json:"created_at"`
}
