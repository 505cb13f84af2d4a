package sse

import "time"

// Buffer sizes
const (
	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	// EventTypeRollCompleted is sent when a roll has granted its drops
	EventTypeRollCompleted = "gacha.roll_completed"

	// EventTypeJobCompleted is sent when a workflow callback completes a job
	EventTypeJobCompleted = "job.completed"

	// EventTypeJobFailed is sent when a job fails
	EventTypeJobFailed = "job.failed"

	// EventTypeConnected is the first event every client receives
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected      = "SSE client connected"
	LogMsgClientDisconnected   = "SSE client disconnected"
	LogMsgEventDropped         = "SSE client buffer full, event dropped"
	LogMsgWriteError           = "Failed to write SSE event"
	LogMsgHubStopped           = "SSE hub stopped"
	LogMsgStreamingUnsupported = "Response writer does not support streaming"
)
