package sse

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GatchaLife_Go/internal/logger"
	"github.com/osse101/GatchaLife_Go/internal/metrics"
)

// Event represents an event sent over SSE
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is a connected event stream
type Client struct {
	ID     string
	Events <-chan Event

	events chan Event
	filter map[string]bool // nil means all events
}

func (c *Client) wants(eventType string) bool {
	return c.filter == nil || c.filter[eventType]
}

// Hub fans events out to connected clients. Slow clients lose events
// instead of blocking the publisher.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	closed  bool
	now     func() time.Time
}

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		now:     time.Now,
	}
}

// Register adds a client interested in eventTypes, or in every event when
// eventTypes is empty. It returns nil once the hub is stopped.
func (h *Hub) Register(eventTypes []string) *Client {
	events := make(chan Event, ClientEventBuffer)
	client := &Client{
		ID:     uuid.New().String(),
		Events: events,
		events: events,
	}
	if len(eventTypes) > 0 {
		client.filter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.filter[t] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.clients[client.ID] = client
	metrics.StreamClients.Set(float64(len(h.clients)))
	return client
}

// Unregister removes a client and closes its channel
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.events)
		delete(h.clients, clientID)
		metrics.StreamClients.Set(float64(len(h.clients)))
	}
}

// Broadcast sends an event to every interested client
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: h.now().Unix(),
		Payload:   payload,
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		if !client.wants(eventType) {
			continue
		}
		select {
		case client.events <- event:
			metrics.StreamEventsTotal.WithLabelValues(eventType, metrics.ResultSent).Inc()
		default:
			metrics.StreamEventsTotal.WithLabelValues(eventType, metrics.ResultDropped).Inc()
			logger.Debug(LogMsgEventDropped, "client_id", client.ID, "event_type", eventType)
		}
	}
}

// Stop disconnects every client and rejects new ones
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, client := range h.clients {
		close(client.events)
		delete(h.clients, id)
	}
	metrics.StreamClients.Set(0)
	logger.Info(LogMsgHubStopped)
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders an event in text/event-stream framing
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	msg := ""
	if event.ID != "" {
		msg = fmt.Sprintf("id: %s\n", event.ID)
	}
	msg += fmt.Sprintf("event: %s\ndata: %s\n\n", event.Type, data)
	return []byte(msg), nil
}
