package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/GatchaLife_Go/internal/logger"
)

// Handler streams hub events to the caller until it disconnects. The
// optional "types" query parameter is a comma separated event type filter.
//
// @Summary Live event stream
// @Description Server-sent events for completed rolls and finished async jobs
// @Tags events
// @Produce text/event-stream
// @Param types query string false "Comma separated event types"
// @Success 200 {string} string "event stream"
// @Router /events [get]
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var eventTypes []string
		for _, t := range strings.Split(r.URL.Query().Get("types"), ",") {
			if t = strings.TrimSpace(t); t != "" {
				eventTypes = append(eventTypes, t)
			}
		}

		client := hub.Register(eventTypes)
		if client == nil {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		log.Info(LogMsgClientConnected, "client_id", client.ID, "filters", eventTypes, "total_clients", hub.ClientCount())
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID, "total_clients", hub.ClientCount())
		}()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)

		rc := http.NewResponseController(w)
		if err := rc.Flush(); err != nil {
			log.Error(LogMsgStreamingUnsupported, "error", err)
			return
		}
		// Streams outlive the server write timeout.
		_ = rc.SetWriteDeadline(time.Time{})

		send := func(event Event) bool {
			msg, err := FormatSSEMessage(event)
			if err != nil {
				log.Error(LogMsgWriteError, "event_type", event.Type, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			return rc.Flush() == nil
		}

		if !send(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]interface{}{"client_id": client.ID, "filters": eventTypes},
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case event, ok := <-client.Events:
				if !ok {
					return
				}
				if !send(event) {
					return
				}
			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
