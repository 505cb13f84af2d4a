package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/osse101/GatchaLife_Go/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// PlayerIDKey is the context key for the acting player
	PlayerIDKey contextKey = "player_id"
)

// Player resolves the acting player from the X-Player-ID header, falling back
// to defaultID, and stores it in the request context.
func Player(defaultID int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			playerID := defaultID
			if raw := strings.TrimSpace(r.Header.Get(HeaderPlayerID)); raw != "" {
				id, err := strconv.ParseInt(raw, 10, 64)
				if err != nil || id <= 0 {
					logger.FromContext(r.Context()).Warn(LogMsgInvalidPlayerHeader, "value", raw)
					http.Error(w, ErrMsgInvalidPlayerHeader, http.StatusBadRequest)
					return
				}
				playerID = id
			}

			ctx := WithPlayerID(r.Context(), playerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithPlayerID adds the player to the context, for handlers and log lines.
func WithPlayerID(ctx context.Context, playerID int64) context.Context {
	ctx = logger.WithPlayerID(ctx, playerID)
	return context.WithValue(ctx, PlayerIDKey, playerID)
}

// GetPlayerID retrieves the player from context
func GetPlayerID(ctx context.Context) int64 {
	if id, ok := ctx.Value(PlayerIDKey).(int64); ok {
		return id
	}
	return NoPlayerID
}
