package handler_test

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GatchaLife_Go/internal/middleware"
)

const testPlayerID int64 = 7

// withPlayer attaches the acting player like the Player middleware does.
func withPlayer(r *http.Request) *http.Request {
	return r.WithContext(middleware.WithPlayerID(r.Context(), testPlayerID))
}

// withURLParam sets a chi path parameter without routing.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
