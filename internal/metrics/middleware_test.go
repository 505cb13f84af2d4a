package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/gamification/collection/{id}/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/gamification/collection/{id}/", "418"))

	for _, id := range []string{"1", "2", "3"} {
		req := httptest.NewRequest(http.MethodGet, "/gamification/collection/"+id+"/", nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/gamification/collection/{id}/", "418"))
	assert.Equal(t, 3.0, after-before)
	assert.Equal(t, 0.0, testutil.ToFloat64(HTTPRequestsInFlight))
}
