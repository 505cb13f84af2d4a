package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/GatchaLife_Go/internal/asyncjob"
	"github.com/osse101/GatchaLife_Go/internal/collection"
	"github.com/osse101/GatchaLife_Go/internal/database"
	"github.com/osse101/GatchaLife_Go/internal/gacha"
	"github.com/osse101/GatchaLife_Go/internal/handler"
	"github.com/osse101/GatchaLife_Go/internal/logger"
	"github.com/osse101/GatchaLife_Go/internal/metrics"
	"github.com/osse101/GatchaLife_Go/internal/middleware"
	"github.com/osse101/GatchaLife_Go/internal/sse"
)

// Options configures the HTTP surface.
type Options struct {
	Port            int
	APIKey          string
	TrustedProxies  []string
	DefaultPlayerID int64
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, gachaSvc gacha.Service, collectionSvc collection.Service, jobSvc asyncjob.Service, events *sse.Hub) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, dbPool, gachaSvc, collectionSvc, jobSvc, events),
			ReadHeaderTimeout: ReadHeaderTimeout,
			WriteTimeout:      GenerationWriteTimeout,
		},
	}
}

// NewRouter builds the routing tree. Middleware runs in the order it is
// registered, outermost first. The event stream is mounted only when events
// is non-nil.
func NewRouter(opts Options, dbPool database.Pool, gachaSvc gacha.Service, collectionSvc collection.Service,
	jobSvc asyncjob.Service, events *sse.Hub) http.Handler {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector(DetectorWindow, MaxRequestsPerWindow)

	r.Use(loggingMiddleware)
	r.Use(chimw.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	gachaHandler := handler.NewGachaHandler(gachaSvc, collectionSvc)
	collectionHandler := handler.NewCollectionHandler(collectionSvc)
	r.Route("/gamification", func(r chi.Router) {
		r.Use(RequestSizeLimitMiddleware(MaxAPIRequestBytes))
		r.Use(middleware.Player(opts.DefaultPlayerID))

		r.Post("/gatcha/roll/", gachaHandler.Roll)
		r.Get("/player/", collectionHandler.Player)
		r.Route("/collection", func(r chi.Router) {
			r.Get("/", collectionHandler.List)
			r.Get("/{id}/", collectionHandler.Get)
			r.Post("/{id}/reroll_image/", collectionHandler.RerollImage)
		})
	})

	// Callback bodies carry artwork and enforce their own limit.
	callbackHandler := handler.NewCallbackHandler(jobSvc)
	r.Post("/workflow/callback/", callbackHandler.HandleCallback)

	mediaHandler := handler.NewMediaHandler(collectionSvc)
	r.Get("/media/generated/{id}", mediaHandler.ServeImage)

	if events != nil {
		r.Get("/events", sse.Handler(events))
	}

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if rw.written {
		return
	}
	rw.statusCode = statusCode
	rw.written = true
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if slices.ContainsFunc(QuietPaths, func(p string) bool { return strings.HasPrefix(r.URL.Path, p) }) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
