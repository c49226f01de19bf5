// Package server runs the two network surfaces of placecraft: the player
// line protocol over TCP and the admin HTTP API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/placecraft/internal/handler"
	"github.com/osse101/placecraft/internal/logger"
	"github.com/osse101/placecraft/internal/metrics"
	"github.com/osse101/placecraft/internal/sse"
)

// Worlds is what the admin API reads from the world registry
type Worlds interface {
	handler.WorldSource
	handler.Pinger
}

// AdminServer serves health, metrics, read-only world inspection and the
// world event stream
type AdminServer struct {
	httpServer *http.Server
}

// AdminOptions configures the admin API
type AdminOptions struct {
	// APIKey guards every non-probe route; empty leaves the API open.
	APIKey         string
	TrustedProxies []string
	Detector       *SuspiciousActivityDetector
	// Events, when set, is streamed on /api/v1/events.
	Events *sse.Hub
	// ServiceName and Version are reported on /api/v1/version.
	ServiceName string
	Version     string
}

// NewAdminServer creates the admin HTTP server
func NewAdminServer(port int, worlds Worlds, opts AdminOptions) *AdminServer {
	return &AdminServer{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           newRouter(worlds, opts),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

func newRouter(worlds Worlds, opts AdminOptions) http.Handler {
	detector := opts.Detector
	if detector == nil {
		detector = NewSuspiciousActivityDetector()
	}

	r := chi.NewRouter()

	// Outermost first
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(worlds))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/worlds", func(r chi.Router) {
			r.Get("/", handler.HandleListWorlds(worlds))
			r.Get("/{"+handler.ParamWorldName+"}", handler.HandleGetWorld(worlds))
		})
		r.Get("/version", handler.HandleVersion(opts.ServiceName, opts.Version))
		if opts.Events != nil {
			r.Get("/events", sse.Handler(opts.Events))
		}
	})

	return r
}

// Handler exposes the router for tests and embedding
func (s *AdminServer) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the flusher underneath
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Probes and scrapes are too frequent to log
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

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

// Start starts the server
func (s *AdminServer) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *AdminServer) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
