// Package server wires the HTTP API: chi routes, middleware and the
// http.Server lifecycle.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/BattleArena_Go/internal/battle"
	"github.com/osse101/BattleArena_Go/internal/catalog"
	"github.com/osse101/BattleArena_Go/internal/handler"
	"github.com/osse101/BattleArena_Go/internal/logger"
	"github.com/osse101/BattleArena_Go/internal/metrics"
)

// Deps are the services behind the API
type Deps struct {
	Catalog *catalog.Catalog
	Battles battle.Service
	// Store is pinged by /readyz; nil when the catalog came from a file
	Store   handler.Pinger
	Version string
	// RateLimiter is optional; nil disables per-IP limiting
	RateLimiter *RateLimiter
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server listening on port
func NewServer(port int, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter builds the API routes. Middleware runs in the order added,
// outermost first.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(SecurityHeadersMiddleware())
	if deps.RateLimiter != nil {
		r.Use(RateLimitMiddleware(deps.RateLimiter))
	}
	r.Use(RequestSizeLimitMiddleware(MaxRequestBody))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Store))
	r.Get("/version", handler.HandleVersion(deps.Version))
	r.Handle("/metrics", promhttp.Handler())

	itemHandler := handler.NewItemHandler(deps.Catalog)
	battleHandler := handler.NewBattleHandler(deps.Battles)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", itemHandler.HandleListItems)
			r.Get("/{name}", itemHandler.HandleGetItem)
		})
		r.Route("/battles", func(r chi.Router) {
			r.Post("/", battleHandler.HandleStartBattle)
			r.Get("/{id}", battleHandler.HandleGetBattle)
		})
	})

	return r
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

func isQuietPath(path string) bool {
	for _, prefix := range quietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
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

// Start serves until Stop is called. It returns http.ErrServerClosed
// after a graceful stop.
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	logger.Info(LogMsgServerStopping, "addr", s.httpServer.Addr)
	return s.httpServer.Shutdown(ctx)
}
