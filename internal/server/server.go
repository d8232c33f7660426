// Package server exposes the issue service over HTTP/JSON under /api and
// optionally mounts the browser UI at /.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/issuetracker/internal/app"
	"github.com/thenoetrevino/issuetracker/internal/config"
)

// Server is the Issue Store API server
type Server struct {
	app             *app.App
	logger          *slog.Logger
	metrics         *Metrics
	addr            string
	shutdownTimeout time.Duration
	httpServer      *http.Server
	shutdownOnce    sync.Once
	shutdownErr     error
}

// Option configures a Server
type Option func(*options)

type options struct {
	ui http.Handler
}

// WithUI mounts a handler for every path outside /api
func WithUI(h http.Handler) Option {
	return func(o *options) {
		o.ui = h
	}
}

// New creates a server for the services held by a.
// Listen address, CORS origins and shutdown timeout come from a.Config.
func New(a *app.App, opts ...Option) *Server {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	cfg := a.Config
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Server{
		app:             a,
		logger:          a.Logger,
		metrics:         NewMetrics(),
		addr:            cfg.Server.Addr(),
		shutdownTimeout: cfg.Server.ShutdownTimeout,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.httpServer = &http.Server{
		Handler:           s.routes(cfg.Server.CORSOrigins, o.ui),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Metrics returns the live request counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start listens on the configured address and serves until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	lc := net.ListenConfig{}
	listener, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled or serving
// fails, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("API server listening", "addr", listener.Addr().String())
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return s.Shutdown()
	})

	return g.Wait()
}

// Shutdown gracefully shuts down the server, waiting at most the configured
// shutdown timeout for in-flight requests.
func (s *Server) Shutdown() error {
	s.shutdownOnce.Do(func() {
		s.logger.Info("Shutting down API server...")

		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.shutdownErr = fmt.Errorf("shutdown: %w", err)
		}
	})
	return s.shutdownErr
}

// routes builds the mux and wraps it with CORS and request instrumentation
func (s *Server) routes(origins []string, ui http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("/api/health", methodNotAllowed("GET, HEAD"))

	mux.HandleFunc("GET /api/issues", s.handleListIssues)
	mux.HandleFunc("POST /api/issues", s.handleCreateIssue)
	mux.HandleFunc("/api/issues", methodNotAllowed("GET, HEAD, POST"))

	mux.HandleFunc("GET /api/metrics", s.handleMetrics)
	mux.HandleFunc("/api/metrics", methodNotAllowed("GET, HEAD"))

	mux.HandleFunc("/api/", func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	if ui != nil {
		mux.Handle("/", ui)
	} else {
		mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusNotFound, "not found")
		})
	}

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return s.instrument(c.Handler(mux))
}

// instrument counts and logs every request
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.metrics.IncRequests()
		s.metrics.ObserveStatus(rec.status)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
