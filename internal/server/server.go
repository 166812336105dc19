// Package server assembles the reference backend: SQLite storage, the API
// router, the middleware chain and a Prometheus endpoint.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/server/handlers"
	"github.com/iudanet/clubsync/internal/server/middleware"
	"github.com/iudanet/clubsync/internal/server/storage/sqlite"
)

const healthPath = "/api/v1/health"

// Config holds the reference backend settings.
type Config struct {
	Addr            string `validate:"required,hostname_port"`
	DBPath          string `validate:"required"`
	Version         string
	RateWindow      time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
	RateLimit       int           `validate:"gte=1"`
	Metrics         bool
}

// DefaultConfig returns the settings used when no flag overrides them.
func DefaultConfig() Config {
	return Config{
		Addr:            "127.0.0.1:8080",
		DBPath:          "clubsync-server.db",
		Version:         "dev",
		RateLimit:       600,
		RateWindow:      time.Minute,
		ShutdownTimeout: 10 * time.Second,
		Metrics:         true,
	}
}

// Server is the running reference backend.
type Server struct {
	store   *sqlite.Storage
	limiter *middleware.RateLimiter
	handler http.Handler
	log     *zap.Logger
	cfg     Config
}

// New opens the storage and builds the handler chain.
func New(ctx context.Context, cfg Config, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	s := &Server{
		store:   store,
		limiter: middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow, log.Named("ratelimit")),
		log:     log,
		cfg:     cfg,
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", handlers.NewRouter(log.Named("api"), store, cfg.Version))

	mws := []middleware.Middleware{
		middleware.Recovery(log),
		middleware.Logging(log.Named("http"), healthPath),
	}
	if cfg.Metrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		mws = append(mws, middleware.NewHTTPMetrics(reg).Middleware())
		mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	mws = append(mws, s.limiter.Middleware())

	s.handler = middleware.Chain(mux, mws...)
	return s, nil
}

// Handler returns the full middleware chain, useful with httptest.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on cfg.Addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within cfg.ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		s.log.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	if err, ok := <-serverErr; ok && err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Close releases the rate limiter and the storage.
func (s *Server) Close() error {
	s.limiter.Stop()
	return s.store.Close()
}
