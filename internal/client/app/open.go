package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/client/api"
	"github.com/iudanet/clubsync/internal/client/cache"
	"github.com/iudanet/clubsync/internal/client/cache/redismirror"
	"github.com/iudanet/clubsync/internal/client/storage"
	"github.com/iudanet/clubsync/internal/client/storage/boltdb"
	"github.com/iudanet/clubsync/internal/client/storage/memory"
	"github.com/iudanet/clubsync/internal/client/storage/sqlite"
	"github.com/iudanet/clubsync/internal/config"
	"github.com/iudanet/clubsync/internal/logger"
	"github.com/iudanet/clubsync/internal/metrics"
)

// OpenOptions are the runtime inputs of Open that do not come from the
// configuration file.
type OpenOptions struct {
	Logger     *zap.Logger
	Registerer prometheus.Registerer // nil: prometheus.DefaultRegisterer
	Passphrase string                // обязателен при storage.encrypt
}

// Open builds the whole client from cfg: storage, optional sealing, the
// cache with its optional Redis mirror, the HTTP backend and metrics. The
// returned App owns everything it opened.
func Open(ctx context.Context, cfg *config.Config, opts OpenOptions) (*App, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var closers []func() error
	fail := func(err error) (*App, error) {
		for i := len(closers) - 1; i >= 0; i-- {
			err = multierr.Append(err, closers[i]())
		}
		return nil, err
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		reg := opts.Registerer
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		m = metrics.New(reg)
	}

	store, err := OpenStore(ctx, cfg.Storage)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, store.Close)

	if cfg.Storage.Encrypt {
		sealed, err := storage.OpenSealed(ctx, store, opts.Passphrase)
		if err != nil {
			return fail(fmt.Errorf("failed to unlock storage: %w", err))
		}
		store = sealed
	}

	cacheOpts := []cache.Option{
		cache.WithLogger(logger.WithModule(log, "cache")),
		cache.WithMetrics(m),
	}
	if cfg.Cache.Redis.Enabled {
		mirror, err := redismirror.Dial(ctx, redismirror.Options{
			Address:  cfg.Cache.Redis.Address,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Prefix:   cfg.Cache.Redis.Prefix,
		})
		if err != nil {
			// зеркало необязательно: кэш в памяти остается основным
			log.Warn("redis cache mirror disabled", zap.Error(err))
		} else {
			closers = append(closers, mirror.Close)
			cacheOpts = append(cacheOpts,
				cache.WithMirror(mirror),
				cache.WithMirrorTimeout(cfg.Cache.Redis.Timeout))
		}
	}

	client := api.NewClient(cfg.Server.URL,
		api.WithTimeout(cfg.Server.Timeout),
		api.WithRetry(cfg.Server.MaxRetries, 0),
		api.WithLogger(log))

	a, err := New(cfg, Deps{
		Store:   store,
		Backend: client,
		Prober:  client,
		Cache:   cache.New(cacheOpts...),
		Logger:  log,
		Metrics: m,
	})
	if err != nil {
		return fail(err)
	}
	a.closers = closers
	return a, nil
}

// OpenStore opens the storage driver selected by cfg.
func OpenStore(ctx context.Context, cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Driver {
	case "bolt":
		s, err := boltdb.New(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open bolt storage: %w", err)
		}
		return s, nil
	case "sqlite":
		s, err := sqlite.New(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		return s, nil
	case "memory":
		return memory.New(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
