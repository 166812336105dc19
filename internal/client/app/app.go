// Package app wires the cache, the offline manager and the optimistic
// coordinators into the API the CLI and other front ends use.
package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/client/cache"
	"github.com/iudanet/clubsync/internal/client/connectivity"
	"github.com/iudanet/clubsync/internal/client/offline"
	"github.com/iudanet/clubsync/internal/client/optimistic"
	"github.com/iudanet/clubsync/internal/client/scheduler"
	"github.com/iudanet/clubsync/internal/client/storage"
	"github.com/iudanet/clubsync/internal/config"
	"github.com/iudanet/clubsync/internal/logger"
	"github.com/iudanet/clubsync/internal/metrics"
	"github.com/iudanet/clubsync/internal/models"
)

// ErrMissingDependency is returned by New when a required dependency is nil.
var ErrMissingDependency = errors.New("missing dependency")

// Deps are the collaborators of an App. Store and Backend are required.
type Deps struct {
	Store   storage.Store
	Backend offline.Backend
	Prober  connectivity.Prober // nil: состояние меняется только через SetOnline
	Cache   *cache.Store        // nil: создается новый
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	Now     func() time.Time
}

// Status is a point-in-time view of the offline state.
type Status struct {
	LastFullSync time.Time
	Cache        offline.CacheSize
	QueueLength  int
	Quarantined  int
	Online       bool
	Syncing      bool
	Stale        bool
	HasSynced    bool
}

// App is the client facade. Create it once at startup with New and release
// it with Close.
type App struct {
	cfg     *config.Config
	store   storage.Store
	backend offline.Backend
	cache   *cache.Store
	monitor *connectivity.Monitor
	offline *offline.Manager
	clubs   *optimistic.Coordinator[models.Club, models.ClubDraft]
	lists   *optimistic.Coordinator[models.CustomList, models.ListDraft]
	sched   *scheduler.Scheduler
	log     *zap.Logger
	now     func() time.Time
	cancel  context.CancelFunc
	closers []func() error

	wg          sync.WaitGroup
	closeOnce   sync.Once
	startOnce   sync.Once
	listener    connectivity.ListenerID
	clubsLoaded atomic.Bool
	listsLoaded atomic.Bool
}

// New assembles an App from cfg and deps. The store stays owned by the
// caller unless the App was built by Open.
func New(cfg *config.Config, deps Deps) (*App, error) {
	if cfg == nil {
		return nil, errors.Join(ErrMissingDependency, errors.New("config is nil"))
	}
	if deps.Store == nil || deps.Backend == nil {
		return nil, errors.Join(ErrMissingDependency, errors.New("store and backend are required"))
	}

	now := deps.Now
	if now == nil {
		now = time.Now
	}

	c := deps.Cache
	if c == nil {
		c = cache.New(
			cache.WithClock(now),
			cache.WithLogger(logger.WithModule(deps.Logger, "cache")),
			cache.WithMetrics(deps.Metrics))
	}

	monitor := connectivity.New(deps.Prober,
		connectivity.WithInterval(cfg.Offline.ProbeInterval),
		connectivity.WithLogger(logger.WithModule(deps.Logger, "connectivity")))

	manager := offline.New(deps.Store, deps.Backend, monitor, deps.Logger,
		offline.WithMaxAge(cfg.Offline.MaxAge),
		offline.WithMaxAttempts(cfg.Offline.MaxAttempts),
		offline.WithAutoSyncOnReconnect(cfg.Offline.AutoSync),
		offline.WithClock(now),
		offline.WithMetrics(deps.Metrics))

	a := &App{
		cfg:     cfg,
		store:   deps.Store,
		backend: deps.Backend,
		cache:   c,
		monitor: monitor,
		offline: manager,
		log:     logger.WithModule(deps.Logger, "app"),
		now:     now,
		cancel:  func() {},
	}

	coordCfg := optimistic.Config{
		Cache:         c,
		Logger:        deps.Logger,
		Metrics:       deps.Metrics,
		Now:           now,
		OnRefresh:     a.persistSnapshot,
		ItemTTL:       cfg.Cache.DefaultTTL,
		CommitTimeout: cfg.Optimistic.CommitTimeout,
	}
	a.clubs = optimistic.New[models.Club, models.ClubDraft](models.ResourceClubs,
		optimistic.NewCollection[models.Club](nil), ClubAdapter{}, coordCfg)
	a.lists = optimistic.New[models.CustomList, models.ListDraft](models.ResourceCustomLists,
		optimistic.NewCollection[models.CustomList](nil), ListAdapter{}, coordCfg)

	a.sched = scheduler.New(manager, c,
		scheduler.WithSyncSchedule(cfg.Sync.Schedule),
		scheduler.WithSweepSchedule(cfg.Cache.SweepSchedule),
		scheduler.WithLogger(deps.Logger))

	a.listener = monitor.AddListener(a.onConnectivityChange)
	return a, nil
}

// Start launches the connectivity probe loop and the scheduled jobs.
func (a *App) Start(ctx context.Context) error {
	var err error
	a.startOnce.Do(func() {
		if err = a.sched.Start(); err != nil {
			return
		}
		ctx, a.cancel = context.WithCancel(ctx)
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			a.monitor.Run(ctx)
		}()
	})
	return err
}

// Close stops background work and releases owned resources.
func (a *App) Close() error {
	var errs error
	a.closeOnce.Do(func() {
		a.monitor.RemoveListener(a.listener)
		a.cancel()
		a.sched.Stop()
		a.wg.Wait()
		errs = multierr.Append(errs, a.offline.Close())
		for i := len(a.closers) - 1; i >= 0; i-- {
			errs = multierr.Append(errs, a.closers[i]())
		}
	})
	return errs
}

// Reset drops every cached and stored piece of state. Intended for tests
// and for switching accounts.
func (a *App) Reset(ctx context.Context) error {
	err := a.offline.ClearCache(ctx)
	a.cache.Clear()
	a.clubs.Items().Reset(nil)
	a.lists.Items().Reset(nil)
	a.clubsLoaded.Store(false)
	a.listsLoaded.Store(false)
	return err
}

// Cache returns the shared cache store.
func (a *App) Cache() *cache.Store {
	return a.cache
}

// Offline returns the offline manager.
func (a *App) Offline() *offline.Manager {
	return a.offline
}

// Scheduler returns the background job scheduler.
func (a *App) Scheduler() *scheduler.Scheduler {
	return a.sched
}

// Clubs returns the club read-model.
func (a *App) Clubs() *optimistic.Collection[models.Club] {
	return a.clubs.Items()
}

// Lists returns the custom list read-model.
func (a *App) Lists() *optimistic.Collection[models.CustomList] {
	return a.lists.Items()
}

// ConnectionStatus reports whether the backend is considered reachable.
func (a *App) ConnectionStatus() bool {
	return a.offline.IsOnline()
}

// SetOnline overrides the connectivity state.
func (a *App) SetOnline(online bool) {
	a.offline.SetOnline(online)
}

// CheckConnection probes the backend once.
func (a *App) CheckConnection(ctx context.Context) bool {
	return a.monitor.Check(ctx)
}

// Status collects the offline state for display.
func (a *App) Status(ctx context.Context) Status {
	st := Status{
		Online:      a.offline.IsOnline(),
		Syncing:     a.offline.IsSyncing(),
		QueueLength: a.offline.GetSyncQueueLength(ctx),
		Stale:       a.offline.IsDataStale(ctx, 0),
		Cache:       a.offline.GetCacheSize(ctx),
	}
	st.LastFullSync, st.HasSynced = a.offline.LastFullSync(ctx)
	if items, err := a.offline.QuarantinedItems(ctx); err == nil {
		st.Quarantined = len(items)
	}
	return st
}

func (a *App) onConnectivityChange(online bool) {
	if !online {
		return
	}
	// после восстановления связи коллекции перечитываются с сервера
	a.cache.InvalidateByTags(
		optimistic.ListTag(models.ResourceClubs),
		optimistic.ListTag(models.ResourceFavorites),
		optimistic.ListTag(models.ResourceCustomLists))
}
