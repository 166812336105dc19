// Package offline keeps the application usable without a backend: durable
// snapshots of the last known collections, a FIFO queue of mutations made
// while offline, connectivity tracking and a staleness policy.
package offline

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/client/connectivity"
	"github.com/iudanet/clubsync/internal/client/storage"
	"github.com/iudanet/clubsync/internal/logger"
	"github.com/iudanet/clubsync/internal/metrics"
)

const (
	// DefaultMaxAge is the staleness threshold used when none is given.
	DefaultMaxAge = 24 * time.Hour
	// DefaultMaxAttempts is the replay attempt count after which an item is quarantined.
	DefaultMaxAttempts = 5
)

// Manager owns the durable offline state of the client.
type Manager struct {
	store    storage.Store
	backend  Backend
	monitor  *connectivity.Monitor
	log      *zap.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
	baseCtx  context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	bgMu     sync.Mutex
	listener connectivity.ListenerID

	maxAge      time.Duration
	maxAttempts int
	autoSync    bool
	syncing     atomic.Bool
	closed      bool
	closeOnce   sync.Once
}

// Option customises the Manager.
type Option func(*Manager)

// WithMaxAge sets the default staleness threshold.
func WithMaxAge(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.maxAge = d
		}
	}
}

// WithMaxAttempts sets how many failed replays quarantine an item.
func WithMaxAttempts(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxAttempts = n
		}
	}
}

// WithAutoSyncOnReconnect starts a sync pass on every offline to online transition.
func WithAutoSyncOnReconnect(enabled bool) Option {
	return func(m *Manager) {
		m.autoSync = enabled
	}
}

// WithClock overrides the clock.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithMetrics enables Prometheus accounting.
func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Manager) {
		m.metrics = mt
	}
}

// New creates a Manager. A nil monitor gets a private one that starts online
// and changes only through SetOnline.
func New(store storage.Store, backend Backend, monitor *connectivity.Monitor, log *zap.Logger, opts ...Option) *Manager {
	if monitor == nil {
		monitor = connectivity.New(nil)
	}
	ctx, cancel := context.WithCancel(context.Background())

	m := &Manager{
		store:       store,
		backend:     backend,
		monitor:     monitor,
		log:         logger.WithModule(log, "offline"),
		now:         time.Now,
		baseCtx:     ctx,
		cancel:      cancel,
		maxAge:      DefaultMaxAge,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.listener = monitor.AddListener(m.onConnectivityChange)
	return m
}

// Close stops background syncs started by reconnects and detaches from the
// connectivity monitor. The storage is owned by the caller.
func (m *Manager) Close() error {
	m.closeOnce.Do(func() {
		m.monitor.RemoveListener(m.listener)

		m.bgMu.Lock()
		m.closed = true
		m.bgMu.Unlock()

		m.cancel()
		m.wg.Wait()
	})
	return nil
}

// IsOnline returns the current connectivity state.
func (m *Manager) IsOnline() bool {
	return m.monitor.IsOnline()
}

// SetOnline records a connectivity change observed by the caller.
func (m *Manager) SetOnline(online bool) {
	m.monitor.Set(online)
}

// AddConnectivityListener registers cb for every online/offline transition.
func (m *Manager) AddConnectivityListener(cb connectivity.Listener) connectivity.ListenerID {
	return m.monitor.AddListener(cb)
}

// RemoveConnectivityListener unregisters a listener.
func (m *Manager) RemoveConnectivityListener(id connectivity.ListenerID) {
	m.monitor.RemoveListener(id)
}

// IsSyncing reports whether a sync pass is running.
func (m *Manager) IsSyncing() bool {
	return m.syncing.Load()
}

func (m *Manager) onConnectivityChange(online bool) {
	if !online || !m.autoSync {
		return
	}

	m.bgMu.Lock()
	defer m.bgMu.Unlock()
	if m.closed {
		return
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		result, err := m.SyncAllData(m.baseCtx)
		if err != nil {
			m.log.Warn("sync after reconnect failed", zap.Error(err))
			return
		}
		if !result.Skipped {
			m.log.Info("sync after reconnect finished",
				zap.Int("replayed", result.Replayed),
				zap.Int("failed", result.Failed))
		}
	}()
}
