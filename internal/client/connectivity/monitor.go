// Package connectivity tracks whether the backend is reachable.
//
// There is no platform online/offline event in a Go process, so the signal
// comes from a periodic Prober call plus explicit Set calls from callers that
// learn about the network state some other way (for example a failed request).
package connectivity

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
)

//go:generate moq -out prober_mock.go . Prober

const defaultProbeInterval = 30 * time.Second

// Prober checks backend reachability. A nil error means online.
type Prober interface {
	Ping(ctx context.Context) error
}

// Listener is invoked on every online/offline transition.
type Listener func(online bool)

// ListenerID identifies a registered listener.
type ListenerID uint64

// Monitor holds the current connectivity state and notifies listeners
// on transitions only.
type Monitor struct {
	prober    Prober
	log       *zap.Logger
	listeners map[ListenerID]Listener
	interval  time.Duration
	nextID    ListenerID
	mu        sync.RWMutex
	online    bool
}

// Option customises the Monitor.
type Option func(*Monitor)

// WithInterval sets the probe period for Run.
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithInitialState sets the state reported before the first probe.
func WithInitialState(online bool) Option {
	return func(m *Monitor) {
		m.online = online
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(m *Monitor) {
		if log != nil {
			m.log = log
		}
	}
}

// New creates a Monitor. prober may be nil, in which case the state only
// changes through Set. The initial state is online.
func New(prober Prober, opts ...Option) *Monitor {
	m := &Monitor{
		prober:    prober,
		log:       zap.NewNop(),
		listeners: make(map[ListenerID]Listener),
		interval:  defaultProbeInterval,
		online:    true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// IsOnline returns the current state.
func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// Set records the state and notifies listeners if it changed.
// Reports whether a transition happened.
func (m *Monitor) Set(online bool) bool {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return false
	}
	m.online = online
	listeners := m.snapshotListeners()
	m.mu.Unlock()

	m.log.Info("connectivity changed", zap.Bool("online", online))

	// слушатели вызываются вне блокировки: они могут читать IsOnline
	for _, l := range listeners {
		l(online)
	}
	return true
}

// snapshotListeners returns listeners in registration order. Caller holds mu.
func (m *Monitor) snapshotListeners() []Listener {
	ids := make([]ListenerID, 0, len(m.listeners))
	for id := range m.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	result := make([]Listener, 0, len(ids))
	for _, id := range ids {
		result = append(result, m.listeners[id])
	}
	return result
}

// AddListener registers l and returns its id.
func (m *Monitor) AddListener(l Listener) ListenerID {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.listeners[m.nextID] = l
	return m.nextID
}

// RemoveListener unregisters a listener. Unknown ids are ignored.
func (m *Monitor) RemoveListener(id ListenerID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.listeners, id)
}

// Check probes once and records the result.
func (m *Monitor) Check(ctx context.Context) bool {
	if m.prober == nil {
		return m.IsOnline()
	}
	err := m.prober.Ping(ctx)
	if err != nil && ctx.Err() != nil {
		// отмена контекста ничего не говорит о сети
		return m.IsOnline()
	}
	if err != nil {
		m.log.Debug("probe failed", zap.Error(err))
	}
	online := err == nil
	m.Set(online)
	return online
}

// Run probes immediately and then every interval until ctx is done.
func (m *Monitor) Run(ctx context.Context) {
	if m.prober == nil {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}
