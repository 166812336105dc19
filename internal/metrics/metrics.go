package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors exported by the client core.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// CacheRequests counts cache lookups by result (hit|miss).
	CacheRequests *prometheus.CounterVec
	// CacheEvictions counts entries removed by reason (expired|invalidated|deleted).
	CacheEvictions *prometheus.CounterVec
	// CacheWriteFaults counts failed mirror writes.
	CacheWriteFaults prometheus.Counter
	// SyncQueueLength tracks the number of queued offline mutations.
	SyncQueueLength prometheus.Gauge
	// SyncItems counts replayed queue items by result (replayed|failed|quarantined).
	SyncItems *prometheus.CounterVec
	// SyncPasses counts sync passes by result (ok|partial|offline|aborted).
	SyncPasses *prometheus.CounterVec
	// OptimisticUpdates counts optimistic mutations by type and outcome (committed|rolled_back).
	OptimisticUpdates *prometheus.CounterVec
	// RollbackDivergences counts rollbacks that could not restore the exact pre-image.
	RollbackDivergences prometheus.Counter
}

// New creates the collectors and registers them on reg.
// Pass prometheus.NewRegistry() in tests to avoid global state.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CacheRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubsync_cache_requests_total",
				Help: "Total number of cache lookups",
			},
			[]string{"result"},
		),
		CacheEvictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubsync_cache_evictions_total",
				Help: "Total number of cache entries removed",
			},
			[]string{"reason"},
		),
		CacheWriteFaults: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "clubsync_cache_write_faults_total",
				Help: "Total number of failed cache mirror writes",
			},
		),
		SyncQueueLength: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "clubsync_sync_queue_length",
				Help: "Number of mutations waiting in the offline sync queue",
			},
		),
		SyncItems: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubsync_sync_items_total",
				Help: "Total number of replayed sync queue items",
			},
			[]string{"result"},
		),
		SyncPasses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubsync_sync_passes_total",
				Help: "Total number of sync passes",
			},
			[]string{"result"},
		),
		OptimisticUpdates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubsync_optimistic_updates_total",
				Help: "Total number of optimistic mutations",
			},
			[]string{"type", "outcome"},
		),
		RollbackDivergences: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "clubsync_rollback_divergences_total",
				Help: "Total number of rollbacks that diverged from the captured pre-image",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.CacheRequests,
			m.CacheEvictions,
			m.CacheWriteFaults,
			m.SyncQueueLength,
			m.SyncItems,
			m.SyncPasses,
			m.OptimisticUpdates,
			m.RollbackDivergences,
		)
	}

	return m
}

// CacheHit records a cache hit.
func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.CacheRequests.WithLabelValues("hit").Inc()
}

// CacheMiss records a cache miss.
func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.CacheRequests.WithLabelValues("miss").Inc()
}

// CacheEvicted records n removed entries for reason.
func (m *Metrics) CacheEvicted(reason string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.CacheEvictions.WithLabelValues(reason).Add(float64(n))
}

// CacheWriteFault records a failed mirror write.
func (m *Metrics) CacheWriteFault() {
	if m == nil {
		return
	}
	m.CacheWriteFaults.Inc()
}

// QueueLength sets the current sync queue length.
func (m *Metrics) QueueLength(n int) {
	if m == nil {
		return
	}
	m.SyncQueueLength.Set(float64(n))
}

// SyncItem records the outcome of a single replayed item.
func (m *Metrics) SyncItem(result string) {
	if m == nil {
		return
	}
	m.SyncItems.WithLabelValues(result).Inc()
}

// SyncPass records the outcome of a sync pass.
func (m *Metrics) SyncPass(result string) {
	if m == nil {
		return
	}
	m.SyncPasses.WithLabelValues(result).Inc()
}

// Optimistic records a settled optimistic mutation.
func (m *Metrics) Optimistic(mutation, outcome string) {
	if m == nil {
		return
	}
	m.OptimisticUpdates.WithLabelValues(mutation, outcome).Inc()
}

// RollbackDivergence records a diverged rollback.
func (m *Metrics) RollbackDivergence() {
	if m == nil {
		return
	}
	m.RollbackDivergences.Inc()
}
