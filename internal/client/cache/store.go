package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/iudanet/clubsync/internal/metrics"
)

const defaultMirrorTimeout = 2 * time.Second

// Store is an in-process key/value cache with per-entry TTL and tag based
// invalidation. Expired entries are removed lazily on access; Sweep can be
// scheduled for memory hygiene.
type Store struct {
	entries map[string]*Entry
	now     func() time.Time
	mirror  Mirror
	log     *zap.Logger
	metrics *metrics.Metrics
	group   singleflight.Group

	mirrorTimeout time.Duration
	mu            sync.RWMutex
}

// Option customises the Store.
type Option func(*Store)

// WithClock overrides the clock used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMirror enables best-effort write-through to a durable mirror.
func WithMirror(m Mirror) Option {
	return func(s *Store) {
		s.mirror = m
	}
}

// WithMirrorTimeout bounds every mirror call.
func WithMirrorTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.mirrorTimeout = d
		}
	}
}

// WithLogger sets the logger used for cache write faults.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMetrics enables Prometheus accounting.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		entries:       make(map[string]*Entry),
		now:           time.Now,
		log:           zap.NewNop(),
		mirrorTimeout: defaultMirrorTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the cached value for key. An expired entry is removed and
// reported as a miss.
func (s *Store) Get(key string) (any, bool) {
	value, ok, expired := s.lookup(key)
	if expired {
		s.metrics.CacheEvicted("expired", 1)
		s.mirrorRemove(key)
	}
	if !ok {
		s.metrics.CacheMiss()
		return nil, false
	}
	s.metrics.CacheHit()
	return value, true
}

// lookup performs the expiry-aware read. Returns (value, hit, expired).
func (s *Store) lookup(key string) (any, bool, bool) {
	now := s.now()

	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, false
	}
	if !entry.Expired(now) {
		return entry.Value, true, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// запись могла быть перезаписана между RUnlock и Lock
	current, ok := s.entries[key]
	if !ok {
		return nil, false, false
	}
	if current != entry && !current.Expired(now) {
		return current.Value, true, false
	}
	delete(s.entries, key)
	return nil, false, true
}

// Set stores value under key, replacing any previous entry together with
// its expiry and tags.
func (s *Store) Set(key string, value any, opts ...SetOption) {
	var o setOptions
	for _, opt := range opts {
		opt(&o)
	}

	now := s.now()
	entry := &Entry{
		Key:       key,
		Value:     value,
		Tags:      tagSet(o.tags),
		CreatedAt: now,
	}
	if o.ttl > 0 {
		entry.ExpiresAt = now.Add(o.ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()

	s.mirrorPut(entry, o.ttl)
}

// Delete removes key if present.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	_, ok := s.entries[key]
	delete(s.entries, key)
	s.mu.Unlock()

	if ok {
		s.metrics.CacheEvicted("deleted", 1)
		s.mirrorRemove(key)
	}
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.mu.Lock()
	n := len(s.entries)
	s.entries = make(map[string]*Entry)
	s.mu.Unlock()

	s.metrics.CacheEvicted("deleted", n)
	if s.mirror == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.mirrorTimeout)
	defer cancel()
	if err := s.mirror.Flush(ctx); err != nil {
		s.writeFault("flush", "", err)
	}
}

// GetMany returns the values for the keys that are present and not expired.
func (s *Store) GetMany(keys []string) map[string]any {
	result := make(map[string]any, len(keys))
	for _, key := range keys {
		if value, ok := s.Get(key); ok {
			result[key] = value
		}
	}
	return result
}

// SetMany is equivalent to calling Set for each item in order.
func (s *Store) SetMany(items []Item) {
	for _, item := range items {
		s.Set(item.Key, item.Value, WithTTL(item.TTL), WithTags(item.Tags...))
	}
}

// DeleteMany is equivalent to calling Delete for each key.
func (s *Store) DeleteMany(keys []string) {
	for _, key := range keys {
		s.Delete(key)
	}
}

// InvalidateByTags removes every entry whose tag set intersects tags and
// returns the number of removed entries.
func (s *Store) InvalidateByTags(tags ...string) int {
	if len(tags) == 0 {
		return 0
	}
	wanted := tagSet(tags)

	s.mu.Lock()
	var removed []string
	for key, entry := range s.entries {
		if entry.HasAnyTag(wanted) {
			delete(s.entries, key)
			removed = append(removed, key)
		}
	}
	s.mu.Unlock()

	s.metrics.CacheEvicted("invalidated", len(removed))
	if len(removed) > 0 {
		s.mirrorRemove(removed...)
	}
	return len(removed)
}

// Len returns the number of stored entries, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep removes all expired entries and returns how many were removed.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	var removed []string
	for key, entry := range s.entries {
		if entry.Expired(now) {
			delete(s.entries, key)
			removed = append(removed, key)
		}
	}
	s.mu.Unlock()

	s.metrics.CacheEvicted("expired", len(removed))
	if len(removed) > 0 {
		s.mirrorRemove(removed...)
	}
	return len(removed)
}

// GetOrLoad returns the cached value for key or calls load on a miss and
// caches its result with opts. Concurrent misses for the same key share a
// single load call. Load errors are returned and nothing is cached.
func (s *Store) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (any, error), opts ...SetOption) (any, error) {
	if value, ok := s.Get(key); ok {
		return value, nil
	}

	value, err, _ := s.group.Do(key, func() (any, error) {
		if value, ok, _ := s.lookup(key); ok {
			return value, nil
		}
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		s.Set(key, value, opts...)
		return value, nil
	})
	return value, err
}

func (s *Store) mirrorPut(entry *Entry, ttl time.Duration) {
	if s.mirror == nil {
		return
	}
	data, err := json.Marshal(entry.Value)
	if err != nil {
		s.writeFault("marshal", entry.Key, err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.mirrorTimeout)
	defer cancel()
	if err := s.mirror.Put(ctx, entry.Key, data, ttl, entry.TagList()); err != nil {
		s.writeFault("put", entry.Key, err)
	}
}

func (s *Store) mirrorRemove(keys ...string) {
	if s.mirror == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.mirrorTimeout)
	defer cancel()
	if err := s.mirror.Remove(ctx, keys...); err != nil {
		s.writeFault("remove", "", err)
	}
}

// writeFault logs a CacheWriteFault; the in-memory cache stays authoritative.
func (s *Store) writeFault(op, key string, err error) {
	s.metrics.CacheWriteFault()
	s.log.Warn("cache mirror write failed",
		zap.String("op", op),
		zap.String("key", key),
		zap.Error(err))
}
