// Package scheduler runs the periodic background jobs of the client: the
// full offline sync and the cache sweep.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/client/offline"
	"github.com/iudanet/clubsync/internal/logger"
)

const (
	defaultSyncSpec  = "@every 5m"
	defaultSweepSpec = "@every 1m"
	defaultTimeout   = 2 * time.Minute
)

// Syncer is the part of offline.Manager the scheduler drives.
type Syncer interface {
	IsOnline() bool
	SyncAllData(ctx context.Context) (*offline.SyncResult, error)
}

// Sweeper drops expired cache entries.
type Sweeper interface {
	Sweep() int
}

// Scheduler owns a cron instance with the sync and sweep jobs.
type Scheduler struct {
	syncer  Syncer
	sweeper Sweeper
	cron    *cron.Cron
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc

	syncSchedule  string
	sweepSchedule string
	timeout       time.Duration
	mu            sync.Mutex
	started       bool
}

// Option customises the Scheduler.
type Option func(*Scheduler)

// WithCron injects a preconfigured cron instance, primarily for testing.
func WithCron(c *cron.Cron) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.cron = c
		}
	}
}

// WithSyncSchedule overrides the cron specification of the sync job.
func WithSyncSchedule(spec string) Option {
	return func(s *Scheduler) {
		if spec != "" {
			s.syncSchedule = spec
		}
	}
}

// WithSweepSchedule overrides the cron specification of the cache sweep.
func WithSweepSchedule(spec string) Option {
	return func(s *Scheduler) {
		if spec != "" {
			s.sweepSchedule = spec
		}
	}
}

// WithJobTimeout bounds a single sync run.
func WithJobTimeout(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Scheduler) {
		s.log = logger.WithModule(log, "scheduler")
	}
}

// New constructs a Scheduler. A nil syncer or sweeper disables the
// corresponding job.
func New(syncer Syncer, sweeper Sweeper, opts ...Option) *Scheduler {
	s := &Scheduler{
		syncer:        syncer,
		sweeper:       sweeper,
		log:           zap.NewNop(),
		syncSchedule:  defaultSyncSpec,
		sweepSchedule: defaultSweepSpec,
		timeout:       defaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cron == nil {
		s.cron = cron.New(cron.WithLogger(cron.DiscardLogger))
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	return s
}

// Start registers the jobs and launches the cron scheduler.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}

	if s.syncer != nil {
		if _, err := s.cron.AddFunc(s.syncSchedule, s.syncJob); err != nil {
			return fmt.Errorf("invalid sync schedule %q: %w", s.syncSchedule, err)
		}
	}
	if s.sweeper != nil {
		if _, err := s.cron.AddFunc(s.sweepSchedule, s.sweepJob); err != nil {
			return fmt.Errorf("invalid sweep schedule %q: %w", s.sweepSchedule, err)
		}
	}

	s.cron.Start()
	s.started = true
	return nil
}

// Stop cancels a running sync and waits for running jobs to complete.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
}

// RunOnce runs every enabled job once. Sync is skipped while offline.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	var errs error

	if s.sweeper != nil {
		s.sweeper.Sweep()
	}

	if s.syncer != nil && s.syncer.IsOnline() {
		result, err := s.syncer.SyncAllData(ctx)
		if err != nil {
			errs = multierr.Append(errs, err)
		}
		if result != nil {
			errs = multierr.Append(errs, multierr.Combine(result.ItemErrors()...))
		}
	}

	return errs
}

func (s *Scheduler) syncJob() {
	if !s.syncer.IsOnline() {
		s.log.Debug("skipping scheduled sync while offline")
		return
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	result, err := s.syncer.SyncAllData(ctx)
	if err != nil {
		s.log.Warn("scheduled sync failed", zap.Error(err))
		return
	}
	if result.Skipped {
		return
	}
	s.log.Info("scheduled sync finished",
		zap.Int("replayed", result.Replayed),
		zap.Int("failed", result.Failed),
		zap.Int("remaining", result.Remaining))
}

func (s *Scheduler) sweepJob() {
	if n := s.sweeper.Sweep(); n > 0 {
		s.log.Debug("swept expired cache entries", zap.Int("count", n))
	}
}
