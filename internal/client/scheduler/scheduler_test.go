package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/iudanet/clubsync/internal/client/offline"
)

type fakeSyncer struct {
	result *offline.SyncResult
	err    error
	calls  atomic.Int32
	online bool
}

func (f *fakeSyncer) IsOnline() bool {
	return f.online
}

func (f *fakeSyncer) SyncAllData(ctx context.Context) (*offline.SyncResult, error) {
	f.calls.Add(1)
	if f.result == nil {
		return &offline.SyncResult{}, f.err
	}
	return f.result, f.err
}

type fakeSweeper struct {
	calls atomic.Int32
}

func (f *fakeSweeper) Sweep() int {
	f.calls.Add(1)
	return 0
}

func TestScheduler_RunOnce(t *testing.T) {
	itemErr := errors.New("club c1: boom")
	passErr := &offline.SyncPassError{Stage: "refresh", Err: errors.New("refresh failed")}

	tests := []struct {
		syncer    *fakeSyncer
		name      string
		wantErrs  int
		wantCalls int32
	}{
		{name: "online success", syncer: &fakeSyncer{online: true}, wantCalls: 1},
		{name: "offline skips sync", syncer: &fakeSyncer{online: false}, wantCalls: 0},
		{
			name:      "item failures are reported",
			syncer:    &fakeSyncer{online: true, result: &offline.SyncResult{Failed: 1, Errors: itemErr}},
			wantCalls: 1,
			wantErrs:  1,
		},
		{
			name:      "pass failure is reported",
			syncer:    &fakeSyncer{online: true, result: &offline.SyncResult{Errors: itemErr}, err: passErr},
			wantCalls: 1,
			wantErrs:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sweeper := &fakeSweeper{}
			s := New(tt.syncer, sweeper)

			err := s.RunOnce(context.Background())
			if tt.wantErrs == 0 {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Len(t, multierr.Errors(err), tt.wantErrs)
			}
			assert.Equal(t, tt.wantCalls, tt.syncer.calls.Load())
			assert.Equal(t, int32(1), sweeper.calls.Load())
		})
	}
}

func TestScheduler_RunOnce_NilJobs(t *testing.T) {
	s := New(nil, nil)
	assert.NoError(t, s.RunOnce(context.Background()))
}

func TestScheduler_StartRegistersJobs(t *testing.T) {
	c := cron.New(cron.WithLogger(cron.DiscardLogger))
	s := New(&fakeSyncer{online: true}, &fakeSweeper{}, WithCron(c), WithSyncSchedule("@every 1h"))

	require.NoError(t, s.Start())
	defer s.Stop()
	assert.Len(t, c.Entries(), 2)

	// повторный Start ничего не добавляет
	require.NoError(t, s.Start())
	assert.Len(t, c.Entries(), 2)
}

func TestScheduler_StartInvalidSchedule(t *testing.T) {
	c := cron.New(cron.WithLogger(cron.DiscardLogger))
	s := New(&fakeSyncer{}, nil, WithCron(c), WithSyncSchedule("not a schedule"))

	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sync schedule")
	assert.Empty(t, c.Entries())
}

func TestScheduler_Jobs(t *testing.T) {
	syncer := &fakeSyncer{online: false}
	sweeper := &fakeSweeper{}
	s := New(syncer, sweeper)

	s.syncJob()
	assert.Equal(t, int32(0), syncer.calls.Load())

	syncer.online = true
	s.syncJob()
	assert.Equal(t, int32(1), syncer.calls.Load())

	syncer.err = errors.New("offline")
	s.syncJob()
	assert.Equal(t, int32(2), syncer.calls.Load())

	s.sweepJob()
	assert.Equal(t, int32(1), sweeper.calls.Load())
}

func TestScheduler_StopCancelsSync(t *testing.T) {
	s := New(&fakeSyncer{}, nil)
	s.Stop()
	assert.Error(t, s.ctx.Err())
}
