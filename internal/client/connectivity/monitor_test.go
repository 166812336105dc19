package connectivity

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitor_SetNotifiesOnTransitionOnly(t *testing.T) {
	m := New(nil)
	require.True(t, m.IsOnline())

	var got []bool
	m.AddListener(func(online bool) {
		got = append(got, online)
	})

	assert.False(t, m.Set(true), "no transition")
	assert.True(t, m.Set(false))
	assert.False(t, m.Set(false))
	assert.True(t, m.Set(true))

	assert.Equal(t, []bool{false, true}, got)
}

func TestMonitor_ListenersOrderAndRemoval(t *testing.T) {
	m := New(nil, WithInitialState(false))

	var calls []string
	first := m.AddListener(func(bool) { calls = append(calls, "first") })
	m.AddListener(func(bool) { calls = append(calls, "second") })

	m.Set(true)
	assert.Equal(t, []string{"first", "second"}, calls)

	m.RemoveListener(first)
	m.RemoveListener(ListenerID(999))
	calls = nil
	m.Set(false)
	assert.Equal(t, []string{"second"}, calls)
}

func TestMonitor_ListenerMayReadState(t *testing.T) {
	m := New(nil)
	var seen atomic.Bool
	m.AddListener(func(online bool) {
		// не должно быть deadlock
		seen.Store(m.IsOnline() == online)
	})
	m.Set(false)
	assert.True(t, seen.Load())
}

func TestMonitor_Check(t *testing.T) {
	tests := []struct {
		pingErr error
		name    string
		initial bool
		want    bool
	}{
		{name: "reachable", initial: false, pingErr: nil, want: true},
		{name: "unreachable", initial: true, pingErr: errors.New("dial tcp: refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prober := &ProberMock{
				PingFunc: func(ctx context.Context) error { return tt.pingErr },
			}
			m := New(prober, WithInitialState(tt.initial))

			assert.Equal(t, tt.want, m.Check(context.Background()))
			assert.Equal(t, tt.want, m.IsOnline())
			assert.Len(t, prober.PingCalls(), 1)
		})
	}
}

func TestMonitor_CheckCanceledKeepsState(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prober := &ProberMock{
		PingFunc: func(ctx context.Context) error { return ctx.Err() },
	}
	m := New(prober)
	assert.True(t, m.Check(ctx))
	assert.True(t, m.IsOnline())
}

func TestMonitor_Run(t *testing.T) {
	var mu sync.Mutex
	reachable := false
	prober := &ProberMock{
		PingFunc: func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			if reachable {
				return nil
			}
			return errors.New("offline")
		},
	}
	m := New(prober, WithInterval(10*time.Millisecond))

	transitions := make(chan bool, 4)
	m.AddListener(func(online bool) { transitions <- online })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	select {
	case online := <-transitions:
		assert.False(t, online)
	case <-time.After(time.Second):
		t.Fatal("expected offline transition")
	}

	mu.Lock()
	reachable = true
	mu.Unlock()

	select {
	case online := <-transitions:
		assert.True(t, online)
	case <-time.After(time.Second):
		t.Fatal("expected online transition")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop")
	}
}
