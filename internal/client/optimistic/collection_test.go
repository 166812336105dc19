package optimistic

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Operations(t *testing.T) {
	seed := []note{{ID: "a"}, {ID: "b"}}
	c := NewCollection(seed)
	seed[0].ID = "mutated"

	assert.Equal(t, []string{"a", "b"}, ids(c.Items()), "seed copied")

	c.Prepend(note{ID: "z"})
	c.Append(note{ID: "y"})
	assert.Equal(t, []string{"z", "a", "b", "y"}, ids(c.Items()))

	assert.True(t, c.Replace("a", note{ID: "a", Title: "t"}))
	assert.False(t, c.Replace("missing", note{ID: "missing"}))
	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "t", got.Title)

	removed, ok := c.Remove("b")
	require.True(t, ok)
	assert.Equal(t, "b", removed.ID)
	_, ok = c.Remove("b")
	assert.False(t, ok)
	assert.Equal(t, 3, c.Len())

	c.Reset(nil)
	assert.Zero(t, c.Len())
}

func TestCollection_Swap(t *testing.T) {
	tests := []struct {
		name   string
		seed   []string
		oldID  string
		newID  string
		want   []string
		wantOK bool
	}{
		{name: "in place", seed: []string{"x", "temp-1", "y"}, oldID: "temp-1", newID: "s1", want: []string{"x", "s1", "y"}, wantOK: true},
		{name: "drops duplicate", seed: []string{"temp-1", "s1"}, oldID: "temp-1", newID: "s1", want: []string{"s1"}, wantOK: true},
		{name: "old missing", seed: []string{"x"}, oldID: "temp-1", newID: "s1", want: []string{"s1", "x"}, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seed []note
			for _, id := range tt.seed {
				seed = append(seed, note{ID: id})
			}
			c := NewCollection(seed)
			assert.Equal(t, tt.wantOK, c.Swap(tt.oldID, note{ID: tt.newID}))
			assert.Equal(t, tt.want, ids(c.Items()))
		})
	}
}

func TestKeyedMutex(t *testing.T) {
	var k KeyedMutex
	ctx := context.Background()

	unlock, err := k.Lock(ctx, "a")
	require.NoError(t, err)
	assert.True(t, k.Held("a"))

	// другой ключ свободен
	unlockB, err := k.Lock(ctx, "b")
	require.NoError(t, err)
	unlockB()

	short, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	_, err = k.Lock(short, "a")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	acquired := make(chan struct{})
	go func() {
		unlock2, err := k.Lock(ctx, "a")
		if err == nil {
			unlock2()
		}
		close(acquired)
	}()

	unlock()
	unlock() // повторный вызов безопасен
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("waiter not woken")
	}
	assert.Eventually(t, func() bool { return !k.Held("a") }, time.Second, time.Millisecond)
}

func TestKeyedMutex_CanceledContext(t *testing.T) {
	var k KeyedMutex
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := k.Lock(ctx, "a")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, k.Held("a"))
}

func TestMerge(t *testing.T) {
	base := note{ID: "n", Title: "t", Tags: []string{"a", "b"}, Stars: 1}

	tests := []struct {
		changes map[string]any
		check   func(t *testing.T, got note)
		name    string
		wantErr bool
	}{
		{
			name:    "scalar",
			changes: map[string]any{"title": "new"},
			check: func(t *testing.T, got note) {
				assert.Equal(t, "new", got.Title)
				assert.Equal(t, []string{"a", "b"}, got.Tags)
			},
		},
		{
			name:    "shorter slice replaces",
			changes: map[string]any{"tags": []any{"z"}},
			check: func(t *testing.T, got note) {
				assert.Equal(t, []string{"z"}, got.Tags)
			},
		},
		{
			name:    "nil clears",
			changes: map[string]any{"tags": nil},
			check: func(t *testing.T, got note) {
				assert.Nil(t, got.Tags)
			},
		},
		{
			name:    "time from string",
			changes: map[string]any{"updated_at": "2025-01-02T03:04:05Z"},
			check: func(t *testing.T, got note) {
				assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), got.UpdatedAt)
			},
		},
		{name: "unknown key", changes: map[string]any{"nope": 1}, wantErr: true},
		{name: "wrong type", changes: map[string]any{"stars": "many"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := merge(base, tt.changes)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidChanges)
				assert.Equal(t, base, got)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
			assert.Equal(t, []string{"a", "b"}, base.Tags, "input untouched")
		})
	}
}
