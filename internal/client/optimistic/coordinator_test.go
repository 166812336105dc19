package optimistic

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/client/cache"
	"github.com/iudanet/clubsync/internal/metrics"
)

const resource = "notes"

func newTestCoordinator(t *testing.T, seed []note, cfg Config) *Coordinator[note, noteDraft] {
	t.Helper()
	if cfg.Now == nil {
		cfg.Now = fixedNow
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return New[note, noteDraft](resource, NewCollection(seed), noteAdapter{}, cfg)
}

func TestCoordinator_CreateVisibleBeforeServerAnswers(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t, []note{{ID: "n1"}}, Config{})

	var seen []string
	_, err := c.Create(ctx, noteDraft{Title: "Club A"}, func(ctx context.Context) (note, error) {
		seen = ids(c.Items().Items())
		return note{ID: "srv-1", Title: "Club A"}, nil
	})
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.True(t, IsTemporaryID(seen[0]), "optimistic entity inserted at head with temp id")
	assert.Equal(t, "n1", seen[1])
}

func TestCoordinator_CreateSuccessSwapsID(t *testing.T) {
	ctx := context.Background()
	store := cache.New()
	c := newTestCoordinator(t, []note{{ID: "n1"}}, Config{Cache: store})

	u, err := c.BeginCreate(ctx, noteDraft{Title: "A"})
	require.NoError(t, err)
	tempID := u.ID
	assert.Equal(t, 1, c.Pending())

	_, ok := store.Get(ItemKey(resource, tempID))
	assert.True(t, ok)

	got, err := c.Commit(ctx, u, func(ctx context.Context) (note, error) {
		return note{ID: "srv-1", Title: "A"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "srv-1", got.ID)

	assert.Equal(t, []string{"srv-1", "n1"}, ids(c.Items().Items()))
	_, ok = store.Get(ItemKey(resource, tempID))
	assert.False(t, ok, "no residual temporary entry")
	cached, ok := store.Get(ItemKey(resource, "srv-1"))
	require.True(t, ok)
	assert.Equal(t, "srv-1", cached.(note).ID)
	assert.Zero(t, c.Pending())
	assert.True(t, u.Settled())
}

func TestCoordinator_CreateSuccessDeduplicatesServerEntity(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t, nil, Config{})

	_, err := c.Create(ctx, noteDraft{Title: "A"}, func(ctx context.Context) (note, error) {
		// обновление списка успело принести серверную запись
		c.Items().Append(note{ID: "srv-1"})
		return note{ID: "srv-1", Title: "A"}, nil
	})
	require.NoError(t, err)

	items := c.Items().Items()
	require.Len(t, items, 1)
	assert.Equal(t, "srv-1", items[0].ID)
	assert.Equal(t, "A", items[0].Title)
}

func TestCoordinator_CreateFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	store := cache.New()
	c := newTestCoordinator(t, []note{{ID: "n1"}}, Config{Cache: store})
	serverErr := errors.New("422 name taken")

	var tempID string
	_, err := c.Create(ctx, noteDraft{Title: "A"}, func(ctx context.Context) (note, error) {
		tempID = c.Items().Items()[0].ID
		return note{}, serverErr
	})
	require.ErrorIs(t, err, serverErr)

	assert.Equal(t, []string{"n1"}, ids(c.Items().Items()))
	_, ok := store.Get(ItemKey(resource, tempID))
	assert.False(t, ok)
	assert.Zero(t, c.Pending())
}

func TestCoordinator_UpdateMergeAndRollback(t *testing.T) {
	ctx := context.Background()
	original := note{ID: "n1", Title: "old", Tags: []string{"a", "b", "c"}, Stars: 3}
	c := newTestCoordinator(t, []note{original, {ID: "n2"}}, Config{})

	u, err := c.BeginUpdate(ctx, "n1", map[string]any{
		"title": "new",
		"tags":  []string{"x"},
		"id":    "hijack",
	})
	require.NoError(t, err)

	current, ok := c.Items().Get("n1")
	require.True(t, ok)
	assert.Equal(t, "new", current.Title)
	assert.Equal(t, []string{"x"}, current.Tags)
	assert.Equal(t, 3, current.Stars, "untouched fields kept")
	assert.Equal(t, testNow, current.UpdatedAt)
	require.NotNil(t, u.PreImage)
	assert.Equal(t, original, *u.PreImage, "pre-image not aliased by merge")

	_, err = c.Commit(ctx, u, func(ctx context.Context) (note, error) {
		return note{}, errors.New("500")
	})
	require.Error(t, err)

	restored, ok := c.Items().Get("n1")
	require.True(t, ok)
	assert.Equal(t, original, restored)
	assert.Equal(t, []string{"n1", "n2"}, ids(c.Items().Items()), "position kept")
}

func TestCoordinator_UpdateSuccessKeepsOptimisticState(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t, []note{{ID: "n1", Title: "old"}}, Config{})

	got, err := c.Update(ctx, "n1", map[string]any{"title": "new", "stars": 5.0}, func(ctx context.Context) (note, error) {
		return note{}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)

	current, _ := c.Items().Get("n1")
	assert.Equal(t, "new", current.Title)
	assert.Equal(t, 5, current.Stars)
}

func TestCoordinator_UpdateErrors(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t, []note{{ID: "n1"}}, Config{})

	_, err := c.BeginUpdate(ctx, "missing", map[string]any{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.BeginUpdate(ctx, "n1", map[string]any{"unknown": 1})
	assert.ErrorIs(t, err, ErrInvalidChanges)

	// неудачный Begin не держит блокировку
	u, err := c.BeginUpdate(ctx, "n1", map[string]any{"title": "ok"})
	require.NoError(t, err)
	require.NoError(t, c.Rollback(u))
	assert.Zero(t, c.Pending())
}

func TestCoordinator_DeleteRollbackReappends(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t, []note{{ID: "n1"}, {ID: "n2"}, {ID: "n3"}}, Config{})

	_, err := c.Delete(ctx, "n1", func(ctx context.Context) (note, error) {
		assert.Equal(t, []string{"n2", "n3"}, ids(c.Items().Items()))
		return note{}, errors.New("403")
	})
	require.Error(t, err)
	assert.Equal(t, []string{"n2", "n3", "n1"}, ids(c.Items().Items()))

	_, err = c.BeginDelete(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCoordinator_DeleteSuccess(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t, []note{{ID: "n1", Title: "t"}}, Config{})

	got, err := c.Delete(ctx, "n1", func(ctx context.Context) (note, error) {
		return note{}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title, "delete returns the removed entity")
	assert.Zero(t, c.Items().Len())
}

func TestCoordinator_RollbackDivergence(t *testing.T) {
	ctx := context.Background()
	m := metrics.New(prometheus.NewRegistry())
	c := newTestCoordinator(t, []note{{ID: "n1", Title: "old"}}, Config{Metrics: m})

	u, err := c.BeginUpdate(ctx, "n1", map[string]any{"title": "new"})
	require.NoError(t, err)

	// другая операция удалила сущность
	c.Items().Remove("n1")

	serverErr := errors.New("500")
	_, err = c.Commit(ctx, u, func(ctx context.Context) (note, error) {
		return note{}, serverErr
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, serverErr)
	assert.ErrorIs(t, err, ErrRollbackDivergence)

	restored, ok := c.Items().Get("n1")
	require.True(t, ok, "state repaired best-effort")
	assert.Equal(t, "old", restored.Title)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RollbackDivergences))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.OptimisticUpdates.WithLabelValues("update", "rolled_back")))
}

func TestCoordinator_RollbackCreateDivergence(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t, nil, Config{})

	u, err := c.BeginCreate(ctx, noteDraft{Title: "A"})
	require.NoError(t, err)
	c.Items().Remove(u.ID)

	err = c.Rollback(u)
	assert.ErrorIs(t, err, ErrRollbackDivergence)
	assert.ErrorIs(t, c.Rollback(u), ErrAlreadySettled)
}

func TestCoordinator_CompensationIsInspectable(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t, []note{{ID: "n1", Title: "old"}}, Config{})

	u, err := c.BeginDelete(ctx, "n1")
	require.NoError(t, err)
	defer c.Rollback(u)

	assert.Equal(t, "delete", string(u.Compensation.Kind))
	assert.Equal(t, "n1", u.Compensation.EntityID)
	require.NotNil(t, u.Compensation.PreImage)
	assert.Equal(t, "old", u.Compensation.PreImage.Title)
}

func TestCoordinator_SerializesPerEntity(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t, []note{{ID: "n1", Stars: 0}, {ID: "n2"}}, Config{})

	first, err := c.BeginUpdate(ctx, "n1", map[string]any{"stars": 1})
	require.NoError(t, err)

	// другая сущность не блокируется
	other, err := c.BeginUpdate(ctx, "n2", map[string]any{"title": "x"})
	require.NoError(t, err)
	require.NoError(t, c.Settle(other))

	// вторая мутация той же сущности ждет и уважает ctx
	short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = c.BeginUpdate(short, "n1", map[string]any{"stars": 2})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	started := make(chan struct{})
	secondDone := make(chan *Update[note])
	go func() {
		close(started)
		u, err := c.BeginUpdate(ctx, "n1", map[string]any{"stars": 2})
		assert.NoError(t, err)
		secondDone <- u
	}()
	<-started

	select {
	case <-secondDone:
		t.Fatal("second update must wait for the first to settle")
	case <-time.After(30 * time.Millisecond):
	}

	_, err = c.Commit(ctx, first, func(ctx context.Context) (note, error) {
		return note{}, nil
	})
	require.NoError(t, err)

	var second *Update[note]
	select {
	case second = <-secondDone:
	case <-time.After(time.Second):
		t.Fatal("second update did not start")
	}
	require.NotNil(t, second.PreImage)
	assert.Equal(t, 1, second.PreImage.Stars, "pre-image taken after the first settled")

	// откат второй не затирает результат первой
	require.NoError(t, c.Rollback(second))
	current, _ := c.Items().Get("n1")
	assert.Equal(t, 1, current.Stars)
}

func TestCoordinator_CommitTimeout(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t, []note{{ID: "n1", Title: "old"}}, Config{CommitTimeout: 20 * time.Millisecond})

	_, err := c.Update(ctx, "n1", map[string]any{"title": "new"}, func(ctx context.Context) (note, error) {
		<-ctx.Done()
		return note{}, ctx.Err()
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	current, _ := c.Items().Get("n1")
	assert.Equal(t, "old", current.Title)
}

func TestCoordinator_CacheViewsAndRefresh(t *testing.T) {
	ctx := context.Background()
	store := cache.New()
	var refreshed []string
	c := newTestCoordinator(t, []note{{ID: "n1"}}, Config{
		Cache:     store,
		OnRefresh: func(r string) { refreshed = append(refreshed, r) },
	})

	store.Set(ListKey(resource), c.Items().Items(), cache.WithTags(resource, ListTag(resource)))

	u, err := c.BeginCreate(ctx, noteDraft{Title: "A"})
	require.NoError(t, err)

	view, ok := store.Get(ListKey(resource))
	require.True(t, ok)
	assert.Equal(t, []string{u.ID, "n1"}, ids(view.([]note)), "list view follows the read-model")

	_, err = c.Commit(ctx, u, func(ctx context.Context) (note, error) {
		return note{ID: "srv-9"}, nil
	})
	require.NoError(t, err)

	_, ok = store.Get(ListKey(resource))
	assert.False(t, ok, "commit invalidates collection views")
	_, ok = store.Get(ItemKey(resource, "srv-9"))
	assert.True(t, ok, "item view of the confirmed entity survives")
	assert.Equal(t, []string{resource}, refreshed)
}

func TestCoordinator_CommitTwice(t *testing.T) {
	ctx := context.Background()
	c := newTestCoordinator(t, nil, Config{})

	u, err := c.BeginCreate(ctx, noteDraft{Title: "A"})
	require.NoError(t, err)
	op := func(ctx context.Context) (note, error) { return note{ID: "s"}, nil }

	_, err = c.Commit(ctx, u, op)
	require.NoError(t, err)
	_, err = c.Apply(ctx, u, op)
	assert.ErrorIs(t, err, ErrAlreadySettled)
	assert.ErrorIs(t, c.Settle(u), ErrAlreadySettled)
}

func TestTemporaryID(t *testing.T) {
	id := NewTemporaryID()
	assert.True(t, IsTemporaryID(id))
	assert.True(t, strings.HasPrefix(id, TempIDPrefix))
	assert.NotEqual(t, id, NewTemporaryID())
	assert.False(t, IsTemporaryID("7b0c1f5e-8d7a-4a53-9f5e-0d7c2e0b1a11"))
}
