package optimistic

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/client/cache"
	"github.com/iudanet/clubsync/internal/logger"
	"github.com/iudanet/clubsync/internal/metrics"
	"github.com/iudanet/clubsync/internal/models"
)

// ItemKey is the cache key of a single entity view.
func ItemKey(resource, id string) string {
	return resource + ":item:" + id
}

// ListKey is the cache key of the collection view.
func ListKey(resource string) string {
	return resource + ":list"
}

// ListTag groups the collection views of resource; Commit invalidates it.
func ListTag(resource string) string {
	return resource + ":lists"
}

// Config holds the optional collaborators of a Coordinator.
type Config struct {
	Cache         *cache.Store
	Logger        *zap.Logger
	Metrics       *metrics.Metrics
	Now           func() time.Time
	OnRefresh     func(resource string) // сигнал для повторной загрузки коллекции
	ItemTTL       time.Duration
	CommitTimeout time.Duration
}

// Coordinator drives optimistic mutations of one resource.
type Coordinator[T Entity, D any] struct {
	items    *Collection[T]
	adapter  Adapter[T, D]
	cache    *cache.Store
	log      *zap.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
	onReload func(resource string)
	locks    KeyedMutex
	resource string
	itemTTL  time.Duration
	timeout  time.Duration
	pending  atomic.Int64
}

// New creates a Coordinator for resource over items.
func New[T Entity, D any](resource string, items *Collection[T], adapter Adapter[T, D], cfg Config) *Coordinator[T, D] {
	c := &Coordinator[T, D]{
		items:    items,
		adapter:  adapter,
		cache:    cfg.Cache,
		log:      logger.WithModule(cfg.Logger, "optimistic").With(zap.String("resource", resource)),
		metrics:  cfg.Metrics,
		now:      cfg.Now,
		onReload: cfg.OnRefresh,
		resource: resource,
		itemTTL:  cfg.ItemTTL,
		timeout:  cfg.CommitTimeout,
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// Items returns the read-model the coordinator mutates.
func (c *Coordinator[T, D]) Items() *Collection[T] {
	return c.items
}

// Pending returns the number of unsettled updates.
func (c *Coordinator[T, D]) Pending() int {
	return int(c.pending.Load())
}

// BeginCreate inserts an entity built from draft under a temporary id at
// the head of the collection.
func (c *Coordinator[T, D]) BeginCreate(ctx context.Context, draft D) (*Update[T], error) {
	tempID := NewTemporaryID()
	release, err := c.locks.Lock(ctx, tempID)
	if err != nil {
		return nil, err
	}

	entity := c.adapter.Build(tempID, draft, c.now())
	c.items.Prepend(entity)
	c.putItem(entity)
	c.syncListView()

	return c.track(&Update[T]{
		Type:    models.MutationCreate,
		ID:      tempID,
		Applied: entity,
		release: release,
		Compensation: Compensation[T]{
			Kind:     models.MutationCreate,
			EntityID: tempID,
		},
	}), nil
}

// BeginUpdate applies changes as a shallow merge onto entity id. It waits
// for any unsettled update of the same id first.
func (c *Coordinator[T, D]) BeginUpdate(ctx context.Context, id string, changes map[string]any) (*Update[T], error) {
	release, err := c.locks.Lock(ctx, id)
	if err != nil {
		return nil, err
	}

	current, ok := c.items.Get(id)
	if !ok {
		release()
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, c.resource, id)
	}

	merged, err := merge(current, changes)
	if err != nil {
		release()
		return nil, err
	}
	// id не меняется даже если его передали в changes
	merged = c.adapter.Touch(c.adapter.WithID(merged, id), c.now())

	c.items.Replace(id, merged)
	c.putItem(merged)
	c.syncListView()

	preImage := current
	return c.track(&Update[T]{
		Type:     models.MutationUpdate,
		ID:       id,
		PreImage: &preImage,
		Applied:  merged,
		release:  release,
		Compensation: Compensation[T]{
			Kind:     models.MutationUpdate,
			EntityID: id,
			PreImage: &preImage,
		},
	}), nil
}

// BeginDelete removes entity id from the read-model.
func (c *Coordinator[T, D]) BeginDelete(ctx context.Context, id string) (*Update[T], error) {
	release, err := c.locks.Lock(ctx, id)
	if err != nil {
		return nil, err
	}

	removed, ok := c.items.Remove(id)
	if !ok {
		release()
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, c.resource, id)
	}
	c.deleteItem(id)
	c.syncListView()

	preImage := removed
	return c.track(&Update[T]{
		Type:     models.MutationDelete,
		ID:       id,
		PreImage: &preImage,
		Applied:  removed,
		release:  release,
		Compensation: Compensation[T]{
			Kind:     models.MutationDelete,
			EntityID: id,
			PreImage: &preImage,
		},
	}), nil
}

// Rollback undoes u by interpreting its Compensation and settles it.
// If the entity is not where the compensation expects it, the state is
// repaired best-effort and an error wrapping ErrRollbackDivergence is returned.
func (c *Coordinator[T, D]) Rollback(u *Update[T]) error {
	if !u.settle() {
		return ErrAlreadySettled
	}
	defer c.pending.Add(-1)

	err := c.compensate(u.Compensation)
	c.syncListView()
	c.metrics.Optimistic(string(u.Type), "rolled_back")

	if err != nil {
		c.metrics.RollbackDivergence()
		c.log.Error("rollback diverged",
			zap.String("type", string(u.Type)),
			zap.String("id", u.ID),
			zap.Error(err))
	}
	return err
}

func (c *Coordinator[T, D]) compensate(comp Compensation[T]) error {
	switch comp.Kind {
	case models.MutationCreate:
		c.deleteItem(comp.EntityID)
		if _, ok := c.items.Remove(comp.EntityID); !ok {
			return fmt.Errorf("%w: temporary %s already gone", ErrRollbackDivergence, comp.EntityID)
		}
		return nil

	case models.MutationUpdate:
		if comp.PreImage == nil {
			return fmt.Errorf("%w: no pre-image for %s", ErrRollbackDivergence, comp.EntityID)
		}
		c.putItem(*comp.PreImage)
		if !c.items.Replace(comp.EntityID, *comp.PreImage) {
			// сущность удалили параллельно: возвращаем pre-image в конец
			c.items.Append(*comp.PreImage)
			return fmt.Errorf("%w: %s was removed before rollback", ErrRollbackDivergence, comp.EntityID)
		}
		return nil

	case models.MutationDelete:
		if comp.PreImage == nil {
			return fmt.Errorf("%w: no pre-image for %s", ErrRollbackDivergence, comp.EntityID)
		}
		c.putItem(*comp.PreImage)
		if c.items.Replace(comp.EntityID, *comp.PreImage) {
			return fmt.Errorf("%w: %s reappeared before rollback", ErrRollbackDivergence, comp.EntityID)
		}
		c.items.Append(*comp.PreImage)
		return nil
	}
	return fmt.Errorf("%w: unknown compensation %q", ErrRollbackDivergence, comp.Kind)
}

// Commit runs op and settles u. On success a create is re-keyed from its
// temporary id to the server entity and the collection views are
// invalidated; update and delete keep the optimistic state. On failure u is
// rolled back and op's error is returned, joined with any rollback
// divergence.
func (c *Coordinator[T, D]) Commit(ctx context.Context, u *Update[T], op ServerOp[T]) (T, error) {
	var zero T
	if u.Settled() {
		return zero, ErrAlreadySettled
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	result, err := op(ctx)
	if err != nil {
		c.log.Warn("server rejected optimistic update",
			zap.String("type", string(u.Type)),
			zap.String("id", u.ID),
			zap.Error(err))
		if rbErr := c.Rollback(u); rbErr != nil && !errors.Is(rbErr, ErrAlreadySettled) {
			return zero, multierr.Combine(err, rbErr)
		}
		return zero, err
	}

	if !u.settle() {
		return zero, ErrAlreadySettled
	}
	defer c.pending.Add(-1)

	switch u.Type {
	case models.MutationCreate:
		confirmed := result
		if confirmed.EntityID() == "" {
			// сервер не вернул id: оставляем оптимистичную версию
			confirmed = u.Applied
		}
		c.deleteItem(u.ID)
		c.items.Swap(u.ID, confirmed)
		c.putItem(confirmed)
		result = confirmed
	case models.MutationUpdate:
		if result.EntityID() == "" {
			result = u.Applied
		}
	case models.MutationDelete:
		if result.EntityID() == "" && u.PreImage != nil {
			result = *u.PreImage
		}
	}

	c.refresh()
	c.metrics.Optimistic(string(u.Type), "committed")
	return result, nil
}

// Apply is the hook-style name of Commit, kept for callers that drive
// Begin/Apply pairs the way applyOptimisticUpdate hooks do. It behaves
// exactly like Commit.
func (c *Coordinator[T, D]) Apply(ctx context.Context, u *Update[T], op ServerOp[T]) (T, error) {
	return c.Commit(ctx, u, op)
}

// Create is BeginCreate followed by Commit.
func (c *Coordinator[T, D]) Create(ctx context.Context, draft D, op ServerOp[T]) (T, error) {
	u, err := c.BeginCreate(ctx, draft)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.Commit(ctx, u, op)
}

// Update is BeginUpdate followed by Commit.
func (c *Coordinator[T, D]) Update(ctx context.Context, id string, changes map[string]any, op ServerOp[T]) (T, error) {
	u, err := c.BeginUpdate(ctx, id, changes)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.Commit(ctx, u, op)
}

// Delete is BeginDelete followed by Commit.
func (c *Coordinator[T, D]) Delete(ctx context.Context, id string, op ServerOp[T]) (T, error) {
	u, err := c.BeginDelete(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.Commit(ctx, u, op)
}

// Settle marks u as confirmed without a server call and keeps the
// optimistic state. Used when the mutation is handed to the offline queue.
func (c *Coordinator[T, D]) Settle(u *Update[T]) error {
	if !u.settle() {
		return ErrAlreadySettled
	}
	c.pending.Add(-1)
	c.metrics.Optimistic(string(u.Type), "queued")
	return nil
}

func (c *Coordinator[T, D]) track(u *Update[T]) *Update[T] {
	c.pending.Add(1)
	return u
}

// refresh invalidates the collection views and signals a reload.
func (c *Coordinator[T, D]) refresh() {
	if c.cache != nil {
		c.cache.InvalidateByTags(ListTag(c.resource))
	}
	if c.onReload != nil {
		c.onReload(c.resource)
	}
}

func (c *Coordinator[T, D]) putItem(entity T) {
	if c.cache == nil {
		return
	}
	c.cache.Set(ItemKey(c.resource, entity.EntityID()), entity,
		cache.WithTTL(c.itemTTL),
		cache.WithTags(c.resource, ItemKey(c.resource, entity.EntityID())))
}

func (c *Coordinator[T, D]) deleteItem(id string) {
	if c.cache == nil {
		return
	}
	c.cache.Delete(ItemKey(c.resource, id))
}

// syncListView rewrites the cached collection view if one is cached, so it
// shows the same state as the read-model.
func (c *Coordinator[T, D]) syncListView() {
	if c.cache == nil {
		return
	}
	if _, ok := c.cache.Get(ListKey(c.resource)); !ok {
		return
	}
	c.cache.Set(ListKey(c.resource), c.items.Items(),
		cache.WithTTL(c.itemTTL),
		cache.WithTags(c.resource, ListTag(c.resource)))
}
