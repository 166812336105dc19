package optimistic

import (
	"slices"
	"sync"
)

// Collection is the ordered in-memory read-model of one resource.
// Every method runs under a single lock, so readers never observe a
// half-applied optimistic step.
type Collection[T Entity] struct {
	items []T
	mu    sync.RWMutex
}

// NewCollection creates a collection holding a copy of items.
func NewCollection[T Entity](items []T) *Collection[T] {
	return &Collection[T]{items: slices.Clone(items)}
}

// Reset replaces the contents wholesale.
func (c *Collection[T]) Reset(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.Clone(items)
}

// Items returns a copy of the contents in order.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Len returns the number of entities.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get returns the entity with id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Prepend inserts entity at the head.
func (c *Collection[T]) Prepend(entity T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.Insert(c.items, 0, entity)
}

// Append inserts entity at the tail.
func (c *Collection[T]) Append(entity T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, entity)
}

// Replace overwrites the entity with id in place. Reports whether it was found.
func (c *Collection[T]) Replace(id string, entity T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items[i] = entity
	return true
}

// Remove deletes the entity with id and returns it.
func (c *Collection[T]) Remove(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	removed := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)
	return removed, true
}

// Swap puts entity where oldID was and drops any other copy of entity's id,
// so exactly one entry with the new id remains. If oldID is gone the entity
// replaces its existing copy or is prepended. Reports whether oldID was found.
func (c *Collection[T]) Swap(oldID string, entity T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	newID := entity.EntityID()
	if newID != oldID {
		// запись с серверным id могла прийти раньше (например, при обновлении списка)
		c.items = slices.DeleteFunc(c.items, func(item T) bool {
			return item.EntityID() == newID
		})
	}

	if i := c.indexOf(oldID); i >= 0 {
		c.items[i] = entity
		return true
	}
	c.items = slices.Insert(c.items, 0, entity)
	return false
}

// indexOf returns the position of id or -1. Caller holds mu.
func (c *Collection[T]) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(item T) bool {
		return item.EntityID() == id
	})
}
