package offline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/models"
)

// QueueRequest describes a mutation to replay later.
// Data is stored as is when it is json.RawMessage and marshalled otherwise.
type QueueRequest struct {
	Data     any
	Type     models.MutationType
	Resource string
}

// entityRef is the payload of delete mutations.
type entityRef struct {
	ID string `json:"id"`
}

// AddToSyncQueue appends a mutation to the tail of the queue. It never
// touches the network.
func (m *Manager) AddToSyncQueue(ctx context.Context, req QueueRequest) error {
	if !req.Type.Valid() || req.Resource == "" {
		return fmt.Errorf("%w: type=%q resource=%q", ErrInvalidQueueRequest, req.Type, req.Resource)
	}

	data, ok := req.Data.(json.RawMessage)
	if !ok {
		var err error
		data, err = json.Marshal(req.Data)
		if err != nil {
			return fmt.Errorf("failed to marshal queue payload: %w", err)
		}
	}

	item := &models.SyncQueueItem{
		ID:        uuid.New().String(),
		Type:      req.Type,
		Resource:  req.Resource,
		Data:      data,
		CreatedAt: m.now().UTC(),
	}
	if err := m.store.AppendQueueItem(ctx, item); err != nil {
		return fmt.Errorf("failed to append to sync queue: %w", err)
	}

	m.log.Debug("mutation queued",
		zap.String("id", item.ID),
		zap.String("type", string(item.Type)),
		zap.String("resource", item.Resource))
	m.reportQueueLength(ctx)
	return nil
}

// QueueClubAction queues a club mutation.
func (m *Manager) QueueClubAction(ctx context.Context, typ models.MutationType, club models.Club) error {
	var data any = club
	if typ == models.MutationDelete {
		data = entityRef{ID: club.ID}
	}
	return m.AddToSyncQueue(ctx, QueueRequest{Type: typ, Resource: models.ResourceClubs, Data: data})
}

// QueueFavoriteAction queues adding or removing a favorite.
func (m *Manager) QueueFavoriteAction(ctx context.Context, action models.FavoriteAction, clubID string) error {
	var typ models.MutationType
	switch action {
	case models.FavoriteAdd:
		typ = models.MutationCreate
	case models.FavoriteRemove:
		typ = models.MutationDelete
	default:
		return fmt.Errorf("%w: favorite action %q", ErrInvalidQueueRequest, action)
	}
	return m.AddToSyncQueue(ctx, QueueRequest{
		Type:     typ,
		Resource: models.ResourceFavorites,
		Data:     models.FavoritePayload{ClubID: clubID},
	})
}

// QueueListAction queues a custom list mutation.
func (m *Manager) QueueListAction(ctx context.Context, typ models.MutationType, list models.CustomList) error {
	var data any = list
	if typ == models.MutationDelete {
		data = entityRef{ID: list.ID}
	}
	return m.AddToSyncQueue(ctx, QueueRequest{Type: typ, Resource: models.ResourceCustomLists, Data: data})
}

// GetSyncQueueLength returns the number of queued mutations, quarantined
// ones included. Storage failures are logged and reported as zero.
func (m *Manager) GetSyncQueueLength(ctx context.Context) int {
	n, err := m.store.QueueLength(ctx)
	if err != nil {
		m.log.Warn("failed to read sync queue length", zap.Error(err))
		return 0
	}
	return n
}

// QueueItems returns all queued mutations in replay order.
func (m *Manager) QueueItems(ctx context.Context) ([]*models.SyncQueueItem, error) {
	items, err := m.store.ListQueueItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync queue: %w", err)
	}
	return items, nil
}

// QuarantinedItems returns the items excluded from replay after too many failures.
func (m *Manager) QuarantinedItems(ctx context.Context) ([]*models.SyncQueueItem, error) {
	items, err := m.QueueItems(ctx)
	if err != nil {
		return nil, err
	}
	var result []*models.SyncQueueItem
	for _, item := range items {
		if item.Quarantined {
			result = append(result, item)
		}
	}
	return result, nil
}

// RetryQuarantined re-arms quarantined items for the next sync pass and
// returns how many were re-armed.
func (m *Manager) RetryQuarantined(ctx context.Context) (int, error) {
	items, err := m.QuarantinedItems(ctx)
	if err != nil {
		return 0, err
	}
	for i, item := range items {
		item.Quarantined = false
		item.Attempts = 0
		if err := m.store.UpdateQueueItem(ctx, item); err != nil {
			return i, fmt.Errorf("failed to re-arm queue item %s: %w", item.ID, err)
		}
	}
	if len(items) > 0 {
		m.log.Info("quarantined items re-armed", zap.Int("count", len(items)))
	}
	return len(items), nil
}

func (m *Manager) reportQueueLength(ctx context.Context) {
	if m.metrics == nil {
		return
	}
	m.metrics.QueueLength(m.GetSyncQueueLength(ctx))
}
