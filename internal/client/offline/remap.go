package offline

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/client/optimistic"
	"github.com/iudanet/clubsync/internal/client/storage"
	"github.com/iudanet/clubsync/internal/models"
)

// idFields are the payload keys that may carry an entity id assigned
// locally before the create reached the server.
var idFields = []string{"id", "club_id"}

const idListField = "club_ids"

// idMap maps locally generated ids to the ids the server assigned, so later
// queued mutations of the same entity hit the right record. Mappings are
// persisted as metadata and outlive the pass that recorded them: a pass
// aborted after a create still lets the next one remap its followers.
type idMap struct {
	store storage.MetadataStorage
	log   *zap.Logger
	ids   map[string]string
}

func newIDMap(store storage.MetadataStorage, log *zap.Logger) *idMap {
	return &idMap{store: store, log: log, ids: make(map[string]string)}
}

func (m *idMap) record(ctx context.Context, local, server string) {
	if local == "" || server == "" || local == server {
		return
	}
	m.ids[local] = server
	if err := m.store.SetMetadata(ctx, models.MetadataIDMapPrefix+local, server); err != nil {
		// в рамках прохода соответствие все равно известно из памяти
		m.log.Warn("failed to persist id mapping",
			zap.String("local", local),
			zap.String("server", server),
			zap.Error(err))
	}
}

// resolve returns the server id recorded for a temporary id.
func (m *idMap) resolve(ctx context.Context, id string) (string, bool) {
	if server, ok := m.ids[id]; ok {
		return server, true
	}
	if !optimistic.IsTemporaryID(id) {
		return "", false
	}

	server, err := m.store.GetMetadata(ctx, models.MetadataIDMapPrefix+id)
	if err != nil {
		if !errors.Is(err, storage.ErrMetadataNotFound) {
			m.log.Warn("failed to read id mapping", zap.String("local", id), zap.Error(err))
		}
		return "", false
	}
	m.ids[id] = server
	return server, true
}

// rewrite substitutes known local ids in a JSON object payload.
func (m *idMap) rewrite(ctx context.Context, data json.RawMessage) (json.RawMessage, bool) {
	if len(data) == 0 {
		return data, false
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return data, false
	}

	changed := false
	for _, field := range idFields {
		if id, ok := payload[field].(string); ok {
			if server, found := m.resolve(ctx, id); found {
				payload[field] = server
				changed = true
			}
		}
	}
	if list, ok := payload[idListField].([]any); ok {
		for i, v := range list {
			if id, ok := v.(string); ok {
				if server, found := m.resolve(ctx, id); found {
					list[i] = server
					changed = true
				}
			}
		}
	}

	if !changed {
		return data, false
	}
	out, err := json.Marshal(payload)
	if err != nil {
		return data, false
	}
	return out, true
}
