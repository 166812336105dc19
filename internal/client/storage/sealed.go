package storage

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/clubsync/internal/crypto"
	"github.com/iudanet/clubsync/internal/models"
)

// Служебные ключи metadata, под которыми хранится соль и проверочный блок
const (
	metadataSealSalt  = "sealSalt"
	metadataSealCheck = "sealCheck"
)

var sealCheckPlaintext = []byte("clubsync")

// Sealed encrypts snapshots and queue payloads of the wrapped Store with a
// key derived from a passphrase. Metadata values stay in plain text.
type Sealed struct {
	Store
	key  []byte
	salt []byte
}

var _ Store = (*Sealed)(nil)

// OpenSealed wraps inner. On first use it generates a salt and a verifier;
// later opens return ErrWrongPassphrase if passphrase does not match.
func OpenSealed(ctx context.Context, inner Store, passphrase string) (*Sealed, error) {
	encodedSalt, err := inner.GetMetadata(ctx, metadataSealSalt)
	if errors.Is(err, ErrMetadataNotFound) {
		return initSealed(ctx, inner, passphrase)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read salt: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(encodedSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}
	key, err := crypto.DeriveStorageKey(passphrase, salt)
	if err != nil {
		return nil, err
	}

	encodedCheck, err := inner.GetMetadata(ctx, metadataSealCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to read verifier: %w", err)
	}
	check, err := base64.StdEncoding.DecodeString(encodedCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to decode verifier: %w", err)
	}
	if _, err := crypto.Open(check, key, []byte(metadataSealCheck)); err != nil {
		return nil, ErrWrongPassphrase
	}

	return &Sealed{Store: inner, key: key, salt: salt}, nil
}

func initSealed(ctx context.Context, inner Store, passphrase string) (*Sealed, error) {
	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}
	key, err := crypto.DeriveStorageKey(passphrase, salt)
	if err != nil {
		return nil, err
	}

	s := &Sealed{Store: inner, key: key, salt: salt}
	if err := s.writeHeader(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// writeHeader сохраняет соль и проверочный блок
func (s *Sealed) writeHeader(ctx context.Context) error {
	check, err := crypto.Seal(sealCheckPlaintext, s.key, []byte(metadataSealCheck))
	if err != nil {
		return err
	}
	if err := s.Store.SetMetadata(ctx, metadataSealSalt, base64.StdEncoding.EncodeToString(s.salt)); err != nil {
		return fmt.Errorf("failed to save salt: %w", err)
	}
	if err := s.Store.SetMetadata(ctx, metadataSealCheck, base64.StdEncoding.EncodeToString(check)); err != nil {
		return fmt.Errorf("failed to save verifier: %w", err)
	}
	return nil
}

// SaveSnapshot seals data bound to namespace
func (s *Sealed) SaveSnapshot(ctx context.Context, namespace string, data []byte) error {
	sealed, err := crypto.Seal(data, s.key, []byte(namespace))
	if err != nil {
		return fmt.Errorf("failed to seal %s snapshot: %w", namespace, err)
	}
	return s.Store.SaveSnapshot(ctx, namespace, sealed)
}

// GetSnapshot opens the snapshot of namespace
func (s *Sealed) GetSnapshot(ctx context.Context, namespace string) ([]byte, error) {
	sealed, err := s.Store.GetSnapshot(ctx, namespace)
	if err != nil {
		return nil, err
	}
	data, err := crypto.Open(sealed, s.key, []byte(namespace))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s snapshot: %w", namespace, err)
	}
	return data, nil
}

// AppendQueueItem seals the item payload before appending
func (s *Sealed) AppendQueueItem(ctx context.Context, item *models.SyncQueueItem) error {
	stored, err := s.sealItem(item)
	if err != nil {
		return err
	}
	if err := s.Store.AppendQueueItem(ctx, stored); err != nil {
		return err
	}
	item.Seq = stored.Seq
	return nil
}

// UpdateQueueItem seals the item payload before rewriting
func (s *Sealed) UpdateQueueItem(ctx context.Context, item *models.SyncQueueItem) error {
	stored, err := s.sealItem(item)
	if err != nil {
		return err
	}
	return s.Store.UpdateQueueItem(ctx, stored)
}

// ListQueueItems returns the queue with opened payloads
func (s *Sealed) ListQueueItems(ctx context.Context) ([]*models.SyncQueueItem, error) {
	items, err := s.Store.ListQueueItems(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := s.openItem(item); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// Clear wipes the wrapped store and rewrites the key header so the
// passphrase keeps working afterwards.
func (s *Sealed) Clear(ctx context.Context) error {
	if err := s.Store.Clear(ctx); err != nil {
		return err
	}
	return s.writeHeader(ctx)
}

func (s *Sealed) sealItem(item *models.SyncQueueItem) (*models.SyncQueueItem, error) {
	stored := item.Clone()
	if len(item.Data) == 0 {
		return stored, nil
	}
	sealed, err := crypto.Seal(item.Data, s.key, []byte(item.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to seal queue item %s: %w", item.ID, err)
	}
	// []byte кодируется в JSON как base64-строка
	data, err := json.Marshal(sealed)
	if err != nil {
		return nil, err
	}
	stored.Data = data
	return stored, nil
}

func (s *Sealed) openItem(item *models.SyncQueueItem) error {
	if len(item.Data) == 0 {
		return nil
	}
	var sealed []byte
	if err := json.Unmarshal(item.Data, &sealed); err != nil {
		return fmt.Errorf("failed to decode queue item %s: %w", item.ID, err)
	}
	data, err := crypto.Open(sealed, s.key, []byte(item.ID))
	if err != nil {
		return fmt.Errorf("failed to open queue item %s: %w", item.ID, err)
	}
	item.Data = data
	return nil
}
