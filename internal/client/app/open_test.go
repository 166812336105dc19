package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/clubsync/internal/client/storage"
	"github.com/iudanet/clubsync/internal/config"
	"github.com/iudanet/clubsync/internal/models"
)

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     config.StorageConfig
		wantErr bool
	}{
		{name: "bolt", cfg: config.StorageConfig{Driver: "bolt", Path: filepath.Join(dir, "c.db")}},
		{name: "sqlite", cfg: config.StorageConfig{Driver: "sqlite", Path: filepath.Join(dir, "c.sqlite")}},
		{name: "memory", cfg: config.StorageConfig{Driver: "memory"}},
		{name: "unknown", cfg: config.StorageConfig{Driver: "etcd"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := OpenStore(ctx, tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, store.SetMetadata(ctx, "k", "v"))
			assert.NoError(t, store.Close())
		})
	}
}

func TestOpen_EncryptedStorage(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.Storage = config.StorageConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "c.sqlite"), Encrypt: true}
	cfg.Metrics.Enabled = true

	a, err := Open(ctx, cfg, OpenOptions{Passphrase: "correct horse", Registerer: prometheus.NewRegistry()})
	require.NoError(t, err)
	require.NoError(t, a.StoreClubs(ctx, []models.Club{{ID: "c1", Name: "Sealed"}}))
	require.NoError(t, a.Close())

	_, err = Open(ctx, cfg, OpenOptions{Passphrase: "wrong", Registerer: prometheus.NewRegistry()})
	require.ErrorIs(t, err, storage.ErrWrongPassphrase)

	a, err = Open(ctx, cfg, OpenOptions{Passphrase: "correct horse", Registerer: prometheus.NewRegistry()})
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, a.Close())
	}()
	clubs := a.GetStoredClubs(ctx)
	require.Len(t, clubs, 1)
	assert.Equal(t, "Sealed", clubs[0].Name)
}

func TestOpen_RedisUnavailable(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Redis = config.RedisConfig{Enabled: true, Address: "127.0.0.1:1"}

	a, err := Open(context.Background(), cfg, OpenOptions{})
	require.NoError(t, err, "mirror failure must not prevent startup")
	defer func() {
		assert.NoError(t, a.Close())
	}()

	a.Cache().Set("k", "v")
	got, ok := a.Cache().Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Driver = "etcd"

	_, err := Open(context.Background(), cfg, OpenOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}
