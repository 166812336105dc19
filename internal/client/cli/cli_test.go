package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/clubsync/internal/client/app"
	"github.com/iudanet/clubsync/internal/config"
)

// openRecorder подменяет app.Open и запоминает аргументы
type openRecorder struct {
	cfg    *config.Config
	facade *FacadeMock
	err    error
	opts   app.OpenOptions
	calls  int
}

func (r *openRecorder) open(ctx context.Context, cfg *config.Config, opts app.OpenOptions) (Facade, error) {
	r.calls++
	r.cfg = cfg
	r.opts = opts
	if r.err != nil {
		return nil, r.err
	}
	return r.facade, nil
}

func newFacade() *FacadeMock {
	return &FacadeMock{
		CheckConnectionFunc: func(ctx context.Context) bool { return true },
		SetOnlineFunc:       func(online bool) {},
		CloseFunc:           func() error { return nil },
		StatusFunc:          func(ctx context.Context) app.Status { return app.Status{Online: true} },
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clubsync.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCli_Execute_OpensAndCloses(t *testing.T) {
	t.Chdir(t.TempDir())
	rec := &openRecorder{facade: newFacade()}
	mockIO, out := newTestIO()
	c := New(mockIO, rec.open)

	err := c.Execute(context.Background(), "test", []string{"status", "--server", "http://example.com:9000", "--db", "local.db"})
	require.NoError(t, err)

	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, "http://example.com:9000", rec.cfg.Server.URL)
	assert.Equal(t, "local.db", rec.cfg.Storage.Path)
	assert.Empty(t, rec.opts.Passphrase)
	assert.NotNil(t, rec.opts.Logger)

	assert.Len(t, rec.facade.CheckConnectionCalls(), 1)
	assert.Empty(t, rec.facade.SetOnlineCalls())
	assert.Len(t, rec.facade.CloseCalls(), 1)
	assert.Contains(t, out.String(), "Connection: online")
}

func TestCli_Execute_OfflineFlag(t *testing.T) {
	t.Chdir(t.TempDir())
	rec := &openRecorder{facade: newFacade()}
	mockIO, _ := newTestIO()
	c := New(mockIO, rec.open)

	require.NoError(t, c.Execute(context.Background(), "test", []string{"--offline", "status"}))

	assert.Empty(t, rec.facade.CheckConnectionCalls())
	require.Len(t, rec.facade.SetOnlineCalls(), 1)
	assert.False(t, rec.facade.SetOnlineCalls()[0].Online)
}

func TestCli_Execute_VerboseAndConfigFile(t *testing.T) {
	path := writeConfig(t, "server:\n  url: http://cfg.local:8080\nlog:\n  level: warn\n")
	rec := &openRecorder{facade: newFacade()}
	mockIO, _ := newTestIO()
	c := New(mockIO, rec.open)

	require.NoError(t, c.Execute(context.Background(), "test", []string{"--config", path, "-v", "status"}))

	assert.Equal(t, "http://cfg.local:8080", rec.cfg.Server.URL)
	assert.Equal(t, "debug", rec.cfg.Log.Level)
}

func TestCli_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		args    []string
		openErr error
		wantErr string
	}{
		{
			name:    "open fails",
			args:    []string{"status"},
			openErr: errors.New("database locked"),
			wantErr: "failed to open client: database locked",
		},
		{
			name:    "invalid server override",
			args:    []string{"--server", "not a url", "status"},
			wantErr: "config: invalid",
		},
		{
			name:    "missing config file",
			args:    []string{"--config", "/nonexistent/clubsync.yaml", "status"},
			wantErr: "config",
		},
		{
			name:    "unknown command",
			args:    []string{"frobnicate"},
			wantErr: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			rec := &openRecorder{facade: newFacade(), err: tt.openErr}
			mockIO, _ := newTestIO()
			c := New(mockIO, rec.open)

			err := c.Execute(context.Background(), "test", tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, rec.facade.CloseCalls())
		})
	}
}

func TestCli_Execute_VersionDoesNotOpen(t *testing.T) {
	rec := &openRecorder{facade: newFacade()}
	mockIO, out := newTestIO()
	c := New(mockIO, rec.open)

	require.NoError(t, c.Execute(context.Background(), "1.2.3", []string{"--version"}))
	assert.Zero(t, rec.calls)
	assert.Contains(t, out.String(), "1.2.3")
}

func TestCli_Execute_EncryptedStorage(t *testing.T) {
	path := writeConfig(t, "storage:\n  driver: sqlite\n  path: local.db\n  encrypt: true\n")
	rec := &openRecorder{facade: newFacade()}
	mockIO, _ := newTestIO()
	c := New(mockIO, rec.open)
	c.getenv = func(key string) string {
		if key == PassphraseEnv {
			return "from-env"
		}
		return ""
	}

	require.NoError(t, c.Execute(context.Background(), "test", []string{"--config", path, "status"}))
	assert.Equal(t, "from-env", rec.opts.Passphrase)
}

func TestCli_ReadPassphrase(t *testing.T) {
	dir := t.TempDir()
	goodFile := filepath.Join(dir, "pass")
	require.NoError(t, os.WriteFile(goodFile, []byte("from-file\n"), 0o600))
	emptyFile := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(emptyFile, []byte("  \n"), 0o600))

	tests := []struct {
		name    string
		env     string
		file    string
		want    string
		wantErr string
		input   []string
	}{
		{name: "env has priority", env: "from-env", file: goodFile, want: "from-env"},
		{name: "file", file: goodFile, want: "from-file"},
		{name: "empty file", file: emptyFile, wantErr: "passphrase file is empty"},
		{name: "missing file", file: filepath.Join(dir, "absent"), wantErr: "failed to read passphrase file"},
		{name: "prompt", input: []string{"typed"}, want: "typed"},
		{name: "empty prompt", input: []string{""}, wantErr: "passphrase cannot be empty"},
		{name: "prompt eof", wantErr: "failed to read passphrase from stdin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIO, _ := newTestIO(tt.input...)
			c := New(mockIO, nil)
			c.getenv = func(string) string { return tt.env }
			c.flags.passphraseFile = tt.file

			got, err := c.readPassphrase()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
