// Package cli implements the clubsync command line on top of the client
// application facade.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/client/app"
	"github.com/iudanet/clubsync/internal/client/iocli"
	"github.com/iudanet/clubsync/internal/config"
	"github.com/iudanet/clubsync/internal/logger"
)

// PassphraseEnv is the environment variable holding the storage passphrase.
const PassphraseEnv = config.EnvPrefix + "_PASSPHRASE"

// OpenFunc builds the application for a loaded configuration.
type OpenFunc func(ctx context.Context, cfg *config.Config, opts app.OpenOptions) (Facade, error)

// globalFlags are the persistent flags of the root command.
type globalFlags struct {
	configFile     string
	serverURL      string
	dbPath         string
	passphraseFile string
	offline        bool
	verbose        bool
}

// Cli wires the cobra command tree to the application.
type Cli struct {
	io     iocli.IO
	app    Facade
	open   OpenFunc
	getenv func(string) string
	log    *zap.Logger
	flags  globalFlags
}

// New creates a Cli writing to io. A nil open uses app.Open.
func New(io iocli.IO, open OpenFunc) *Cli {
	if open == nil {
		open = openApp
	}
	return &Cli{
		io:     io,
		open:   open,
		getenv: os.Getenv,
		log:    zap.NewNop(),
	}
}

func openApp(ctx context.Context, cfg *config.Config, opts app.OpenOptions) (Facade, error) {
	return app.Open(ctx, cfg, opts)
}

// Execute runs the command line with args and releases the application
// afterwards.
func (c *Cli) Execute(ctx context.Context, version string, args []string) error {
	root := c.RootCommand(version)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if c.app != nil {
		err = multierr.Append(err, c.app.Close())
		c.app = nil
	}
	_ = c.log.Sync()
	return err
}

// setup loads the configuration, applies the flag overrides and opens the
// application. It runs before every command except help and version.
func (c *Cli) setup(cmd *cobra.Command, _ []string) error {
	if c.app != nil {
		return nil
	}
	ctx := cmd.Context()

	cfg, err := config.Load(c.flags.configFile)
	if err != nil {
		return err
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	c.log = log

	opts := app.OpenOptions{Logger: log}
	if cfg.Storage.Encrypt {
		if opts.Passphrase, err = c.readPassphrase(); err != nil {
			return fmt.Errorf("failed to get passphrase: %w", err)
		}
	}

	a, err := c.open(ctx, cfg, opts)
	if err != nil {
		return fmt.Errorf("failed to open client: %w", err)
	}
	c.app = a

	if c.flags.offline {
		a.SetOnline(false)
	} else {
		a.CheckConnection(ctx)
	}
	return nil
}

func (c *Cli) applyOverrides(cfg *config.Config) {
	if c.flags.serverURL != "" {
		cfg.Server.URL = c.flags.serverURL
	}
	if c.flags.dbPath != "" {
		cfg.Storage.Path = c.flags.dbPath
	}
	if c.flags.verbose {
		cfg.Log.Level = "debug"
	}
}

// readPassphrase reads the storage passphrase from various sources with priority:
// 1. Environment variable CLUBSYNC_PASSPHRASE
// 2. File given by --passphrase-file
// 3. Interactive prompt (fallback)
func (c *Cli) readPassphrase() (string, error) {
	if env := c.getenv(PassphraseEnv); env != "" {
		return env, nil
	}

	if c.flags.passphraseFile != "" {
		content, err := os.ReadFile(c.flags.passphraseFile)
		if err != nil {
			return "", fmt.Errorf("failed to read passphrase file: %w", err)
		}
		// Убираем trailing newline/whitespace
		passphrase := strings.TrimSpace(string(content))
		if passphrase == "" {
			return "", errors.New("passphrase file is empty")
		}
		return passphrase, nil
	}

	passphrase, err := c.io.ReadPassword("Storage passphrase: ")
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase from stdin: %w", err)
	}
	if passphrase == "" {
		return "", errors.New("passphrase cannot be empty")
	}
	return passphrase, nil
}
