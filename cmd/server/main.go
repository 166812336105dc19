package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/config"
	"github.com/iudanet/clubsync/internal/logger"
	"github.com/iudanet/clubsync/internal/server"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// envPrefix задает переменные вида CLUBSYNC_SERVER_ADDR
const envPrefix = config.EnvPrefix + "_SERVER"

// runFunc запускает сервер с готовой конфигурацией
type runFunc func(ctx context.Context, cfg server.Config, logLevel string) error

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(runServer).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand(run runFunc) *cobra.Command {
	v := viper.New()
	defaults := server.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "clubsync-server",
		Short:         "Reference backend for the clubsync client",
		Version:       fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.Config{
				Addr:            v.GetString("addr"),
				DBPath:          v.GetString("db"),
				Version:         Version,
				RateLimit:       v.GetInt("rate-limit"),
				RateWindow:      v.GetDuration("rate-window"),
				ShutdownTimeout: v.GetDuration("shutdown-timeout"),
				Metrics:         v.GetBool("metrics"),
			}
			if err := validator.New().Struct(cfg); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return run(cmd.Context(), cfg, v.GetString("log-level"))
		},
	}

	flags := cmd.Flags()
	flags.String("addr", defaults.Addr, "listen address")
	flags.String("db", defaults.DBPath, "SQLite database path")
	flags.Int("rate-limit", defaults.RateLimit, "requests per client per rate window")
	flags.Duration("rate-window", defaults.RateWindow, "rate limit window")
	flags.Duration("shutdown-timeout", defaults.ShutdownTimeout, "graceful shutdown timeout")
	flags.Bool("metrics", defaults.Metrics, "expose Prometheus metrics on /metrics")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	// флаги можно переопределить через окружение
	_ = v.BindPFlags(flags)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func runServer(ctx context.Context, cfg server.Config, logLevel string) error {
	log, err := logger.New(logLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	srv, err := server.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := srv.Close(); err != nil {
			log.Error("failed to close server", zap.Error(err))
		}
	}()

	log.Info("starting clubsync server",
		zap.String("version", Version),
		zap.String("addr", cfg.Addr),
		zap.String("db", cfg.DBPath))
	return srv.Run(ctx)
}
