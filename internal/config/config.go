// Package config loads the client configuration from a YAML file, the
// CLUBSYNC_* environment and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment overrides, e.g.
// CLUBSYNC_SERVER_URL.
const EnvPrefix = "CLUBSYNC"

// Config represents the runtime configuration of the client.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Log        LogConfig        `mapstructure:"log"`
	Sync       SyncConfig       `mapstructure:"sync"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Offline    OfflineConfig    `mapstructure:"offline"`
	Optimistic OptimisticConfig `mapstructure:"optimistic"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// ServerConfig describes the backend API.
type ServerConfig struct {
	URL        string        `mapstructure:"url" validate:"required,url"`
	Timeout    time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxRetries uint64        `mapstructure:"max_retries"`
}

// StorageConfig selects the durable store.
type StorageConfig struct {
	Driver  string `mapstructure:"driver" validate:"oneof=bolt sqlite memory"`
	Path    string `mapstructure:"path" validate:"required_unless=Driver memory"`
	Encrypt bool   `mapstructure:"encrypt"`
}

// CacheConfig configures the in-process cache.
type CacheConfig struct {
	SweepSchedule string        `mapstructure:"sweep_schedule" validate:"required"`
	Redis         RedisConfig   `mapstructure:"redis"`
	DefaultTTL    time.Duration `mapstructure:"default_ttl" validate:"gte=0"`
}

// RedisConfig holds the optional cache mirror connection.
type RedisConfig struct {
	Address  string        `mapstructure:"address" validate:"required_if=Enabled true"`
	Password string        `mapstructure:"password"`
	Prefix   string        `mapstructure:"prefix"`
	DB       int           `mapstructure:"db" validate:"gte=0"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Enabled  bool          `mapstructure:"enabled"`
}

// OfflineConfig configures the offline manager.
type OfflineConfig struct {
	MaxAge        time.Duration `mapstructure:"max_age" validate:"gt=0"`
	MaxAttempts   int           `mapstructure:"max_attempts" validate:"gte=1"`
	ProbeInterval time.Duration `mapstructure:"probe_interval" validate:"gt=0"`
	AutoSync      bool          `mapstructure:"auto_sync"`
}

// SyncConfig configures the background sync job.
type SyncConfig struct {
	Schedule string `mapstructure:"schedule" validate:"required"`
}

// OptimisticConfig configures optimistic mutations.
type OptimisticConfig struct {
	CommitTimeout time.Duration `mapstructure:"commit_timeout" validate:"gt=0"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// MetricsConfig toggles Prometheus collectors.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads the configuration. file may be empty, in which case
// clubsync.yaml is looked up in the working directory and the extra paths.
// A missing config file is not an error.
func Load(file string, paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("clubsync")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		for _, path := range paths {
			v.AddConfigPath(path)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.url", "http://localhost:8080")
	v.SetDefault("server.timeout", "30s")
	v.SetDefault("server.max_retries", 3)

	v.SetDefault("storage.driver", "bolt")
	v.SetDefault("storage.path", "clubsync.db")
	v.SetDefault("storage.encrypt", false)

	v.SetDefault("cache.default_ttl", "5m")
	v.SetDefault("cache.sweep_schedule", "@every 1m")
	v.SetDefault("cache.redis.enabled", false)
	v.SetDefault("cache.redis.address", "127.0.0.1:6379")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("cache.redis.prefix", "clubsync:cache:")
	v.SetDefault("cache.redis.timeout", "2s")

	v.SetDefault("offline.max_age", "24h")
	v.SetDefault("offline.max_attempts", 5)
	v.SetDefault("offline.probe_interval", "30s")
	v.SetDefault("offline.auto_sync", true)

	v.SetDefault("sync.schedule", "@every 5m")

	v.SetDefault("optimistic.commit_timeout", "15s")

	v.SetDefault("log.level", "info")
	v.SetDefault("metrics.enabled", false)
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}
