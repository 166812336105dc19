package redismirror

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "clubsync:cache:"
	scanBatch     = 100
)

// Mirror implements cache.Mirror on top of Redis.
// Values are stored as plain strings under prefixed keys; tags are kept in
// sets so that other processes can inspect the tag index.
type Mirror struct {
	client redis.UniversalClient
	prefix string
}

// Options configures a Redis connection for the mirror.
type Options struct {
	Address  string
	Password string
	Prefix   string
	DB       int
}

// New wraps an existing client. An empty prefix uses "clubsync:cache:".
func New(client redis.UniversalClient, prefix string) *Mirror {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Mirror{client: client, prefix: prefix}
}

// Dial creates a client from opts and verifies the connection with PING.
func Dial(ctx context.Context, opts Options) (*Mirror, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return New(client, opts.Prefix), nil
}

// Close closes the underlying client.
func (m *Mirror) Close() error {
	return m.client.Close()
}

// Put stores value with ttl and indexes the key under its tags.
func (m *Mirror) Put(ctx context.Context, key string, value []byte, ttl time.Duration, tags []string) error {
	if ttl < 0 {
		ttl = 0
	}
	pipe := m.client.TxPipeline()
	pipe.Set(ctx, m.dataKey(key), value, ttl)
	for _, tag := range tags {
		pipe.SAdd(ctx, m.tagKey(tag), key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis put %q: %w", key, err)
	}
	return nil
}

// Remove deletes keys from the mirror. Tag sets are cleaned up lazily by Flush.
func (m *Mirror) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	redisKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		redisKeys = append(redisKeys, m.dataKey(key))
	}
	if err := m.client.Del(ctx, redisKeys...).Err(); err != nil {
		return fmt.Errorf("redis remove: %w", err)
	}
	return nil
}

// Flush removes every key under the mirror prefix.
func (m *Mirror) Flush(ctx context.Context) error {
	iter := m.client.Scan(ctx, 0, m.prefix+"*", scanBatch).Iterator()

	batch := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			if err := m.client.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("redis flush: %w", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan: %w", err)
	}
	if len(batch) > 0 {
		if err := m.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("redis flush: %w", err)
		}
	}
	return nil
}

func (m *Mirror) dataKey(key string) string {
	return m.prefix + "data:" + key
}

func (m *Mirror) tagKey(tag string) string {
	return m.prefix + "tag:" + tag
}
