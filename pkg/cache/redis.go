package cache

import (
	"context"
	"time"

	"smart-highway/pkg/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Cache is a thin TTL cache over redis for read-heavy search responses.
// A nil *Cache is a valid no-op cache, so callers never branch on config.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// InitCache connects to redis when an address is configured. Returns nil
// (cache disabled) when the addr is empty or the server is unreachable;
// search must keep working without it.
func InitCache(config utils.RedisConfig, ttl time.Duration, log *zap.Logger) *Cache {
	if config.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: config.Addr,
		DB:   0,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis unreachable, search cache disabled",
			zap.String("addr", config.Addr),
			zap.Error(err),
		)
		client.Close()
		return nil
	}

	log.Info("Search cache enabled",
		zap.String("addr", config.Addr),
		zap.Duration("ttl", ttl),
	)

	return &Cache{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("component", "cache")),
	}
}

// Get returns the cached payload and whether it was present. Errors are
// logged and reported as misses.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	val, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("Cache get failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	return val, true
}

// Set stores the payload under key with the configured TTL, best effort.
func (c *Cache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil {
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("Cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) Close() {
	if c == nil {
		return
	}
	c.client.Close()
}
