package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"guestdesk/core/constants"
	"guestdesk/core/logger"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
}

var instance *Cache

func GetCache() *Cache { return instance }

func InitCache(addr, password string, db int) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to redis", "error", err, "addr", addr)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	instance = &Cache{client: client}
	logger.Info("Redis initialized successfully", "addr", addr, "db", db)
	return instance, nil
}

func (c *Cache) Client() *redis.Client { return c.client }

func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

func (c *Cache) Del(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}

func (c *Cache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.client.Expire(ctx, key, ttl).Err()
}

// AddToTokenBlacklist stores a revoked token's JTI until it would have
// expired anyway.
func (c *Cache) AddToTokenBlacklist(ctx context.Context, jti string, ttl time.Duration) error {
	return c.client.Set(ctx, constants.RedisKeyTokenBlacklist+jti, "1", ttl).Err()
}

func (c *Cache) IsTokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.client.Exists(ctx, constants.RedisKeyTokenBlacklist+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SetGuestColumns persists a host's visible-column choice for one event.
// Columns are the one piece of view state that outlives the URL.
func (c *Cache) SetGuestColumns(ctx context.Context, eventID, hostID string, columns []string) error {
	data, err := json.Marshal(columns)
	if err != nil {
		return err
	}
	key := fmt.Sprintf("%s%s:%s", constants.RedisKeyGuestColumns, eventID, hostID)
	return c.client.Set(ctx, key, data, 0).Err()
}

// GetGuestColumns returns the persisted columns, or nil when unset or
// malformed. A bad stored value must never block list hydration.
func (c *Cache) GetGuestColumns(ctx context.Context, eventID, hostID string) []string {
	key := fmt.Sprintf("%s%s:%s", constants.RedisKeyGuestColumns, eventID, hostID)
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var columns []string
	if err := json.Unmarshal([]byte(raw), &columns); err != nil {
		logger.Warn("Cache:GetGuestColumns:MalformedValue", "key", key, "error", err)
		return nil
	}
	return columns
}

// SetAnalyticsSnapshot caches the latest per-event analytics snapshot JSON.
func (c *Cache) SetAnalyticsSnapshot(ctx context.Context, eventID string, snapshot any) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, constants.RedisKeyAnalyticsSnapshot+eventID, data, 0).Err()
}

// BumpAnalyticsVersion increments the per-event analytics version counter
// that clients compare against to decide whether to refetch.
func (c *Cache) BumpAnalyticsVersion(ctx context.Context, eventID string) (int64, error) {
	return c.client.Incr(ctx, constants.RedisKeyAnalyticsVersion+eventID).Result()
}

func (c *Cache) GetAnalyticsVersion(ctx context.Context, eventID string) (int64, error) {
	v, err := c.client.Get(ctx, constants.RedisKeyAnalyticsVersion+eventID).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return v, err
}
