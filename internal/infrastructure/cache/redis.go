package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rangipos/terminal/internal/infrastructure/erpclient"
	"go.uber.org/zap"
)

// RedisSummaryCache implements SummaryCache on Redis so several registers in
// one shop can share the same backend aggregates. Redis failures degrade to
// cache misses; they never fail the caller.
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	logger *zap.Logger
}

// NewRedisSummaryCache creates a Redis-backed cache scoped to one tenant
func NewRedisSummaryCache(client *redis.Client, tenantID string, ttl time.Duration, logger *zap.Logger) *RedisSummaryCache {
	return &RedisSummaryCache{
		client: client,
		ttl:    ttl,
		prefix: "rangipos:" + tenantID + ":",
		logger: logger.Named("cache"),
	}
}

func (c *RedisSummaryCache) getJSON(ctx context.Context, key string, out any) bool {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Warn("corrupt cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *RedisSummaryCache) setJSON(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
}

// GetSummary implements SummaryCache
func (c *RedisSummaryCache) GetSummary(ctx context.Context, date string) (*erpclient.DailySummary, bool) {
	var summary erpclient.DailySummary
	if !c.getJSON(ctx, "summary:"+date, &summary) {
		return nil, false
	}
	return &summary, true
}

// SetSummary implements SummaryCache
func (c *RedisSummaryCache) SetSummary(ctx context.Context, date string, summary *erpclient.DailySummary) {
	c.setJSON(ctx, "summary:"+date, summary)
}

// GetProfiles implements SummaryCache
func (c *RedisSummaryCache) GetProfiles(ctx context.Context) ([]erpclient.POSProfile, bool) {
	var profiles []erpclient.POSProfile
	if !c.getJSON(ctx, profilesKey, &profiles) {
		return nil, false
	}
	return profiles, true
}

// SetProfiles implements SummaryCache
func (c *RedisSummaryCache) SetProfiles(ctx context.Context, profiles []erpclient.POSProfile) {
	c.setJSON(ctx, profilesKey, profiles)
}

// InvalidateSummary implements SummaryCache
func (c *RedisSummaryCache) InvalidateSummary(ctx context.Context, date string) {
	if err := c.client.Del(ctx, c.prefix+"summary:"+date).Err(); err != nil {
		c.logger.Warn("redis del failed", zap.String("date", date), zap.Error(err))
	}
}
