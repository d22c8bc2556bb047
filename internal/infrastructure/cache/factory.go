package cache

import (
	"github.com/redis/go-redis/v9"
	"github.com/rangipos/terminal/internal/infrastructure/config"
	"go.uber.org/zap"
)

// New builds the SummaryCache selected by configuration
func New(cfg *config.Config, logger *zap.Logger) SummaryCache {
	switch cfg.Cache.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return NewRedisSummaryCache(client, cfg.ERP.TenantID, cfg.Cache.TTL, logger)
	default:
		return NewMemorySummaryCache(cfg.Cache.TTL)
	}
}
