package database

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"task-board-api/internal/config"
)

var redisClient *redis.Client

// InitRedis connects the token cache. Redis is optional: when it is not
// configured the auth middleware falls back to database lookups.
func InitRedis(cfg config.RedisConfig, log *zap.Logger) error {
	if cfg.URL == "" {
		log.Info("Redis not configured, token cache disabled")
		return nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return err
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	opts.DB = cfg.DB

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return err
	}

	redisClient = client
	log.Info("Redis connection established successfully",
		zap.String("addr", opts.Addr),
		zap.Int("db", opts.DB),
	)
	return nil
}

// GetRedis returns the token cache client, or nil when Redis is disabled
func GetRedis() *redis.Client {
	return redisClient
}
