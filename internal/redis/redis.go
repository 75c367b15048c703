package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"traffix/internal/config"

	"github.com/redis/go-redis/v9"
)

// Redis holds the client shared by the live report cache and the
// notification queue.
type Redis struct {
	Client *redis.Client
}

func NewRedis(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		// BRPop holds a connection for its whole poll window.
		PoolSize: 20,
	})

	r := &Redis{Client: rdb}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := r.Ping(pingCtx); err != nil {
		logger.Error("Failed to ping Redis", slog.String("error", err.Error()), slog.String("addr", cfg.Redis.Addr))
		if cerr := rdb.Close(); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	logger.Info("Connected to Redis successfully", slog.String("addr", cfg.Redis.Addr), slog.Int("db", cfg.Redis.DB))

	return r, nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.Client.Close()
}
