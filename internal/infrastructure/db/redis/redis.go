// Package redis wires the Redis client backing the token revocation set.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/fortune-labs/task-tracker/internal/infrastructure/config"
)

// Connect builds the revocation-store client and confirms it is reachable
// before the router starts accepting traffic. The configured timeout also
// caps dials and reads on the returned client, keeping the auth gate's
// revocation check from stalling requests when Redis degrades.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.Timeout,
		ReadTimeout: cfg.Timeout,
	})

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
