package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
)

// NewRedisStorage - connects to Redis and checks the connection with PING.
func NewRedisStorage(ctx context.Context, conf config.Redis) (*redis.Client, error) {
	addr := conf.GetRedisAddr()
	if addr == "" {
		return nil, ErrAddrNotFound
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	return conn, nil
}
