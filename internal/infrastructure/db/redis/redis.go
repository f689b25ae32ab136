// Package redis backs the session key-value port with a Redis instance, for
// deployments where the persisted session must survive process restarts.
// The backend is optional; without a configured address the service runs on
// the in-memory adapter instead.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultPingTimeout = 5 * time.Second
	defaultDialTimeout = 3 * time.Second
)

// Config holds the connection settings for the session store backend.
type Config struct {
	Addr string
	DB   int

	// PingTimeout bounds the startup connectivity check. DialTimeout bounds
	// each connection attempt afterwards. Zero values use the defaults.
	PingTimeout time.Duration
	DialTimeout time.Duration
}

// Connect builds a client for the session store and verifies the instance is
// reachable before the server starts accepting logins. Because Redis here is
// opt-in, an unreachable instance fails startup rather than degrading
// silently to memory.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	})

	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("session store redis ping: %w", err)
	}
	return client, nil
}
