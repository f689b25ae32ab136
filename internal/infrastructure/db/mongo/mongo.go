// Package mongo holds the MongoDB adapters for the credential and audit
// ports, used when the fixture account table is swapped for a durable store.
// Like Redis, the backend is optional; without a URI the service runs on the
// seeded in-memory table.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	appName = "energy-trading-api"

	defaultConnectTimeout = 10 * time.Second
)

// Config holds the connection settings for the credential store backend.
type Config struct {
	URI      string
	Database string

	// ConnectTimeout bounds connection establishment and the startup ping.
	// Zero uses the default.
	ConnectTimeout time.Duration
}

// Connect dials the credential store and verifies it is reachable before the
// server starts accepting signups. Returns the client for lifecycle
// management and the selected database for the repositories.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("credential store mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("credential store mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
