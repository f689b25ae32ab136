package ports

import "context"

// SessionStorage is the key-value capability backing session persistence.
// Get returns (nil, nil) when the key does not exist so callers can treat
// a missing session uniformly with a malformed one.
type SessionStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
