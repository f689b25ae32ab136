// Package memory provides in-process adapters for the storage ports. They
// back the default all-in-memory deployment and the test suites.
package memory

import (
	"context"
	"sync"
)

// SessionStorage is a map-backed key-value store.
type SessionStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewSessionStorage() *SessionStorage {
	return &SessionStorage{data: make(map[string][]byte)}
}

// Get returns (nil, nil) when the key does not exist.
func (s *SessionStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *SessionStorage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *SessionStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
