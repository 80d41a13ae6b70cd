// Package storage provides the key/value store that persists cached search
// results between sessions, and the selection of its backend.
package storage

import (
	"errors"
	"sync"
)

// ErrEmptyKey is returned when a write is attempted without a key.
var ErrEmptyKey = errors.New("storage: key cannot be empty")

// Store is a synchronous string key/value store.
//
// Get reports absence with ok == false. Backends absorb read failures and
// report them as absence, so callers never see a read error. Set returns an
// error when the value could not be persisted.
type Store interface {
	Get(key string) (value string, ok bool)
	Set(key, value string) error
	Close() error
}

// MemoryStore keeps values in process memory. It backs ephemeral sessions
// and is the fallback when no persistent backend can be opened.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Close() error { return nil }
