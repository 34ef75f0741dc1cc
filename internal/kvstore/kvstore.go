// Package kvstore defines the small key/value port the favourites and settings
// stores persist through.
//
// # Implementations
//
//	var _ kvstore.Store = (*database.Database)(nil) // SQLite settings table
//	var _ kvstore.Store = (*kvstore.Memory)(nil)    // tests, ephemeral runs
package kvstore

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when the slot was never written.
var ErrNotFound = errors.New("key not found")

// Store reads and writes opaque values by key. A Set must be visible to the
// next Get of the same key. Deleting a missing key is not an error.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Memory is a process-local Store.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
