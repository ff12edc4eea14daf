package project

import (
	"sync"
)

// MemoryStore is an in-memory Store. Err, when set, is returned by every call
// to simulate an unreadable config.
type MemoryStore struct {
	mu     sync.Mutex
	blocks []string
	Err    error
}

// NewMemoryStore creates a store holding blocks.
func NewMemoryStore(blocks ...string) *MemoryStore {
	return &MemoryStore{blocks: append([]string(nil), blocks...)}
}

// AddBlock implements Store.
func (m *MemoryStore) AddBlock(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return false, m.Err
	}
	for _, b := range m.blocks {
		if b == id {
			return false, nil
		}
	}
	m.blocks = append(m.blocks, id)
	return true, nil
}

// RemoveBlock implements Store.
func (m *MemoryStore) RemoveBlock(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return false, m.Err
	}
	kept := m.blocks[:0]
	for _, b := range m.blocks {
		if b != id {
			kept = append(kept, b)
		}
	}
	changed := len(kept) != len(m.blocks)
	m.blocks = kept
	return changed, nil
}

// Blocks returns a copy of the registered block ids.
func (m *MemoryStore) Blocks() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.blocks...)
}
