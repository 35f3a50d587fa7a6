// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-tracker-config/internal/keys"
)

// slot addresses one stored value.
type slot struct {
	scope    keys.KeyType
	identity string
	name     string
}

// MemoryStore is an in-process keys.Store. It backs tests and runs as the
// writable layer when no database is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[slot]any
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[slot]any)}
}

// Put stores a raw value of any type, as a file loader would.
func (m *MemoryStore) Put(scope keys.KeyType, identity, name string, raw any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[slot{scope, identity, name}] = raw
}

func (m *MemoryStore) GetRaw(_ context.Context, scope keys.KeyType, identity, name string) (any, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[slot{scope, identity, name}]
	return v, ok, nil
}

func (m *MemoryStore) SetRaw(_ context.Context, scope keys.KeyType, identity, name, value string) error {
	m.Put(scope, identity, name, value)
	return nil
}

func (m *MemoryStore) DeleteRaw(_ context.Context, scope keys.KeyType, identity, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, slot{scope, identity, name})
	return nil
}

// ListRaw returns every value stored for one tier instance.
func (m *MemoryStore) ListRaw(_ context.Context, scope keys.KeyType, identity string) (map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]any)
	for s, v := range m.values {
		if s.scope == scope && s.identity == identity {
			out[s.name] = v
		}
	}
	return out, nil
}
