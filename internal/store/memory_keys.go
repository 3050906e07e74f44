// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/MKhiriev/go-sudo-profiles/models"
)

// memoryKeyStore keeps keys in process memory. Used when no DSN is
// configured and in tests.
type memoryKeyStore struct {
	mu   sync.RWMutex
	keys map[string]models.SymmetricKey
}

// NewMemoryKeyStore returns an empty in-memory [KeyStore].
func NewMemoryKeyStore() KeyStore {
	return &memoryKeyStore{keys: make(map[string]models.SymmetricKey)}
}

func (m *memoryKeyStore) SaveKey(_ context.Context, key models.SymmetricKey) error {
	if key.ID == "" || len(key.Material) == 0 {
		return ErrInvalidKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if key.Current {
		for id, k := range m.keys {
			k.Current = false
			m.keys[id] = k
		}
	}
	if existing, ok := m.keys[key.ID]; ok {
		key.CreatedAt = existing.CreatedAt
	}
	key.Material = append([]byte(nil), key.Material...)
	m.keys[key.ID] = key

	return nil
}

func (m *memoryKeyStore) GetKey(_ context.Context, keyID string) (models.SymmetricKey, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	k, ok := m.keys[keyID]
	if !ok {
		return models.SymmetricKey{}, ErrKeyNotFound
	}
	return cloneKey(k), nil
}

func (m *memoryKeyStore) CurrentKey(_ context.Context) (models.SymmetricKey, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, k := range m.keys {
		if k.Current {
			return cloneKey(k), nil
		}
	}
	return models.SymmetricKey{}, ErrNoCurrentKey
}

func (m *memoryKeyStore) ListKeys(_ context.Context) ([]models.SymmetricKey, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]models.SymmetricKey, 0, len(m.keys))
	for _, k := range m.keys {
		keys = append(keys, cloneKey(k))
	}
	sort.Slice(keys, func(i, j int) bool {
		if !keys[i].CreatedAt.Equal(keys[j].CreatedAt) {
			return keys[i].CreatedAt.Before(keys[j].CreatedAt)
		}
		return keys[i].ID < keys[j].ID
	})
	return keys, nil
}

func (m *memoryKeyStore) DeleteAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.keys = make(map[string]models.SymmetricKey)
	return nil
}

func cloneKey(k models.SymmetricKey) models.SymmetricKey {
	k.Material = append([]byte(nil), k.Material...)
	return k
}
