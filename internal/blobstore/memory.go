// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blobstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-sudo-profiles/models"
)

// MemoryStore implements [Store] in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject

	bucket    string
	region    string
	transfers *transfers
}

type memoryObject struct {
	data        []byte
	contentType string
}

// NewMemoryStore returns an empty store reporting bucket and region on the
// references it produces.
func NewMemoryStore(bucket, region string) *MemoryStore {
	return &MemoryStore{
		objects:   make(map[string]memoryObject),
		bucket:    bucket,
		region:    region,
		transfers: newTransfers(),
	}
}

// Bucket implements [Store].
func (m *MemoryStore) Bucket() string { return m.bucket }

// Region implements [Store].
func (m *MemoryStore) Region() string { return m.region }

// Upload implements [Store].
func (m *MemoryStore) Upload(ctx context.Context, data []byte, contentType, key string) error {
	ctx, finish := m.transfers.start(ctx)
	defer finish()
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", models.ErrRequestFailed, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = memoryObject{data: append([]byte(nil), data...), contentType: contentType}
	return nil
}

// Download implements [Store].
func (m *MemoryStore) Download(ctx context.Context, key string) ([]byte, error) {
	ctx, finish := m.transfers.start(ctx)
	defer finish()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrRequestFailed, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("%w: object %q", models.ErrNotFound, key)
	}
	return append([]byte(nil), obj.data...), nil
}

// Delete implements [Store].
func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", models.ErrRequestFailed, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// Reset implements [Store].
func (m *MemoryStore) Reset() {
	m.transfers.cancelAll()
}

// Keys returns the keys of every stored object.
func (m *MemoryStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	return keys
}

// ContentType returns the content type an object was uploaded with.
func (m *MemoryStore) ContentType(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	obj, ok := m.objects[key]
	return obj.contentType, ok
}
