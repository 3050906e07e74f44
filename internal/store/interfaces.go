// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-sudo-profiles/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/key_store_mock.go -package=mock

// KeyStore persists symmetric key material on the client device.
type KeyStore interface {
	// SaveKey inserts key or overwrites the key with the same id. When
	// key.Current is set, every other key loses its current flag.
	SaveKey(ctx context.Context, key models.SymmetricKey) error

	// GetKey returns the key with the given id or [ErrKeyNotFound].
	GetKey(ctx context.Context, keyID string) (models.SymmetricKey, error)

	// CurrentKey returns the current key or [ErrNoCurrentKey].
	CurrentKey(ctx context.Context) (models.SymmetricKey, error)

	// ListKeys returns every stored key ordered by creation time.
	ListKeys(ctx context.Context) ([]models.SymmetricKey, error)

	// DeleteAll destroys every stored key.
	DeleteAll(ctx context.Context) error
}
