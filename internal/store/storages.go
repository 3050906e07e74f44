// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sudo-profiles/internal/config"
	"github.com/MKhiriev/go-sudo-profiles/internal/logger"
)

// ClientStorages groups the client-side persistent stores.
type ClientStorages struct {
	// KeyStore holds the symmetric key material.
	KeyStore KeyStore

	db *DB
}

// NewClientStorages opens the key store described by cfg. An empty DSN
// selects the in-memory store; otherwise the SQLite file is created if
// needed and migrated.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DB.DSN == "" {
		logger.Warn().Str("func", "NewClientStorages").Msg("no key store DSN configured, keys are held in memory")
		return &ClientStorages{KeyStore: NewMemoryKeyStore()}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		KeyStore: NewKeyRepository(db, logger),
		db:       db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
