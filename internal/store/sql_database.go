// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-sudo-profiles/internal/logger"
	"github.com/MKhiriev/go-sudo-profiles/migrations"
)

// DB is a database handle together with the logger of the store that
// opened it.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded key store schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
