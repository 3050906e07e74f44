// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sudo-profiles/internal/logger"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

// keyRepository is the SQLite-backed implementation of [KeyStore].
type keyRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewKeyRepository constructs a [KeyStore] backed by db. The schema must
// already be migrated.
func NewKeyRepository(db *DB, logger *logger.Logger) KeyStore {
	logger.Debug().Msg("creating key repository")
	return &keyRepository{
		db:     db,
		logger: logger,
	}
}

// SaveKey implements [KeyStore]. The upsert and the reset of the other
// current flags run in one transaction.
func (r *keyRepository) SaveKey(ctx context.Context, key models.SymmetricKey) error {
	if key.ID == "" || len(key.Material) == 0 {
		return ErrInvalidKey
	}

	upsertQuery, upsertArgs, err := buildUpsertKeyQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).Str("func", "*keyRepository.SaveKey").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err = tx.ExecContext(ctx, upsertQuery, upsertArgs...); err != nil {
		r.logger.Err(err).Str("func", "*keyRepository.SaveKey").Str("key_id", key.ID).Msg("error saving key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if key.Current {
		clearQuery, clearArgs, err := buildClearCurrentQuery(key.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
			r.logger.Err(err).Str("func", "*keyRepository.SaveKey").Str("key_id", key.ID).Msg("error resetting current key")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		r.logger.Err(err).Str("func", "*keyRepository.SaveKey").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetKey implements [KeyStore].
func (r *keyRepository) GetKey(ctx context.Context, keyID string) (models.SymmetricKey, error) {
	query, args, err := buildSelectKeyQuery(keyID)
	if err != nil {
		return models.SymmetricKey{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	key, err := r.queryOne(ctx, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SymmetricKey{}, ErrKeyNotFound
	}
	return key, err
}

// CurrentKey implements [KeyStore].
func (r *keyRepository) CurrentKey(ctx context.Context) (models.SymmetricKey, error) {
	query, args, err := buildSelectCurrentKeyQuery()
	if err != nil {
		return models.SymmetricKey{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	key, err := r.queryOne(ctx, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SymmetricKey{}, ErrNoCurrentKey
	}
	return key, err
}

// ListKeys implements [KeyStore].
func (r *keyRepository) ListKeys(ctx context.Context) ([]models.SymmetricKey, error) {
	query, args, err := buildSelectAllKeysQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*keyRepository.ListKeys").Msg("error listing keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var keys []models.SymmetricKey
	for rows.Next() {
		var k models.SymmetricKey
		if err = rows.Scan(&k.ID, &k.Material, &k.Current, &k.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys = append(keys, k)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}

// DeleteAll implements [KeyStore].
func (r *keyRepository) DeleteAll(ctx context.Context) error {
	query, args, err := buildDeleteAllKeysQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*keyRepository.DeleteAll").Msg("error deleting keys")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *keyRepository) queryOne(ctx context.Context, query string, args ...any) (models.SymmetricKey, error) {
	var k models.SymmetricKey
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&k.ID, &k.Material, &k.Current, &k.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SymmetricKey{}, err
		}
		r.logger.Err(err).Str("func", "*keyRepository.queryOne").Msg("error querying key")
		return models.SymmetricKey{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return k, nil
}
