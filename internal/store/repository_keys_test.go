// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sudo-profiles/internal/config"
	"github.com/MKhiriev/go-sudo-profiles/internal/logger"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

func newSQLiteStore(t *testing.T) KeyStore {
	t.Helper()
	s, err := NewClientStorages(context.Background(), config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "keys", "keys.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s.KeyStore
}

func newMockedRepo(t *testing.T) (*keyRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return &keyRepository{db: &DB{DB: db, logger: l}, logger: l}, mock
}

func testKey(id string, current bool, created time.Time) models.SymmetricKey {
	return models.SymmetricKey{ID: id, Material: []byte("material-" + id), Current: current, CreatedAt: created}
}

// keyStoreContract runs the behaviour shared by every KeyStore.
func keyStoreContract(t *testing.T, newStore func(t *testing.T) KeyStore) {
	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("empty store", func(t *testing.T) {
		s := newStore(t)

		_, err := s.CurrentKey(ctx)
		assert.ErrorIs(t, err, ErrNoCurrentKey)

		_, err = s.GetKey(ctx, "missing")
		assert.ErrorIs(t, err, ErrKeyNotFound)

		keys, err := s.ListKeys(ctx)
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("save and get", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.SaveKey(ctx, testKey("k1", true, t0)))

		got, err := s.GetKey(ctx, "k1")
		require.NoError(t, err)
		assert.Equal(t, "k1", got.ID)
		assert.Equal(t, []byte("material-k1"), got.Material)
		assert.True(t, got.Current)
		assert.True(t, t0.Equal(got.CreatedAt))

		cur, err := s.CurrentKey(ctx)
		require.NoError(t, err)
		assert.Equal(t, "k1", cur.ID)
	})

	t.Run("new current key demotes the old one", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.SaveKey(ctx, testKey("k1", true, t0)))
		require.NoError(t, s.SaveKey(ctx, testKey("k2", true, t0.Add(time.Hour))))

		cur, err := s.CurrentKey(ctx)
		require.NoError(t, err)
		assert.Equal(t, "k2", cur.ID)

		old, err := s.GetKey(ctx, "k1")
		require.NoError(t, err)
		assert.False(t, old.Current)

		keys, err := s.ListKeys(ctx)
		require.NoError(t, err)
		require.Len(t, keys, 2)
		assert.Equal(t, "k1", keys[0].ID)
		assert.Equal(t, "k2", keys[1].ID)
	})

	t.Run("non current key keeps current", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.SaveKey(ctx, testKey("k1", true, t0)))
		require.NoError(t, s.SaveKey(ctx, testKey("k0", false, t0.Add(-time.Hour))))

		cur, err := s.CurrentKey(ctx)
		require.NoError(t, err)
		assert.Equal(t, "k1", cur.ID)
	})

	t.Run("invalid key", func(t *testing.T) {
		s := newStore(t)
		assert.ErrorIs(t, s.SaveKey(ctx, models.SymmetricKey{ID: "x"}), ErrInvalidKey)
		assert.ErrorIs(t, s.SaveKey(ctx, models.SymmetricKey{Material: []byte("m")}), ErrInvalidKey)
	})

	t.Run("delete all", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.SaveKey(ctx, testKey("k1", true, t0)))
		require.NoError(t, s.SaveKey(ctx, testKey("k2", false, t0)))

		require.NoError(t, s.DeleteAll(ctx))

		keys, err := s.ListKeys(ctx)
		require.NoError(t, err)
		assert.Empty(t, keys)
		_, err = s.CurrentKey(ctx)
		assert.ErrorIs(t, err, ErrNoCurrentKey)
	})
}

func TestSQLiteKeyStore(t *testing.T) {
	keyStoreContract(t, newSQLiteStore)
}

func TestMemoryKeyStore(t *testing.T) {
	keyStoreContract(t, func(*testing.T) KeyStore { return NewMemoryKeyStore() })
}

func TestMemoryKeyStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryKeyStore()
	require.NoError(t, s.SaveKey(ctx, testKey("k1", true, time.Now())))

	got, err := s.GetKey(ctx, "k1")
	require.NoError(t, err)
	got.Material[0] = 'X'

	again, err := s.GetKey(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, []byte("material-k1"), again.Material)
}

func TestNewClientStorages_MemoryWithoutDSN(t *testing.T) {
	s, err := NewClientStorages(context.Background(), config.ClientStorage{}, logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, s.Close())
	assert.NotNil(t, s.KeyStore)
}

func TestKeyRepository_SaveKey_ExecError(t *testing.T) {
	repo, mock := newMockedRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO symmetric_keys").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.SaveKey(context.Background(), testKey("k1", true, time.Now()))
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyRepository_SaveKey_BeginError(t *testing.T) {
	repo, mock := newMockedRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	err := repo.SaveKey(context.Background(), testKey("k1", false, time.Now()))
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestKeyRepository_SaveKey_CommitError(t *testing.T) {
	repo, mock := newMockedRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO symmetric_keys").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE symmetric_keys SET is_current").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit().WillReturnError(errors.New("io"))

	err := repo.SaveKey(context.Background(), testKey("k1", true, time.Now()))
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestKeyRepository_GetKey_QueryError(t *testing.T) {
	repo, mock := newMockedRepo(t)

	mock.ExpectQuery("SELECT key_id, material, is_current, created_at FROM symmetric_keys").
		WithArgs("k1").
		WillReturnError(errors.New("boom"))

	_, err := repo.GetKey(context.Background(), "k1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}

func TestKeyRepository_ListKeys_ScanError(t *testing.T) {
	repo, mock := newMockedRepo(t)

	rows := sqlmock.NewRows([]string{"key_id", "material", "is_current", "created_at"}).
		AddRow("k1", []byte("m"), true, "not-a-time")
	mock.ExpectQuery("SELECT (.+) FROM symmetric_keys ORDER BY").WillReturnRows(rows)

	_, err := repo.ListKeys(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestKeyRepository_DeleteAll_Error(t *testing.T) {
	repo, mock := newMockedRepo(t)

	mock.ExpectExec("DELETE FROM symmetric_keys").WillReturnError(errors.New("boom"))

	err := repo.DeleteAll(context.Background())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
