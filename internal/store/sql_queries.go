// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sudo-profiles/models"
)

const keysTable = "symmetric_keys"

var keyColumns = []string{"key_id", "material", "is_current", "created_at"}

// sqlite uses ? placeholders
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildUpsertKeyQuery(key models.SymmetricKey) (string, []any, error) {
	return qb.Insert(keysTable).
		Columns(keyColumns...).
		Values(key.ID, key.Material, key.Current, key.CreatedAt.UTC()).
		Suffix("ON CONFLICT(key_id) DO UPDATE SET material = excluded.material, is_current = excluded.is_current").
		ToSql()
}

func buildClearCurrentQuery(exceptKeyID string) (string, []any, error) {
	return qb.Update(keysTable).
		Set("is_current", false).
		Where(sq.NotEq{"key_id": exceptKeyID}).
		ToSql()
}

func buildSelectKeyQuery(keyID string) (string, []any, error) {
	return qb.Select(keyColumns...).
		From(keysTable).
		Where(sq.Eq{"key_id": keyID}).
		ToSql()
}

func buildSelectCurrentKeyQuery() (string, []any, error) {
	return qb.Select(keyColumns...).
		From(keysTable).
		Where(sq.Eq{"is_current": true}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
}

func buildSelectAllKeysQuery() (string, []any, error) {
	return qb.Select(keyColumns...).
		From(keysTable).
		OrderBy("created_at", "key_id").
		ToSql()
}

func buildDeleteAllKeysQuery() (string, []any, error) {
	return qb.Delete(keysTable).ToSql()
}
