// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import "errors"

var (
	// ErrNotFound is returned when the requested key has no entry.
	ErrNotFound = errors.New("cache entry not found")

	// ErrCorrupt is returned when a stored payload or version tag cannot be
	// decoded. Callers can tell a corrupt cache apart from an absent one.
	ErrCorrupt = errors.New("cache entry is corrupt")

	// ErrEncode is returned when a value cannot be encoded for storage.
	ErrEncode = errors.New("cache entry cannot be encoded")

	// ErrInvalidKey is returned for an empty key.
	ErrInvalidKey = errors.New("invalid cache key")
)
