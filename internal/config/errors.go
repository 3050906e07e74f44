// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, a missing GraphQL URL or a non-positive page size).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty cache directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidBlobStoreConfigs indicates invalid object store settings.
	ErrInvalidBlobStoreConfigs = errors.New("invalid blob store configuration")
	// ErrInvalidIdentityConfigs indicates a missing session token file.
	ErrInvalidIdentityConfigs = errors.New("invalid identity configuration")
	// ErrInvalidCryptoConfigs indicates a missing default algorithm.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
