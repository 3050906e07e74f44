// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the remote GraphQL service endpoints.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local cache and key store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// BlobStore holds the S3 object store settings.
	BlobStore BlobStore `envPrefix:"BLOB_"`

	// Identity locates the signed-in session.
	Identity Identity `envPrefix:"IDENTITY_"`

	// Crypto selects the algorithm used for newly encrypted payloads.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logger output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter configures the GraphQL transport.
type Adapter struct {
	// GraphQLURL is the HTTP endpoint queries and mutations are posted to.
	// Env: ADAPTER_GRAPHQL_URL
	GraphQLURL string `env:"GRAPHQL_URL"`

	// RealtimeURL is the graphql-ws endpoint used for push subscriptions.
	// When empty it is derived from GraphQLURL by switching the scheme to
	// ws or wss.
	// Env: ADAPTER_REALTIME_URL
	RealtimeURL string `env:"REALTIME_URL"`

	// RequestTimeout bounds a single query or mutation (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PageSize is the number of records requested per list page.
	// Env: ADAPTER_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// CacheDir is the directory holding the profile list and blob caches.
	// Env: STORAGE_CACHE_DIR
	CacheDir string `env:"CACHE_DIR"`

	// Compress enables zstd compression of cached blobs.
	// Env: STORAGE_COMPRESS
	Compress bool `env:"COMPRESS"`

	// DB holds the key store database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local key store.
type DB struct {
	// DSN is the SQLite file path. An empty DSN keeps keys in memory.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// BlobStore configures the S3 compatible object store.
type BlobStore struct {
	// Env: BLOB_BUCKET
	Bucket string `env:"BUCKET"`
	// Env: BLOB_REGION
	Region string `env:"REGION"`
	// Endpoint overrides the AWS endpoint, e.g. for MinIO.
	// Env: BLOB_ENDPOINT
	Endpoint string `env:"ENDPOINT"`
	// PathStyle selects path style addressing.
	// Env: BLOB_PATH_STYLE
	PathStyle bool `env:"PATH_STYLE"`
	// Env: BLOB_ACCESS_KEY_ID
	AccessKeyID string `env:"ACCESS_KEY_ID"`
	// Env: BLOB_SECRET_ACCESS_KEY
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	// Env: BLOB_SESSION_TOKEN
	SessionToken string `env:"SESSION_TOKEN"`
}

// Identity locates the session of the signed-in user.
type Identity struct {
	// TokenFile is a JSON file holding the id token, access token and
	// identity id.
	// Env: IDENTITY_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`

	// IdentityID overrides the identity id stored in TokenFile.
	// Env: IDENTITY_ID
	IdentityID string `env:"ID"`
}

// Crypto configures the cryptography provider.
type Crypto struct {
	// Algorithm is the identifier new payloads are encrypted with.
	// Env: CRYPTO_ALGORITHM
	Algorithm string `env:"ALGORITHM"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is the period of the background remote list refresh.
	// Zero disables the worker.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Log holds logger output settings.
type Log struct {
	// File is the path log entries are appended to. Empty selects a "logs"
	// file next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Defaults applied to fields no other source set.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultPageSize       = 100
	DefaultBlobRegion     = "us-east-1"
	DefaultAlgorithm      = "AES/GCM/NoPadding"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			PageSize:       DefaultPageSize,
		},
		BlobStore: BlobStore{Region: DefaultBlobRegion},
		Crypto:    Crypto{Algorithm: DefaultAlgorithm},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. args are the command-line arguments without the program name.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
