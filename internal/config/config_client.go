// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ClientAdapter holds the GraphQL transport settings.
type ClientAdapter struct {
	// GraphQLURL is the HTTP endpoint of the GraphQL service.
	GraphQLURL string
	// RealtimeURL is the graphql-ws subscription endpoint.
	RealtimeURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// PageSize is the list page size.
	PageSize int
}

// ClientDB contains local key store connection settings.
type ClientDB struct {
	// DSN is the SQLite file path; empty keeps keys in memory.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// CacheDir is the root of the on-disk caches.
	CacheDir string
	// Compress enables zstd compression of cached blobs.
	Compress bool
	// DB holds local key store settings.
	DB ClientDB
}

// ClientBlobStore holds the S3 object store settings.
type ClientBlobStore struct {
	Bucket          string
	Region          string
	Endpoint        string
	PathStyle       bool
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// ClientIdentity locates the signed-in session.
type ClientIdentity struct {
	TokenFile  string
	IdentityID string
}

// ClientCrypto configures the cryptography provider.
type ClientCrypto struct {
	Algorithm string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the remote list is refreshed.
	// Zero disables the refresh worker.
	RefreshInterval time.Duration
}

// ClientLog holds logger settings.
type ClientLog struct {
	File string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter   ClientAdapter
	Storage   ClientStorage
	BlobStore ClientBlobStore
	Identity  ClientIdentity
	Crypto    ClientCrypto
	Workers   ClientWorkers
	Log       ClientLog
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg onto the client view. It does not validate.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	realtimeURL := cfg.Adapter.RealtimeURL
	if realtimeURL == "" {
		realtimeURL = deriveRealtimeURL(cfg.Adapter.GraphQLURL)
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			GraphQLURL:     cfg.Adapter.GraphQLURL,
			RealtimeURL:    realtimeURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			PageSize:       cfg.Adapter.PageSize,
		},
		Storage: ClientStorage{
			CacheDir: cfg.Storage.CacheDir,
			Compress: cfg.Storage.Compress,
			DB:       ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		BlobStore: ClientBlobStore{
			Bucket:          cfg.BlobStore.Bucket,
			Region:          cfg.BlobStore.Region,
			Endpoint:        cfg.BlobStore.Endpoint,
			PathStyle:       cfg.BlobStore.PathStyle,
			AccessKeyID:     cfg.BlobStore.AccessKeyID,
			SecretAccessKey: cfg.BlobStore.SecretAccessKey,
			SessionToken:    cfg.BlobStore.SessionToken,
		},
		Identity: ClientIdentity{
			TokenFile:  cfg.Identity.TokenFile,
			IdentityID: cfg.Identity.IdentityID,
		},
		Crypto:  ClientCrypto{Algorithm: cfg.Crypto.Algorithm},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		Log:     ClientLog{File: cfg.Log.File},
	}
}

// deriveRealtimeURL maps http(s)://host/graphql to ws(s)://host/graphql.
func deriveRealtimeURL(graphQLURL string) string {
	u, err := url.Parse(graphQLURL)
	if err != nil || u.Host == "" {
		return ""
	}

	switch strings.ToLower(u.Scheme) {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	default:
		return ""
	}
	return u.String()
}
