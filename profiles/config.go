// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package profiles

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-sudo-profiles/internal/adapter"
	"github.com/MKhiriev/go-sudo-profiles/internal/blobstore"
	"github.com/MKhiriev/go-sudo-profiles/internal/config"
	"github.com/MKhiriev/go-sudo-profiles/internal/crypto"
	"github.com/MKhiriev/go-sudo-profiles/internal/identity"
	"github.com/MKhiriev/go-sudo-profiles/internal/logger"
	"github.com/MKhiriev/go-sudo-profiles/internal/metrics"
	"github.com/MKhiriev/go-sudo-profiles/internal/store"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

// NewFromConfig resolves cfg into concrete collaborators and builds a
// Client. Metrics are registered with reg; a nil reg disables them. The
// returned close function releases the key store.
//
// Without a blob store bucket, blobs are kept in memory.
func NewFromConfig(ctx context.Context, cfg *config.ClientConfig, reg prometheus.Registerer, log *logger.Logger) (*Client, func() error, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("%w: config is nil", models.ErrInvalidConfig)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, nil, fmt.Errorf("open key store: %w", err)
	}

	client, err := newFromConfig(ctx, cfg, storages, reg, log)
	if err != nil {
		_ = storages.Close()
		return nil, nil, err
	}

	return client, storages.Close, nil
}

func newFromConfig(ctx context.Context, cfg *config.ClientConfig, storages *store.ClientStorages, reg prometheus.Registerer, log *logger.Logger) (*Client, error) {
	var cryptoOpts []crypto.Option
	if cfg.Crypto.Algorithm != "" {
		cryptoOpts = append(cryptoOpts, crypto.WithDefaultAlgorithm(cfg.Crypto.Algorithm))
	}
	provider, err := crypto.NewProvider(storages.KeyStore, log, cryptoOpts...)
	if err != nil {
		return nil, fmt.Errorf("crypto provider: %w", err)
	}

	var blobs blobstore.Store
	if cfg.BlobStore.Bucket == "" {
		log.Warn().Str("func", "NewFromConfig").Msg("no blob store bucket configured, blobs are held in memory")
		blobs = blobstore.NewMemoryStore("", cfg.BlobStore.Region)
	} else {
		blobs, err = blobstore.NewS3Store(ctx, cfg.BlobStore, log)
		if err != nil {
			return nil, fmt.Errorf("blob store: %w", err)
		}
	}

	session, err := identity.LoadSession(cfg.Identity.TokenFile, cfg.Identity.IdentityID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	serverAdapter, err := adapter.NewGraphQLServerAdapter(cfg.Adapter, session, log)
	if err != nil {
		return nil, fmt.Errorf("server adapter: %w", err)
	}

	var m *metrics.Metrics
	if reg != nil {
		if m, err = metrics.New(reg); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}

	return New(Dependencies{
		Adapter:       serverAdapter,
		Crypto:        provider,
		BlobStore:     blobs,
		Identity:      session,
		CacheDir:      cfg.Storage.CacheDir,
		CompressBlobs: cfg.Storage.Compress,
		PageSize:      cfg.Adapter.PageSize,
		Metrics:       m,
		Logger:        log,
	})
}
