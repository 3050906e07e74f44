// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package profiles is the public entry point of the SDK. A [Client] manages
// the Sudo profiles of the signed-in identity: it creates, updates and
// deletes them on the remote service, keeps an encrypted-at-rest view of
// them in two disk caches and fans push notifications out to subscribers.
//
// The remote service is the source of truth. Cache writes that follow a
// successful remote call are best effort: failures are logged and counted,
// never returned.
package profiles

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-sudo-profiles/internal/adapter"
	"github.com/MKhiriev/go-sudo-profiles/internal/blobstore"
	"github.com/MKhiriev/go-sudo-profiles/internal/cache"
	"github.com/MKhiriev/go-sudo-profiles/internal/crypto"
	"github.com/MKhiriev/go-sudo-profiles/internal/identity"
	"github.com/MKhiriev/go-sudo-profiles/internal/logger"
	"github.com/MKhiriev/go-sudo-profiles/internal/metrics"
	"github.com/MKhiriev/go-sudo-profiles/internal/repository"
	"github.com/MKhiriev/go-sudo-profiles/internal/subscriber"
	"github.com/MKhiriev/go-sudo-profiles/internal/transform"
	"github.com/MKhiriev/go-sudo-profiles/internal/utils"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

// Subscriber receives change notifications. See [Client.Subscribe].
type Subscriber = subscriber.Subscriber

const (
	sudosCacheDir = "sudos"
	blobsCacheDir = "blobs"

	// sudoListKey is the single slot holding the cached profile list.
	sudoListKey = "sudos"
)

// Dependencies are the collaborators of a [Client].
type Dependencies struct {
	Adapter   adapter.ServerAdapter
	Crypto    crypto.Provider
	BlobStore blobstore.Store
	Identity  identity.Provider

	// CacheDir holds the profile list and blob caches. Without it cache
	// only reads fail with [models.ErrInvalidConfig].
	CacheDir string

	// CompressBlobs stores cached blobs zstd compressed.
	CompressBlobs bool

	// PageSize is the page size of remote listings.
	PageSize int

	// Metrics may be nil.
	Metrics *metrics.Metrics

	Logger *logger.Logger
}

// Client is safe for concurrent use.
type Client struct {
	repo      repository.Repository
	transform *transform.Transformer
	crypto    crypto.Provider
	blobs     blobstore.Store
	identity  identity.Provider
	registry  *subscriber.Registry

	sudoCache *cache.Store[[]models.Sudo]
	blobCache *cache.Store[[]byte]

	keys  *utils.UUIDGenerator
	keyMu sync.Mutex

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// New builds a Client from explicit dependencies.
func New(deps Dependencies) (*Client, error) {
	switch {
	case deps.Adapter == nil:
		return nil, fmt.Errorf("%w: server adapter is required", models.ErrInvalidConfig)
	case deps.Crypto == nil:
		return nil, fmt.Errorf("%w: crypto provider is required", models.ErrInvalidConfig)
	case deps.BlobStore == nil:
		return nil, fmt.Errorf("%w: blob store is required", models.ErrInvalidConfig)
	case deps.Identity == nil:
		return nil, fmt.Errorf("%w: identity provider is required", models.ErrInvalidConfig)
	}

	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	c := &Client{
		transform: transform.New(deps.Crypto),
		crypto:    deps.Crypto,
		blobs:     deps.BlobStore,
		identity:  deps.Identity,
		registry:  subscriber.NewRegistry(),
		keys:      utils.NewUUIDGenerator(),
		metrics:   deps.Metrics,
		logger:    log,
	}

	repo, err := repository.New(deps.Adapter, &pushHandler{client: c}, deps.PageSize, log)
	if err != nil {
		return nil, err
	}
	c.repo = repo

	if deps.CacheDir != "" {
		if err = c.openCaches(deps.CacheDir, deps.CompressBlobs); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Client) openCaches(dir string, compress bool) error {
	sudoCache, err := cache.New[[]models.Sudo](filepath.Join(dir, sudosCacheDir), cache.JSONCodec[[]models.Sudo]{})
	if err != nil {
		return fmt.Errorf("%w: open sudo cache: %w", models.ErrInvalidConfig, err)
	}

	var blobCodec cache.Codec[[]byte] = cache.BytesCodec{}
	if compress {
		zc, err := cache.NewZstdCodec[[]byte](cache.BytesCodec{})
		if err != nil {
			return fmt.Errorf("%w: blob cache codec: %w", models.ErrInvalidConfig, err)
		}
		blobCodec = zc
	}

	blobCache, err := cache.New[[]byte](filepath.Join(dir, blobsCacheDir), blobCodec)
	if err != nil {
		return fmt.Errorf("%w: open blob cache: %w", models.ErrInvalidConfig, err)
	}

	c.sudoCache = sudoCache
	c.blobCache = blobCache
	return nil
}
