// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package profiles

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-sudo-profiles/internal/cache"
	"github.com/MKhiriev/go-sudo-profiles/internal/metrics"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

func blobCacheKey(sudoID, claimName string) string {
	return sudoID + "/" + claimName
}

func blobCachePrefix(sudoID string) string {
	return sudoID + "/"
}

// cachedList reads the cached profile list.
func (c *Client) cachedList() ([]models.Sudo, error) {
	if c.sudoCache == nil {
		return nil, fmt.Errorf("%w: no cache directory configured", models.ErrInvalidConfig)
	}

	entry, err := c.sudoCache.Get(sudoListKey)
	switch {
	case err == nil:
		return entry.Value, nil
	case errors.Is(err, cache.ErrNotFound):
		return nil, fmt.Errorf("%w: sudo list is not cached", models.ErrNotFound)
	case errors.Is(err, cache.ErrCorrupt):
		return nil, fmt.Errorf("%w: %w", models.ErrBadData, err)
	default:
		return nil, fmt.Errorf("%w: read sudo cache: %w", models.ErrFatal, err)
	}
}

// storeList overwrites the cached list.
func (c *Client) storeList(sudos []models.Sudo) {
	if c.sudoCache == nil {
		return
	}
	if err := c.sudoCache.Set(sudoListKey, sudos, 0); err != nil {
		c.cacheWriteFailed(err, metrics.CacheSudos, "set")
	}
}

// mergeIntoList inserts sudo or replaces the cached copy when sudo is
// strictly newer.
func (c *Client) mergeIntoList(sudo models.Sudo) {
	if c.sudoCache == nil {
		return
	}

	err := c.sudoCache.Update(sudoListKey, func(current *cache.Entry[[]models.Sudo]) cache.Action[[]models.Sudo] {
		if current == nil {
			return cache.Replace([]models.Sudo{sudo}, 0)
		}

		list := make([]models.Sudo, 0, len(current.Value)+1)
		found := false
		for _, s := range current.Value {
			if s.ID != sudo.ID {
				list = append(list, s)
				continue
			}
			found = true
			if sudo.Version <= s.Version {
				return cache.Keep[[]models.Sudo]()
			}
			list = append(list, sudo)
		}
		if !found {
			list = append(list, sudo)
		}

		models.SortSudos(list)
		return cache.Replace(list, current.Version)
	})
	if err != nil {
		c.cacheWriteFailed(err, metrics.CacheSudos, "merge")
	}
}

// removeFromList drops id from the cached list.
func (c *Client) removeFromList(id string) {
	if c.sudoCache == nil {
		return
	}

	err := c.sudoCache.Update(sudoListKey, func(current *cache.Entry[[]models.Sudo]) cache.Action[[]models.Sudo] {
		if current == nil {
			return cache.Keep[[]models.Sudo]()
		}

		list := make([]models.Sudo, 0, len(current.Value))
		for _, s := range current.Value {
			if s.ID != id {
				list = append(list, s)
			}
		}
		if len(list) == len(current.Value) {
			return cache.Keep[[]models.Sudo]()
		}
		return cache.Replace(list, current.Version)
	})
	if err != nil {
		c.cacheWriteFailed(err, metrics.CacheSudos, "remove")
	}
}

// storeBlob caches plaintext for a claim unless a newer version is cached.
func (c *Client) storeBlob(sudoID, claimName string, plaintext []byte, version int) {
	if c.blobCache == nil {
		return
	}

	v := int64(version)
	err := c.blobCache.Update(blobCacheKey(sudoID, claimName), func(current *cache.Entry[[]byte]) cache.Action[[]byte] {
		if current != nil && current.Version > v {
			return cache.Keep[[]byte]()
		}
		return cache.Replace(plaintext, v)
	})
	if err != nil {
		c.cacheWriteFailed(err, metrics.CacheBlobs, "set")
	}
}

func (c *Client) purgeBlob(sudoID, claimName string) {
	if c.blobCache == nil {
		return
	}
	if err := c.blobCache.Remove(blobCacheKey(sudoID, claimName)); err != nil {
		c.cacheWriteFailed(err, metrics.CacheBlobs, "remove")
	}
}

func (c *Client) purgeBlobs(sudoID string) {
	if c.blobCache == nil {
		return
	}
	if _, err := c.blobCache.RemoveWithPrefix(blobCachePrefix(sudoID)); err != nil {
		c.cacheWriteFailed(err, metrics.CacheBlobs, "remove_prefix")
	}
}

// evictSupersededBlobs removes cached blobs of sudo older than the claim
// version advertised by sudo, and blobs of claims sudo no longer has.
func (c *Client) evictSupersededBlobs(sudo models.Sudo) {
	if c.blobCache == nil {
		return
	}

	for _, claim := range sudo.BlobClaims() {
		if _, err := c.blobCache.RemoveIfVersionBelow(blobCacheKey(sudo.ID, claim.Name), int64(claim.Version)); err != nil {
			c.cacheWriteFailed(err, metrics.CacheBlobs, "evict")
		}
	}

	keys, err := c.blobCache.Keys()
	if err != nil {
		c.cacheWriteFailed(err, metrics.CacheBlobs, "keys")
		return
	}
	prefix := blobCachePrefix(sudo.ID)
	for _, key := range keys {
		name, ok := strings.CutPrefix(key, prefix)
		if !ok {
			continue
		}
		if claim, exists := sudo.Claim(name); exists && claim.IsBlob() {
			continue
		}
		if err = c.blobCache.Remove(key); err != nil {
			c.cacheWriteFailed(err, metrics.CacheBlobs, "evict")
		}
	}
}

// evictUnlistedBlobs removes cached blobs of records missing from a full
// remote listing, such as records deleted while no push was received.
func (c *Client) evictUnlistedBlobs(sudos []models.Sudo) {
	if c.blobCache == nil {
		return
	}

	keys, err := c.blobCache.Keys()
	if err != nil {
		c.cacheWriteFailed(err, metrics.CacheBlobs, "keys")
		return
	}

	prefixes := make([]string, 0, len(sudos))
	for _, s := range sudos {
		prefixes = append(prefixes, blobCachePrefix(s.ID))
	}

	for _, key := range keys {
		if slices.ContainsFunc(prefixes, func(p string) bool { return strings.HasPrefix(key, p) }) {
			continue
		}
		if err = c.blobCache.Remove(key); err != nil {
			c.cacheWriteFailed(err, metrics.CacheBlobs, "evict")
		}
	}
}

func (c *Client) cacheWriteFailed(err error, cacheName, op string) {
	c.logger.Warn().Err(err).Str("func", "*Client.cacheWriteFailed").Str("cache", cacheName).Str("op", op).Msg("cache write failed")
	c.metrics.CacheWriteFailed(cacheName, op)
}
