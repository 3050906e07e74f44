// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sudo-profiles/internal/cache"
	"github.com/MKhiriev/go-sudo-profiles/internal/metrics"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

// ListSudos returns every profile ordered by creation time.
//
// With [models.CacheOnly] the cached list is returned; it fails with
// [models.ErrNotFound] when no list was ever cached. A list that was cached
// empty, by a remote listing with no records or by deleting the last
// record, is returned as an empty slice. With [models.RemoteOnly] all
// records are fetched and decrypted, the cached list is overwritten, and
// cached blobs older than the listed claims or belonging to records no
// longer listed are evicted.
func (c *Client) ListSudos(ctx context.Context, policy models.CachePolicy) ([]models.Sudo, error) {
	switch policy {
	case models.CacheOnly:
		cached, err := c.cachedList()
		if err != nil {
			return nil, err
		}
		sudos := append([]models.Sudo(nil), cached...)
		if sudos == nil {
			sudos = []models.Sudo{}
		}
		models.SortSudos(sudos)
		return sudos, nil

	case models.RemoteOnly:
		remotes, err := c.repo.ListSudos(ctx)
		if err != nil {
			return nil, err
		}
		sudos, err := c.transform.ToLocalModels(ctx, remotes)
		if err != nil {
			return nil, err
		}
		models.SortSudos(sudos)

		c.storeList(sudos)
		for _, s := range sudos {
			c.evictSupersededBlobs(s)
		}
		c.evictUnlistedBlobs(sudos)

		c.logger.Debug().Str("func", "*Client.ListSudos").Int("count", len(sudos)).Msg("listed sudos")
		return sudos, nil

	default:
		return nil, fmt.Errorf("%w: unknown cache policy %d", models.ErrInvalidInput, policy)
	}
}

// GetSudo returns the profile id. A remote read is merged into the cached
// list unless the cached copy is newer.
func (c *Client) GetSudo(ctx context.Context, id string, policy models.CachePolicy) (models.Sudo, error) {
	if id == "" {
		return models.Sudo{}, fmt.Errorf("%w: sudo id is required", models.ErrInvalidInput)
	}

	switch policy {
	case models.CacheOnly:
		cached, err := c.cachedList()
		if err != nil {
			return models.Sudo{}, err
		}
		for _, s := range cached {
			if s.ID == id {
				return s, nil
			}
		}
		return models.Sudo{}, fmt.Errorf("%w: sudo %q is not cached", models.ErrNotFound, id)

	case models.RemoteOnly:
		remote, err := c.repo.GetSudo(ctx, id)
		if err != nil {
			return models.Sudo{}, err
		}
		sudo, err := c.transform.ToLocalModel(ctx, remote)
		if err != nil {
			return models.Sudo{}, err
		}
		c.mergeIntoList(sudo)
		c.evictSupersededBlobs(sudo)
		return sudo, nil

	default:
		return models.Sudo{}, fmt.Errorf("%w: unknown cache policy %d", models.ErrInvalidInput, policy)
	}
}

// GetBlob returns the plaintext of a blob claim.
func (c *Client) GetBlob(ctx context.Context, claim models.Claim, policy models.CachePolicy) ([]byte, error) {
	if !claim.IsBlob() {
		return nil, fmt.Errorf("%w: claim %q is not a blob claim", models.ErrInvalidInput, claim.Name)
	}
	if claim.SudoID == "" {
		return nil, fmt.Errorf("%w: claim %q has no sudo id", models.ErrInvalidInput, claim.Name)
	}

	switch policy {
	case models.CacheOnly:
		return c.cachedBlob(claim)

	case models.RemoteOnly:
		ciphertext, err := c.blobs.Download(ctx, claim.Value.Blob.Key)
		c.metrics.BlobTransfer(metrics.TransferDownload, err)
		if err != nil {
			return nil, err
		}
		plaintext, err := c.transform.DecryptBlob(ctx, claim.KeyID, claim.Algorithm, ciphertext)
		if err != nil {
			return nil, fmt.Errorf("claim %q: %w", claim.Name, err)
		}

		c.storeBlob(claim.SudoID, claim.Name, plaintext, claim.Version)
		return plaintext, nil

	default:
		return nil, fmt.Errorf("%w: unknown cache policy %d", models.ErrInvalidInput, policy)
	}
}

func (c *Client) cachedBlob(claim models.Claim) ([]byte, error) {
	if c.blobCache == nil {
		return nil, fmt.Errorf("%w: no cache directory configured", models.ErrInvalidConfig)
	}

	entry, err := c.blobCache.Get(blobCacheKey(claim.SudoID, claim.Name))
	switch {
	case err == nil:
		return entry.Value, nil
	case errors.Is(err, cache.ErrNotFound):
		return nil, fmt.Errorf("%w: blob %q is not cached", models.ErrNotFound, claim.Name)
	case errors.Is(err, cache.ErrCorrupt):
		return nil, fmt.Errorf("%w: %w", models.ErrBadData, err)
	default:
		return nil, fmt.Errorf("%w: read blob cache: %w", models.ErrFatal, err)
	}
}
