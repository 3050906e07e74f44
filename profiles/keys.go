// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sudo-profiles/internal/crypto"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

// GenerateEncryptionKey creates a symmetric key and makes it current.
func (c *Client) GenerateEncryptionKey(ctx context.Context) (string, error) {
	c.keyMu.Lock()
	defer c.keyMu.Unlock()

	keyID, err := c.crypto.GenerateEncryptionKey(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrFatal, err)
	}
	return keyID, nil
}

// CurrentKeyID returns the id of the current symmetric key, or
// [models.ErrNotFound] when none was generated or imported.
func (c *Client) CurrentKeyID(ctx context.Context) (string, error) {
	keyID, err := c.crypto.CurrentSymmetricKeyID(ctx)
	switch {
	case err == nil:
		return keyID, nil
	case errors.Is(err, crypto.ErrNoCurrentKey):
		return "", fmt.Errorf("%w: %w", models.ErrNotFound, err)
	default:
		return "", fmt.Errorf("%w: %w", models.ErrFatal, err)
	}
}

// ExportKeys returns an archive of every symmetric key.
func (c *Client) ExportKeys(ctx context.Context) ([]byte, error) {
	archive, err := c.crypto.ExportKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrFatal, err)
	}
	return archive, nil
}

// ImportKeys replaces every symmetric key with the keys of archive.
func (c *Client) ImportKeys(ctx context.Context, archive []byte) error {
	c.keyMu.Lock()
	defer c.keyMu.Unlock()

	err := c.crypto.ImportKeys(ctx, archive)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, crypto.ErrInvalidArchive):
		return fmt.Errorf("%w: %w", models.ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %w", models.ErrFatal, err)
	}
}

// ClearCache empties the profile list and blob caches.
func (c *Client) ClearCache() error {
	var errs []error
	if c.sudoCache != nil {
		if err := c.sudoCache.Clear(); err != nil {
			errs = append(errs, fmt.Errorf("clear sudo cache: %w", err))
		}
	}
	if c.blobCache != nil {
		if err := c.blobCache.Clear(); err != nil {
			errs = append(errs, fmt.Errorf("clear blob cache: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", models.ErrFatal, errors.Join(errs...))
	}
	return nil
}

// Reset returns the client to its signed-out state: subscriptions are
// closed, caches are cleared, in-flight transfers are cancelled and the
// local key material is destroyed. Every step runs even if an earlier one
// fails.
func (c *Client) Reset(ctx context.Context) error {
	c.UnsubscribeAll()

	var errs []error
	if err := c.ClearCache(); err != nil {
		errs = append(errs, err)
	}

	c.blobs.Reset()

	c.keyMu.Lock()
	err := c.crypto.Reset(ctx)
	c.keyMu.Unlock()
	if err != nil {
		errs = append(errs, fmt.Errorf("%w: reset keys: %w", models.ErrFatal, err))
	}

	if len(errs) > 0 {
		c.logger.Err(errors.Join(errs...)).Str("func", "*Client.Reset").Msg("reset incomplete")
		return errors.Join(errs...)
	}

	c.logger.Info().Str("func", "*Client.Reset").Msg("client reset")
	return nil
}
