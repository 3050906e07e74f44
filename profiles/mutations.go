// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package profiles

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-sudo-profiles/internal/crypto"
	"github.com/MKhiriev/go-sudo-profiles/internal/metrics"
	"github.com/MKhiriev/go-sudo-profiles/internal/transform"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

// CreateSudo creates a profile holding claims. The record is created empty
// and then updated with the claims, since blob storage keys need its id.
//
// If the update fails the empty record stays on the service and is not
// cached; the next ListSudos(RemoteOnly) picks it up.
func (c *Client) CreateSudo(ctx context.Context, claims []models.ClaimUpdate) (models.Sudo, error) {
	if err := validateUpdates(claims); err != nil {
		return models.Sudo{}, err
	}

	created, err := c.repo.CreateSudo(ctx)
	if err != nil {
		return models.Sudo{}, err
	}
	if created.ID == "" {
		return models.Sudo{}, fmt.Errorf("%w: created sudo has no id", models.ErrFatal)
	}

	c.logger.Info().Str("func", "*Client.CreateSudo").Str("sudo_id", created.ID).Msg("created empty sudo")
	return c.UpdateSudo(ctx, created.ID, created.Version, claims)
}

// UpdateSudo applies updates to the profile id. version must be the current
// version of the record on the service, otherwise the call fails with
// [models.ErrVersionMismatch] before anything is changed.
//
// Blob claims are encrypted and uploaded concurrently. If any upload or the
// record update fails, the objects uploaded by this call are deleted and
// no cache is touched. A [models.ErrFatal] returned after the record
// update means the update is applied on the service.
func (c *Client) UpdateSudo(ctx context.Context, id string, version int, updates []models.ClaimUpdate) (models.Sudo, error) {
	if id == "" {
		return models.Sudo{}, fmt.Errorf("%w: sudo id is required", models.ErrInvalidInput)
	}
	if err := validateUpdates(updates); err != nil {
		return models.Sudo{}, err
	}

	existing, err := c.repo.GetSudo(ctx, id)
	if err != nil {
		return models.Sudo{}, err
	}
	if existing.Version != version {
		return models.Sudo{}, fmt.Errorf("%w: sudo %q is at version %d, not %d", models.ErrVersionMismatch, id, existing.Version, version)
	}

	keyID, err := c.ensureKey(ctx)
	if err != nil {
		return models.Sudo{}, err
	}
	algorithm := c.crypto.DefaultAlgorithm()

	var newClaims []models.SecureClaim
	for _, u := range updates {
		if u.String == nil {
			continue
		}
		sc, err := c.transform.EncryptClaim(ctx, u.Name, keyID, algorithm, *u.String)
		if err != nil {
			return models.Sudo{}, fmt.Errorf("%w: %w", models.ErrFatal, err)
		}
		newClaims = append(newClaims, sc)
	}

	uploaded, err := c.uploadBlobs(ctx, id, keyID, algorithm, updates)
	if err != nil {
		return models.Sudo{}, err
	}

	req := transform.ToUpdateRequest(id, version, updates, existing, newClaims, uploaded.objects())
	updated, err := c.repo.UpdateSudo(ctx, req)
	if err != nil {
		c.deleteObjects(ctx, uploaded.keys())
		return models.Sudo{}, err
	}

	c.deleteObjects(ctx, objectKeys(transform.SupersededObjects(existing, req)))

	local, err := c.transform.ToLocalModel(ctx, updated)
	if err != nil {
		// the update is committed; only the cached copies of what it
		// replaced can still be dropped
		for _, u := range updates {
			c.purgeBlob(id, u.Name)
		}
		c.logger.Err(err).Str("func", "*Client.UpdateSudo").Str("sudo_id", id).Int("version", updated.Version).Msg("updated sudo cannot be decrypted")
		return models.Sudo{}, fmt.Errorf("%w: sudo %q was updated to version %d but the result cannot be decrypted: %v", models.ErrFatal, id, updated.Version, err)
	}

	for _, u := range updates {
		if !u.IsBlob() {
			c.purgeBlob(id, u.Name)
		}
	}
	for _, up := range uploaded {
		claimVersion := up.object.Version
		if claim, ok := local.Claim(up.object.Name); ok {
			claimVersion = claim.Version
		}
		c.storeBlob(id, up.object.Name, up.plaintext, claimVersion)
	}
	c.mergeIntoList(local)

	c.logger.Info().Str("func", "*Client.UpdateSudo").Str("sudo_id", id).Int("version", local.Version).Msg("updated sudo")
	return local, nil
}

// DeleteSudo deletes the profile id at version and everything cached for it.
func (c *Client) DeleteSudo(ctx context.Context, id string, version int) error {
	if id == "" {
		return fmt.Errorf("%w: sudo id is required", models.ErrInvalidInput)
	}

	deleted, err := c.repo.DeleteSudo(ctx, id, version)
	if err != nil {
		return err
	}

	c.purgeBlobs(id)
	c.removeFromList(id)
	c.deleteObjects(ctx, objectKeys(deleted.Objects))

	c.logger.Info().Str("func", "*Client.DeleteSudo").Str("sudo_id", id).Msg("deleted sudo")
	return nil
}

type upload struct {
	object    models.SecureObject
	plaintext []byte
}

type uploadSet []upload

func (u uploadSet) objects() []models.SecureObject {
	out := make([]models.SecureObject, 0, len(u))
	for _, up := range u {
		out = append(out, up.object)
	}
	return out
}

func (u uploadSet) keys() []string {
	out := make([]string, 0, len(u))
	for _, up := range u {
		out = append(out, up.object.Key)
	}
	return out
}

// uploadBlobs encrypts and uploads every blob update concurrently. On
// failure the objects already uploaded are deleted.
func (c *Client) uploadBlobs(ctx context.Context, sudoID, keyID, algorithm string, updates []models.ClaimUpdate) (uploadSet, error) {
	var blobUpdates []models.ClaimUpdate
	for _, u := range updates {
		if u.IsBlob() {
			blobUpdates = append(blobUpdates, u)
		}
	}
	if len(blobUpdates) == 0 {
		return nil, nil
	}

	identityID, err := c.identity.IdentityID(ctx)
	if err != nil {
		return nil, err
	}

	var (
		mu       sync.Mutex
		uploaded uploadSet
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, u := range blobUpdates {
		g.Go(func() error {
			ciphertext, err := c.transform.EncryptBlob(gctx, keyID, algorithm, u.Blob)
			if err != nil {
				return fmt.Errorf("%w: %w", models.ErrFatal, err)
			}
			if err = gctx.Err(); err != nil {
				return fmt.Errorf("%w: %w", models.ErrRequestFailed, err)
			}

			key := c.storageKey(identityID, sudoID, u.Name)
			err = c.blobs.Upload(gctx, ciphertext, u.ContentType, key)
			c.metrics.BlobTransfer(metrics.TransferUpload, err)
			if err != nil {
				return fmt.Errorf("upload claim %q: %w", u.Name, err)
			}

			mu.Lock()
			uploaded = append(uploaded, upload{
				object: models.SecureObject{
					Name:      u.Name,
					Version:   transform.ClaimEnvelopeVersion,
					Algorithm: algorithm,
					KeyID:     keyID,
					Bucket:    c.blobs.Bucket(),
					Region:    c.blobs.Region(),
					Key:       key,
				},
				plaintext: u.Blob,
			})
			mu.Unlock()
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		c.logger.Err(err).Str("func", "*Client.uploadBlobs").Str("sudo_id", sudoID).Int("uploaded", len(uploaded)).Msg("blob upload failed")
		c.deleteObjects(ctx, uploaded.keys())
		return nil, err
	}

	return uploaded, nil
}

func (c *Client) storageKey(identityID, sudoID, claimName string) string {
	return identityID + "/" + sudoID + "/" + claimName + "/" + c.keys.Generate()
}

// deleteObjects removes objects from the blob store, logging failures.
func (c *Client) deleteObjects(ctx context.Context, keys []string) {
	ctx = context.WithoutCancel(ctx)
	for _, key := range keys {
		err := c.blobs.Delete(ctx, key)
		c.metrics.BlobTransfer(metrics.TransferDelete, err)
		if err != nil {
			c.logger.Warn().Err(err).Str("func", "*Client.deleteObjects").Str("key", key).Msg("error deleting object")
		}
	}
}

func objectKeys(objects []models.SecureObject) []string {
	keys := make([]string, 0, len(objects))
	for _, o := range objects {
		keys = append(keys, o.Key)
	}
	return keys
}

// ensureKey returns the current symmetric key id, generating the first key
// on demand.
func (c *Client) ensureKey(ctx context.Context) (string, error) {
	keyID, err := c.crypto.CurrentSymmetricKeyID(ctx)
	if err == nil {
		return keyID, nil
	}
	if !errors.Is(err, crypto.ErrNoCurrentKey) {
		return "", fmt.Errorf("%w: %w", models.ErrFatal, err)
	}

	c.keyMu.Lock()
	defer c.keyMu.Unlock()

	if keyID, err = c.crypto.CurrentSymmetricKeyID(ctx); err == nil {
		return keyID, nil
	}
	if keyID, err = c.crypto.GenerateEncryptionKey(ctx); err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrFatal, err)
	}
	return keyID, nil
}

func validateUpdates(updates []models.ClaimUpdate) error {
	seen := make(map[string]struct{}, len(updates))
	for _, u := range updates {
		if err := u.Validate(); err != nil {
			return fmt.Errorf("%w: claim %q", err, u.Name)
		}
		if _, dup := seen[u.Name]; dup {
			return fmt.Errorf("%w: claim %q updated twice", models.ErrInvalidInput, u.Name)
		}
		seen[u.Name] = struct{}{}
	}
	return nil
}
