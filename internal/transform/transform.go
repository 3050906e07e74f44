// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transform converts between the wire representation of a Sudo and
// the decrypted local model. It holds no state besides the [Cryptor].
package transform

import (
	"context"
	"encoding/base64"
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-sudo-profiles/models"
)

// ClaimEnvelopeVersion is the version stamped on every freshly encrypted
// string claim.
const ClaimEnvelopeVersion = 1

// Transformer encrypts and decrypts claims with a [Cryptor].
type Transformer struct {
	cryptor Cryptor
}

// New returns a Transformer backed by cryptor.
func New(cryptor Cryptor) *Transformer {
	return &Transformer{cryptor: cryptor}
}

// ToLocalModel decrypts every string claim of remote and carries blob claims
// forward as storage references. Any malformed claim fails the whole record
// with [models.ErrBadData].
func (t *Transformer) ToLocalModel(ctx context.Context, remote models.RemoteSudo) (models.Sudo, error) {
	sudo := models.Sudo{
		ID:        remote.ID,
		Claims:    make(map[string]models.Claim, len(remote.Claims)+len(remote.Objects)),
		Version:   remote.Version,
		CreatedAt: epochMsToTime(remote.CreatedAtEpochMs),
		UpdatedAt: epochMsToTime(remote.UpdatedAtEpochMs),
	}

	for _, sc := range remote.Claims {
		if _, dup := sudo.Claims[sc.Name]; dup {
			return models.Sudo{}, fmt.Errorf("%w: duplicate claim %q", models.ErrBadData, sc.Name)
		}

		value, err := t.decryptString(ctx, sc)
		if err != nil {
			return models.Sudo{}, err
		}

		sudo.Claims[sc.Name] = models.Claim{
			Name:      sc.Name,
			SudoID:    remote.ID,
			Value:     models.ClaimValue{String: &value},
			Version:   sc.Version,
			Algorithm: sc.Algorithm,
			KeyID:     sc.KeyID,
		}
	}

	for _, so := range remote.Objects {
		if _, dup := sudo.Claims[so.Name]; dup {
			return models.Sudo{}, fmt.Errorf("%w: duplicate claim %q", models.ErrBadData, so.Name)
		}

		sudo.Claims[so.Name] = models.Claim{
			Name:   so.Name,
			SudoID: remote.ID,
			Value: models.ClaimValue{Blob: &models.BlobRef{
				Key:    so.Key,
				Bucket: so.Bucket,
				Region: so.Region,
			}},
			Version:   so.Version,
			Algorithm: so.Algorithm,
			KeyID:     so.KeyID,
		}
	}

	if len(remote.Metadata) > 0 {
		sudo.Metadata = make(map[string]string, len(remote.Metadata))
		for _, a := range remote.Metadata {
			sudo.Metadata[a.Name] = a.Value
		}
	}

	return sudo, nil
}

// ToLocalModels decrypts a batch of records, failing on the first bad one.
func (t *Transformer) ToLocalModels(ctx context.Context, remotes []models.RemoteSudo) ([]models.Sudo, error) {
	sudos := make([]models.Sudo, 0, len(remotes))
	for _, r := range remotes {
		s, err := t.ToLocalModel(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("sudo %q: %w", r.ID, err)
		}
		sudos = append(sudos, s)
	}
	return sudos, nil
}

// EncryptClaim encrypts a single string claim.
func (t *Transformer) EncryptClaim(ctx context.Context, name, keyID, algorithm, value string) (models.SecureClaim, error) {
	ct, err := t.cryptor.Encrypt(ctx, keyID, algorithm, []byte(value))
	if err != nil {
		return models.SecureClaim{}, fmt.Errorf("encrypt claim %q: %w", name, err)
	}

	return models.SecureClaim{
		Name:       name,
		Version:    ClaimEnvelopeVersion,
		Algorithm:  algorithm,
		KeyID:      keyID,
		Base64Data: base64.StdEncoding.EncodeToString(ct),
	}, nil
}

// EncryptBlob encrypts an object payload before upload.
func (t *Transformer) EncryptBlob(ctx context.Context, keyID, algorithm string, data []byte) ([]byte, error) {
	ct, err := t.cryptor.Encrypt(ctx, keyID, algorithm, data)
	if err != nil {
		return nil, fmt.Errorf("encrypt blob: %w", err)
	}
	return ct, nil
}

// DecryptBlob decrypts a downloaded object payload. Failures are reported as
// [models.ErrBadData].
func (t *Transformer) DecryptBlob(ctx context.Context, keyID, algorithm string, data []byte) ([]byte, error) {
	pt, err := t.cryptor.Decrypt(ctx, keyID, algorithm, data)
	if err != nil {
		return nil, fmt.Errorf("%w: decrypt blob: %v", models.ErrBadData, err)
	}
	return pt, nil
}

// ToUpdateRequest builds the full replacement claim and object sets for an
// update. Claims and objects not named by any update are carried over from
// existing; targeted names take the newly encrypted value or are dropped
// when cleared.
func ToUpdateRequest(
	id string,
	expectedVersion int,
	updates []models.ClaimUpdate,
	existing models.RemoteSudo,
	newClaims []models.SecureClaim,
	newObjects []models.SecureObject,
) models.UpdateSudoRequest {
	targeted := make(map[string]struct{}, len(updates))
	for _, u := range updates {
		targeted[u.Name] = struct{}{}
	}

	claims := make(map[string]models.SecureClaim, len(existing.Claims)+len(newClaims))
	for _, c := range existing.Claims {
		if _, ok := targeted[c.Name]; !ok {
			claims[c.Name] = c
		}
	}

	objects := make(map[string]models.SecureObject, len(existing.Objects)+len(newObjects))
	for _, o := range existing.Objects {
		if _, ok := targeted[o.Name]; !ok {
			objects[o.Name] = o
		}
	}

	// a name moves between the claim and object sets when its kind changes
	for _, c := range newClaims {
		delete(objects, c.Name)
		claims[c.Name] = c
	}
	for _, o := range newObjects {
		delete(claims, o.Name)
		objects[o.Name] = o
	}

	req := models.UpdateSudoRequest{
		ID:              id,
		ExpectedVersion: expectedVersion,
		Claims:          make([]models.SecureClaim, 0, len(claims)),
		Objects:         make([]models.SecureObject, 0, len(objects)),
	}
	for _, c := range claims {
		req.Claims = append(req.Claims, c)
	}
	for _, o := range objects {
		req.Objects = append(req.Objects, o)
	}
	sort.Slice(req.Claims, func(i, j int) bool { return req.Claims[i].Name < req.Claims[j].Name })
	sort.Slice(req.Objects, func(i, j int) bool { return req.Objects[i].Name < req.Objects[j].Name })

	return req
}

// SupersededObjects returns the objects of existing whose storage key is no
// longer referenced by req.
func SupersededObjects(existing models.RemoteSudo, req models.UpdateSudoRequest) []models.SecureObject {
	kept := make(map[string]struct{}, len(req.Objects))
	for _, o := range req.Objects {
		kept[o.Key] = struct{}{}
	}

	var out []models.SecureObject
	for _, o := range existing.Objects {
		if _, ok := kept[o.Key]; !ok {
			out = append(out, o)
		}
	}
	return out
}

func (t *Transformer) decryptString(ctx context.Context, sc models.SecureClaim) (string, error) {
	ct, err := base64.StdEncoding.DecodeString(sc.Base64Data)
	if err != nil {
		return "", fmt.Errorf("%w: claim %q: decode base64: %v", models.ErrBadData, sc.Name, err)
	}

	pt, err := t.cryptor.Decrypt(ctx, sc.KeyID, sc.Algorithm, ct)
	if err != nil {
		return "", fmt.Errorf("%w: claim %q: decrypt: %v", models.ErrBadData, sc.Name, err)
	}

	if !utf8.Valid(pt) {
		return "", fmt.Errorf("%w: claim %q: plaintext is not utf-8", models.ErrBadData, sc.Name)
	}

	return string(pt), nil
}

func epochMsToTime(ms float64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(int64(ms)).UTC()
}
