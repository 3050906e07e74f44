// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-sudo-profiles/internal/logger"
	"github.com/MKhiriev/go-sudo-profiles/internal/store"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

const archiveFormatVersion = 1

// keyArchive is the ExportKeys wire format. Material is base64 in JSON.
type keyArchive struct {
	Version int                   `json:"version"`
	Keys    []models.SymmetricKey `json:"keys"`
}

// provider is the private implementation of [Provider].
type provider struct {
	keys       store.KeyStore
	algorithms map[string]aeadFactory
	defaultAlg string
	now        func() time.Time
	logger     *logger.Logger
}

// Option configures a [Provider].
type Option func(*provider)

// WithDefaultAlgorithm sets the algorithm used for new payloads. Unknown ids
// are rejected by [NewProvider].
func WithDefaultAlgorithm(algorithm string) Option {
	return func(p *provider) {
		p.defaultAlg = algorithm
	}
}

// NewProvider returns a [Provider] storing its keys in keys.
func NewProvider(keys store.KeyStore, log *logger.Logger, opts ...Option) (Provider, error) {
	p := &provider{
		keys:       keys,
		algorithms: defaultAlgorithms(),
		defaultAlg: AlgorithmAESGCM,
		now:        time.Now,
		logger:     log,
	}
	for _, opt := range opts {
		opt(p)
	}

	if keys == nil {
		return nil, errors.New("key store is nil")
	}
	if _, ok := p.algorithms[p.defaultAlg]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, p.defaultAlg)
	}

	return p, nil
}

func (p *provider) DefaultAlgorithm() string {
	return p.defaultAlg
}

func (p *provider) Encrypt(ctx context.Context, keyID, algorithm string, plaintext []byte) ([]byte, error) {
	aead, err := p.aead(ctx, keyID, algorithm)
	if err != nil {
		return nil, err
	}
	return seal(aead, plaintext)
}

func (p *provider) Decrypt(ctx context.Context, keyID, algorithm string, ciphertext []byte) ([]byte, error) {
	aead, err := p.aead(ctx, keyID, algorithm)
	if err != nil {
		return nil, err
	}
	return open(aead, ciphertext)
}

func (p *provider) CurrentSymmetricKeyID(ctx context.Context) (string, error) {
	key, err := p.keys.CurrentKey(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoCurrentKey) {
			return "", ErrNoCurrentKey
		}
		return "", fmt.Errorf("load current key: %w", err)
	}
	return key.ID, nil
}

func (p *provider) GenerateEncryptionKey(ctx context.Context) (string, error) {
	material := make([]byte, symmetricKeyBytes)
	if _, err := io.ReadFull(rand.Reader, material); err != nil {
		return "", fmt.Errorf("generate key material: %w", err)
	}

	key := models.SymmetricKey{
		ID:        uuid.NewString(),
		Material:  material,
		Current:   true,
		CreatedAt: p.now().UTC(),
	}
	if err := p.keys.SaveKey(ctx, key); err != nil {
		p.logger.Err(err).Str("func", "*provider.GenerateEncryptionKey").Msg("error saving generated key")
		return "", fmt.Errorf("save key: %w", err)
	}

	p.logger.Info().Str("func", "*provider.GenerateEncryptionKey").Str("key_id", key.ID).Msg("generated symmetric key")
	return key.ID, nil
}

func (p *provider) ExportKeys(ctx context.Context) ([]byte, error) {
	keys, err := p.keys.ListKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	if keys == nil {
		keys = []models.SymmetricKey{}
	}

	return json.Marshal(keyArchive{Version: archiveFormatVersion, Keys: keys})
}

func (p *provider) ImportKeys(ctx context.Context, archive []byte) error {
	var a keyArchive
	if err := json.Unmarshal(archive, &a); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArchive, err)
	}
	if a.Version != archiveFormatVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidArchive, a.Version)
	}

	current := -1
	for i, k := range a.Keys {
		if k.ID == "" || len(k.Material) != symmetricKeyBytes {
			return fmt.Errorf("%w: key %d is malformed", ErrInvalidArchive, i)
		}
		if k.Current {
			current = i
		}
	}
	// an archive without a current key promotes its newest key
	if current < 0 && len(a.Keys) > 0 {
		current = 0
		for i, k := range a.Keys {
			if k.CreatedAt.After(a.Keys[current].CreatedAt) {
				current = i
			}
		}
	}

	if err := p.keys.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete keys: %w", err)
	}
	for i, k := range a.Keys {
		k.Current = i == current
		if k.CreatedAt.IsZero() {
			k.CreatedAt = p.now().UTC()
		}
		if err := p.keys.SaveKey(ctx, k); err != nil {
			return fmt.Errorf("save key %q: %w", k.ID, err)
		}
	}

	p.logger.Info().Str("func", "*provider.ImportKeys").Int("keys", len(a.Keys)).Msg("imported symmetric keys")
	return nil
}

func (p *provider) Reset(ctx context.Context) error {
	if err := p.keys.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete keys: %w", err)
	}
	return nil
}

func (p *provider) aead(ctx context.Context, keyID, algorithm string) (cipher.AEAD, error) {
	factory, ok := p.algorithms[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	key, err := p.keys.GetKey(ctx, keyID)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, keyID)
		}
		return nil, fmt.Errorf("load key %q: %w", keyID, err)
	}

	return factory(key.Material)
}
