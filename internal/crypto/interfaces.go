// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_provider_mock.go -package=mock

// Provider owns the client's symmetric key material and encrypts claim and
// blob payloads with it. Keys and algorithms are addressed by identifier, so
// data written with an older key stays readable after a rotation.
type Provider interface {
	// Encrypt seals plaintext with the key keyID using algorithm. Output is
	// nonce || ciphertext.
	Encrypt(ctx context.Context, keyID, algorithm string, plaintext []byte) ([]byte, error)

	// Decrypt opens a payload produced by Encrypt.
	Decrypt(ctx context.Context, keyID, algorithm string, ciphertext []byte) ([]byte, error)

	// CurrentSymmetricKeyID returns the id of the current key or
	// [ErrNoCurrentKey].
	CurrentSymmetricKeyID(ctx context.Context) (string, error)

	// GenerateEncryptionKey creates a new key, makes it current and returns
	// its id.
	GenerateEncryptionKey(ctx context.Context) (string, error)

	// ImportKeys replaces the local key material with an archive produced
	// by ExportKeys.
	ImportKeys(ctx context.Context, archive []byte) error

	// ExportKeys serializes every local key into an archive.
	ExportKeys(ctx context.Context) ([]byte, error)

	// Reset destroys every locally held key.
	Reset(ctx context.Context) error

	// DefaultAlgorithm is the algorithm new payloads are encrypted with.
	DefaultAlgorithm() string
}
