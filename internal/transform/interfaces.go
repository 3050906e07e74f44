// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transform

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/cryptor_mock.go -package=mock

// Cryptor is the opaque encryption capability the transform needs. Keys and
// algorithms are addressed by identifier only.
type Cryptor interface {
	Encrypt(ctx context.Context, keyID, algorithm string, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, keyID, algorithm string, ciphertext []byte) ([]byte, error)
}
