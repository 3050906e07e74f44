// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrUnknownAlgorithm is returned for an algorithm id with no registered
	// implementation.
	ErrUnknownAlgorithm = errors.New("unknown encryption algorithm")

	// ErrKeyNotFound is returned when the requested key id is not held
	// locally.
	ErrKeyNotFound = errors.New("encryption key not found")

	// ErrNoCurrentKey is returned when no key has been generated or
	// imported yet.
	ErrNoCurrentKey = errors.New("no current encryption key")

	// ErrDecrypt is returned when a payload fails authentication or is too
	// short to hold a nonce.
	ErrDecrypt = errors.New("decryption failed")

	// ErrInvalidArchive is returned when a key archive cannot be parsed.
	ErrInvalidArchive = errors.New("invalid key archive")
)
