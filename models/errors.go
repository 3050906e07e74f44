// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Error taxonomy of the SDK. Every public operation fails with an error that
// matches exactly one of these values via [errors.Is]; transport and storage
// errors are translated into them at the package boundaries.
var (
	// ErrInvalidConfig is returned when the client is missing a required
	// collaborator or configuration value.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidInput is returned when caller-supplied arguments are malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotSignedIn is returned when no signed-in identity is available.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrNotAuthorized is returned when the backend rejects the credentials.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrInsufficientEntitlements is returned when the signed-in identity is
	// not entitled to create more records.
	ErrInsufficientEntitlements = errors.New("insufficient entitlements")

	// ErrVersionMismatch is returned when the version asserted by the caller
	// is not the current version of the record.
	ErrVersionMismatch = errors.New("version mismatch")

	// ErrServiceError is a transient upstream failure that may be retried.
	ErrServiceError = errors.New("service error")

	// ErrRequestFailed is a connectivity or HTTP-level failure.
	ErrRequestFailed = errors.New("request failed")

	// ErrRateLimitExceeded is returned when the backend throttles the client.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrBadData is returned when ciphertext or a cached payload cannot be
	// decoded or decrypted.
	ErrBadData = errors.New("bad data")

	// ErrNotFound is returned when a record, a blob or a cache-only read misses.
	ErrNotFound = errors.New("not found")

	// ErrFatal signals an invariant violation or unexpected missing data in
	// an otherwise successful response.
	ErrFatal = errors.New("fatal error")
)
