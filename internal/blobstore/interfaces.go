// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blobstore

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/blob_store_mock.go -package=mock

// Store uploads, downloads and deletes encrypted objects addressed by an
// opaque key. Nothing is atomic across calls: an upload that is not
// committed to a record must be deleted by the caller.
type Store interface {
	// Upload stores data under key.
	Upload(ctx context.Context, data []byte, contentType, key string) error

	// Download returns the object stored under key or [models.ErrNotFound].
	Download(ctx context.Context, key string) ([]byte, error)

	// Delete removes the object under key. Deleting a missing object is not
	// an error.
	Delete(ctx context.Context, key string) error

	// Reset cancels every in-flight transfer.
	Reset()

	// Bucket is recorded on every object reference written by the client.
	Bucket() string

	// Region is recorded on every object reference written by the client.
	Region() string
}
