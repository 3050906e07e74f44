// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package blobstore is the client of the binary object store holding blob
// claim ciphertext. [S3Store] talks to AWS S3 or any S3-compatible service
// such as MinIO; [MemoryStore] keeps objects in process memory.
//
// Storage errors are translated at this boundary: a missing object is
// [models.ErrNotFound] and every other failure is [models.ErrRequestFailed].
package blobstore
