// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache provides a generic disk-backed key → versioned-entry store.
//
// Each entry is a file in the cache directory whose name is the
// percent-encoded key. The entry version is kept in a sidecar file of the
// same name under the ".versions" subdirectory; an entry without a sidecar
// has version 0.
//
// All mutations of a [Store] are serialized by one writer lock, so
// [Store.Update] always observes the effect of every Set or Remove that
// completed before it was called. Reads proceed concurrently with each other.
package cache
