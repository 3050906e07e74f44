// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SymmetricKey is locally held key material used to encrypt claims and
// blobs. Only one key is current at a time; older keys are kept to decrypt
// data written before a rotation.
type SymmetricKey struct {
	ID        string    `json:"id"`
	Material  []byte    `json:"material"`
	Current   bool      `json:"current"`
	CreatedAt time.Time `json:"created_at"`
}
