// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data types shared by every layer of the SDK: the
// decrypted local Sudo model, the canonical wire record returned by the
// remote service, claim update inputs and the error taxonomy.
package models

import (
	"sort"
	"time"
)

// Sudo is a decrypted profile record (identity persona) as seen by the
// application.
type Sudo struct {
	// ID is the globally unique identifier assigned by the backend. It is
	// empty until the first remote create succeeds.
	ID string `json:"id"`

	// Claims holds the record attributes keyed by claim name.
	Claims map[string]Claim `json:"claims"`

	// Metadata is an opaque backend-owned map. Read-only for the client.
	Metadata map[string]string `json:"metadata,omitempty"`

	// Version is assigned by the backend and incremented on every accepted
	// mutation.
	Version int `json:"version"`

	// CreatedAt is the creation instant reported by the backend.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the instant of the last accepted mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// Claim returns the claim stored under name.
func (s Sudo) Claim(name string) (Claim, bool) {
	c, ok := s.Claims[name]
	return c, ok
}

// StringClaim returns the plaintext value of a string claim.
func (s Sudo) StringClaim(name string) (string, bool) {
	c, ok := s.Claims[name]
	if !ok || c.Value.String == nil {
		return "", false
	}
	return *c.Value.String, true
}

// BlobClaims returns every claim whose value lives in the blob store, ordered
// by name.
func (s Sudo) BlobClaims() []Claim {
	var out []Claim
	for _, c := range s.Claims {
		if c.IsBlob() {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SortSudos orders sudos by creation time, using the id as tie-break.
func SortSudos(sudos []Sudo) {
	sort.SliceStable(sudos, func(i, j int) bool {
		if !sudos[i].CreatedAt.Equal(sudos[j].CreatedAt) {
			return sudos[i].CreatedAt.Before(sudos[j].CreatedAt)
		}
		return sudos[i].ID < sudos[j].ID
	})
}
