// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RemoteSudo is the canonical wire record. Every per-operation GraphQL type
// is normalised into it at the adapter boundary.
type RemoteSudo struct {
	ID               string         `json:"id"`
	Claims           []SecureClaim  `json:"claims"`
	Objects          []SecureObject `json:"objects"`
	Metadata         []Attribute    `json:"metadata"`
	Version          int            `json:"version"`
	CreatedAtEpochMs float64        `json:"createdAtEpochMs"`
	UpdatedAtEpochMs float64        `json:"updatedAtEpochMs"`
	Owner            string         `json:"owner"`
}

// SecureClaim is an encrypted string claim. Base64Data is the base64
// standard encoding of the ciphertext.
type SecureClaim struct {
	Name       string `json:"name"`
	Version    int    `json:"version"`
	Algorithm  string `json:"algorithm"`
	KeyID      string `json:"keyId"`
	Base64Data string `json:"base64Data"`
}

// SecureObject is a reference to an encrypted blob claim stored in the
// object store.
type SecureObject struct {
	Name      string `json:"name"`
	Version   int    `json:"version"`
	Algorithm string `json:"algorithm"`
	KeyID     string `json:"keyId"`
	Bucket    string `json:"bucket"`
	Region    string `json:"region"`
	Key       string `json:"key"`
}

// Attribute is a single backend metadata entry.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SudoPage is a single page of a remote listing.
type SudoPage struct {
	Items     []RemoteSudo
	NextToken *string
}

// UpdateSudoRequest is sent to the backend to replace the claim and object
// sets of a record. The backend rejects it unless ExpectedVersion matches.
type UpdateSudoRequest struct {
	ID              string         `json:"id"`
	ExpectedVersion int            `json:"expectedVersion"`
	Claims          []SecureClaim  `json:"claims"`
	Objects         []SecureObject `json:"objects"`
}
