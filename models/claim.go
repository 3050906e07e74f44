// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Claim is a named attribute of a Sudo. Its value is either a decrypted
// string or a reference to an encrypted object in the blob store.
type Claim struct {
	// Name is unique within the owning Sudo.
	Name string `json:"name"`

	// SudoID is the id of the owning record.
	SudoID string `json:"sudo_id"`

	// Value holds exactly one of String or Blob.
	Value ClaimValue `json:"value"`

	// Version is the backend per-claim counter. It is independent of the
	// record version and mirrored by the cached blob version.
	Version int `json:"version"`

	// Algorithm is the identifier of the algorithm the value was encrypted with.
	Algorithm string `json:"algorithm"`

	// KeyID identifies the symmetric key the value was encrypted with.
	KeyID string `json:"key_id"`
}

// IsBlob reports whether the claim references an object in the blob store.
func (c Claim) IsBlob() bool {
	return c.Value.Blob != nil
}

// ClaimValue is the value of a claim. Exactly one field is set.
type ClaimValue struct {
	String *string  `json:"string,omitempty"`
	Blob   *BlobRef `json:"blob,omitempty"`
}

// BlobRef points at an encrypted object in the blob store.
type BlobRef struct {
	// Key is the object storage key.
	Key string `json:"key"`

	Bucket string `json:"bucket,omitempty"`
	Region string `json:"region,omitempty"`
}

// ClaimUpdate describes a single change requested by CreateSudo or
// UpdateSudo. Exactly one of String, Blob or Clear is meaningful.
type ClaimUpdate struct {
	Name string

	// String is the new plaintext of a string claim.
	String *string

	// Blob is the new plaintext of a blob claim.
	Blob []byte

	// ContentType is forwarded to the blob store for blob claims.
	ContentType string

	// Clear removes the claim from the record.
	Clear bool
}

// NewStringClaimUpdate returns an update setting a string claim.
func NewStringClaimUpdate(name, value string) ClaimUpdate {
	return ClaimUpdate{Name: name, String: &value}
}

// NewBlobClaimUpdate returns an update setting a blob claim.
func NewBlobClaimUpdate(name string, data []byte, contentType string) ClaimUpdate {
	return ClaimUpdate{Name: name, Blob: data, ContentType: contentType}
}

// NewClearClaimUpdate returns an update removing a claim.
func NewClearClaimUpdate(name string) ClaimUpdate {
	return ClaimUpdate{Name: name, Clear: true}
}

// IsBlob reports whether the update carries blob data.
func (u ClaimUpdate) IsBlob() bool {
	return !u.Clear && u.String == nil && u.Blob != nil
}

// Validate checks that the update names a claim and carries exactly one kind
// of value.
func (u ClaimUpdate) Validate() error {
	if u.Name == "" {
		return ErrInvalidInput
	}

	kinds := 0
	if u.String != nil {
		kinds++
	}
	if u.Blob != nil {
		kinds++
	}
	if u.Clear {
		kinds++
	}
	if kinds != 1 {
		return ErrInvalidInput
	}

	return nil
}
