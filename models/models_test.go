// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimUpdate_Validate(t *testing.T) {
	text := "A"
	tests := []struct {
		name    string
		update  ClaimUpdate
		wantErr bool
		isBlob  bool
	}{
		{name: "string", update: NewStringClaimUpdate("title", "A")},
		{name: "empty string", update: NewStringClaimUpdate("title", "")},
		{name: "blob", update: NewBlobClaimUpdate("avatar", []byte{1}, "image/png"), isBlob: true},
		{name: "empty blob", update: NewBlobClaimUpdate("avatar", []byte{}, ""), isBlob: true},
		{name: "clear", update: NewClearClaimUpdate("avatar")},
		{name: "no name", update: NewStringClaimUpdate("", "A"), wantErr: true},
		{name: "no value", update: ClaimUpdate{Name: "title"}, wantErr: true},
		{name: "string and blob", update: ClaimUpdate{Name: "x", String: &text, Blob: []byte{1}}, wantErr: true},
		{name: "string and clear", update: ClaimUpdate{Name: "x", String: &text, Clear: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.isBlob, tt.update.IsBlob())
		})
	}
}

func TestSortSudos(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	sudos := []Sudo{
		{ID: "c", CreatedAt: t0.Add(time.Minute)},
		{ID: "b", CreatedAt: t0},
		{ID: "a", CreatedAt: t0},
	}

	SortSudos(sudos)

	ids := make([]string, 0, len(sudos))
	for _, s := range sudos {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestSudo_Accessors(t *testing.T) {
	title := "A"
	s := Sudo{ID: "s1", Claims: map[string]Claim{
		"title":  {Name: "title", Value: ClaimValue{String: &title}},
		"banner": {Name: "banner", Value: ClaimValue{Blob: &BlobRef{Key: "k2"}}},
		"avatar": {Name: "avatar", Value: ClaimValue{Blob: &BlobRef{Key: "k1"}}},
	}}

	got, ok := s.StringClaim("title")
	require.True(t, ok)
	assert.Equal(t, "A", got)

	_, ok = s.StringClaim("avatar")
	assert.False(t, ok)
	_, ok = s.StringClaim("missing")
	assert.False(t, ok)

	blobs := s.BlobClaims()
	require.Len(t, blobs, 2)
	assert.Equal(t, "avatar", blobs[0].Name)
	assert.Equal(t, "banner", blobs[1].Name)
	assert.True(t, blobs[0].IsBlob())
}

func TestCachePolicy_String(t *testing.T) {
	assert.Equal(t, "cacheOnly", CacheOnly.String())
	assert.Equal(t, "remoteOnly", RemoteOnly.String())
	assert.Equal(t, "unknown", CachePolicy(0).String())
}
