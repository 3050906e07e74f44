// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_provider_mock.go -package=mock

// Provider exposes the signed-in session to the client.
type Provider interface {
	// SubjectID returns the owner id of the signed-in user or
	// [models.ErrNotSignedIn].
	SubjectID(ctx context.Context) (string, error)

	// IdentityID returns the identity id used to namespace blob storage
	// keys.
	IdentityID(ctx context.Context) (string, error)

	// AuthorizationToken returns the token sent with every remote request.
	AuthorizationToken(ctx context.Context) (string, error)
}
