// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Transport errors. HTTP statuses and GraphQL error types are mapped onto
// them; callers translate them further.
var (
	ErrBadRequest               = errors.New("bad request")
	ErrUnauthorized             = errors.New("client unauthorized")
	ErrForbidden                = errors.New("forbidden")
	ErrNotFound                 = errors.New("not found")
	ErrVersionConflict          = errors.New("version conflict")
	ErrRateLimited              = errors.New("rate limited")
	ErrInsufficientEntitlements = errors.New("insufficient entitlements")
	ErrInvalidArgument          = errors.New("invalid argument")
	ErrServerError              = errors.New("server error")
	ErrBadGateway               = errors.New("bad gateway")

	// ErrGraphQL is a GraphQL error with an unknown errorType.
	ErrGraphQL = errors.New("graphql error")

	// ErrTransport is a connection level failure; no response was read.
	ErrTransport = errors.New("transport error")

	// ErrInvalidResponse is a response that decoded but misses data.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrSubscriptionClosed is passed to Terminated when the subscription
	// connection drops.
	ErrSubscriptionClosed = errors.New("subscription closed")
)
