// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote Sudo GraphQL service.
//
// Queries and mutations are posted over HTTP; push subscriptions use the
// graphql-ws protocol over a WebSocket. Every per-operation wire type is
// normalised into [models.RemoteSudo] here, so no GraphQL type leaves this
// package.
//
// Transport failures are reported with the sentinels in errors.go, matched
// with [errors.Is]. HTTP status codes are mapped by mapHTTPError and
// GraphQL errorType values by mapGraphQLErrors.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sudo-profiles/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter executes the Sudo service operations.
type ServerAdapter interface {
	// CreateSudo creates an empty record and returns it with the assigned id
	// and version.
	CreateSudo(ctx context.Context) (models.RemoteSudo, error)

	// GetSudo returns the record id or [ErrNotFound].
	GetSudo(ctx context.Context, id string) (models.RemoteSudo, error)

	// ListSudos returns one page of records owned by the caller. A nil
	// nextToken requests the first page.
	ListSudos(ctx context.Context, limit int, nextToken *string) (models.SudoPage, error)

	// UpdateSudo replaces the claim and object sets of a record. It fails
	// with [ErrVersionConflict] when req.ExpectedVersion is stale.
	UpdateSudo(ctx context.Context, req models.UpdateSudoRequest) (models.RemoteSudo, error)

	// DeleteSudo deletes the record and returns its last state.
	DeleteSudo(ctx context.Context, id string, expectedVersion int) (models.RemoteSudo, error)

	// Subscribe opens a push subscription for changeType scoped to owner.
	// It returns once the service acknowledged the subscription.
	Subscribe(ctx context.Context, changeType models.ChangeType, owner string, handler SubscriptionHandler) (Subscription, error)
}

// SubscriptionHandler receives the events of one push subscription. Calls
// are made from a single goroutine in arrival order.
type SubscriptionHandler interface {
	// SudoReceived is called for every pushed record.
	SudoReceived(sudo models.RemoteSudo)

	// Terminated is called once when the service or the transport ends the
	// subscription. err is nil for a regular completion. It is not called
	// after Cancel.
	Terminated(err error)
}

// Subscription is a live push subscription.
type Subscription interface {
	// Cancel ends the subscription. It does not wait for the reader
	// goroutine and is safe to call from a handler.
	Cancel()
}

// TokenSource supplies the authorization token attached to every request.
type TokenSource interface {
	AuthorizationToken(ctx context.Context) (string, error)
}

// StaticToken is a [TokenSource] returning a fixed token.
type StaticToken string

// AuthorizationToken implements [TokenSource].
func (s StaticToken) AuthorizationToken(context.Context) (string, error) {
	if s == "" {
		return "", models.ErrNotSignedIn
	}
	return string(s), nil
}
