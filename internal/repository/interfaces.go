// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package repository is the boundary between the profile client and the
// remote Sudo service.
//
// Every call is a single remote round trip; transport errors come back
// translated into the models error taxonomy. The repository also keeps at
// most one push subscription per change type and forwards its events and
// connectivity transitions to a [Delegate].
package repository

import (
	"context"

	"github.com/MKhiriev/go-sudo-profiles/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_mock.go -package=mock

// Repository executes the remote profile operations.
type Repository interface {
	CreateSudo(ctx context.Context) (models.RemoteSudo, error)
	GetSudo(ctx context.Context, id string) (models.RemoteSudo, error)

	// ListSudos fetches every page and returns all records.
	ListSudos(ctx context.Context) ([]models.RemoteSudo, error)

	UpdateSudo(ctx context.Context, req models.UpdateSudoRequest) (models.RemoteSudo, error)
	DeleteSudo(ctx context.Context, id string, expectedVersion int) (models.RemoteSudo, error)

	// Subscribe opens the push subscription for changeType unless one is
	// already live. alreadyConnected reports an existing connected
	// subscription. A call racing an open in progress waits for it and
	// returns its error.
	Subscribe(ctx context.Context, changeType models.ChangeType, ownerID string) (alreadyConnected bool, err error)

	// Unsubscribe cancels the subscription for changeType, if any.
	Unsubscribe(changeType models.ChangeType)

	// UnsubscribeAll cancels every subscription.
	UnsubscribeAll()
}

// Delegate receives push events and connectivity transitions.
type Delegate interface {
	SudoChanged(changeType models.ChangeType, sudo models.RemoteSudo)
	ConnectionStateChanged(changeType models.ChangeType, state models.ConnectionState)
}
