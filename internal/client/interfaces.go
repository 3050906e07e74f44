// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-sudo-profiles/internal/subscriber"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until ctx ends.
	Run(ctx context.Context) error
}

// Profiles is the part of the profile client the daemon drives.
type Profiles interface {
	ListSudos(ctx context.Context, policy models.CachePolicy) ([]models.Sudo, error)
	Subscribe(ctx context.Context, subscriberID string, changeTypes []models.ChangeType, sub subscriber.Subscriber) error
	UnsubscribeAll()
}
