// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the optional background jobs of the profile client.
package workers

import (
	"context"

	"github.com/MKhiriev/go-sudo-profiles/models"
)

// Worker is a background job. Start returns immediately; the job runs until
// ctx ends or Stop is called. Stop blocks until the job has exited and is a
// no-op on an idle worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Lister is the part of the profile client the refresh worker drives.
type Lister interface {
	ListSudos(ctx context.Context, policy models.CachePolicy) ([]models.Sudo, error)
}
