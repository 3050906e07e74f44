// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package repository

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sudo-profiles/internal/adapter"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

// errSubscriptionCancelled is reported to callers waiting on an open that
// was cancelled by Unsubscribe before it completed.
var errSubscriptionCancelled = errors.New("subscription cancelled while connecting")

var adapterErrors = []struct {
	from error
	to   error
}{
	{adapter.ErrUnauthorized, models.ErrNotAuthorized},
	{adapter.ErrForbidden, models.ErrNotAuthorized},
	{adapter.ErrInsufficientEntitlements, models.ErrInsufficientEntitlements},
	{adapter.ErrVersionConflict, models.ErrVersionMismatch},
	{adapter.ErrRateLimited, models.ErrRateLimitExceeded},
	{adapter.ErrNotFound, models.ErrNotFound},
	{adapter.ErrInvalidArgument, models.ErrInvalidInput},
	{adapter.ErrBadRequest, models.ErrInvalidInput},
	{adapter.ErrServerError, models.ErrServiceError},
	{adapter.ErrBadGateway, models.ErrServiceError},
	{adapter.ErrGraphQL, models.ErrServiceError},
	{adapter.ErrInvalidResponse, models.ErrFatal},
	{adapter.ErrTransport, models.ErrRequestFailed},
	{adapter.ErrSubscriptionClosed, models.ErrRequestFailed},
}

var taxonomy = []error{
	models.ErrInvalidConfig,
	models.ErrInvalidInput,
	models.ErrNotSignedIn,
	models.ErrNotAuthorized,
	models.ErrInsufficientEntitlements,
	models.ErrVersionMismatch,
	models.ErrServiceError,
	models.ErrRequestFailed,
	models.ErrRateLimitExceeded,
	models.ErrBadData,
	models.ErrNotFound,
	models.ErrFatal,
}

// mapAdapterError translates an adapter error into the models taxonomy. The
// original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	for _, sentinel := range taxonomy {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	for _, m := range adapterErrors {
		if errors.Is(err, m.from) {
			return fmt.Errorf("%w: %w", m.to, err)
		}
	}

	return fmt.Errorf("%w: %w", models.ErrRequestFailed, err)
}
