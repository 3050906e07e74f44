// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-sudo-profiles/internal/adapter"
	"github.com/MKhiriev/go-sudo-profiles/internal/config"
	"github.com/MKhiriev/go-sudo-profiles/internal/logger"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

type subscriptionEntry struct {
	// sub is nil while the subscription is being opened.
	sub       adapter.Subscription
	connected bool
	gen       uint64

	// ready is closed once the open attempt finished; err is its outcome
	// and is only read after ready is closed.
	ready chan struct{}
	err   error
}

type sudoRepository struct {
	adapter  adapter.ServerAdapter
	delegate Delegate
	pageSize int

	mu   sync.Mutex
	subs map[models.ChangeType]*subscriptionEntry
	gen  uint64

	logger *logger.Logger
}

// New returns a [Repository] on top of a. A non positive pageSize selects
// [config.DefaultPageSize].
func New(a adapter.ServerAdapter, delegate Delegate, pageSize int, log *logger.Logger) (Repository, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: server adapter is nil", models.ErrInvalidConfig)
	}
	if delegate == nil {
		return nil, fmt.Errorf("%w: delegate is nil", models.ErrInvalidConfig)
	}
	if pageSize <= 0 {
		pageSize = config.DefaultPageSize
	}

	return &sudoRepository{
		adapter:  a,
		delegate: delegate,
		pageSize: pageSize,
		subs:     make(map[models.ChangeType]*subscriptionEntry),
		logger:   log,
	}, nil
}

func (r *sudoRepository) CreateSudo(ctx context.Context) (models.RemoteSudo, error) {
	sudo, err := r.adapter.CreateSudo(ctx)
	if err != nil {
		r.logger.Err(err).Str("func", "*sudoRepository.CreateSudo").Msg("error creating sudo")
		return models.RemoteSudo{}, mapAdapterError(err)
	}
	return sudo, nil
}

func (r *sudoRepository) GetSudo(ctx context.Context, id string) (models.RemoteSudo, error) {
	sudo, err := r.adapter.GetSudo(ctx, id)
	if err != nil {
		return models.RemoteSudo{}, mapAdapterError(err)
	}
	return sudo, nil
}

func (r *sudoRepository) ListSudos(ctx context.Context) ([]models.RemoteSudo, error) {
	var (
		all       []models.RemoteSudo
		nextToken *string
	)

	for {
		page, err := r.adapter.ListSudos(ctx, r.pageSize, nextToken)
		if err != nil {
			r.logger.Err(err).Str("func", "*sudoRepository.ListSudos").Int("fetched", len(all)).Msg("error listing sudos")
			return nil, mapAdapterError(err)
		}
		all = append(all, page.Items...)

		if page.NextToken == nil {
			break
		}
		if nextToken != nil && *nextToken == *page.NextToken {
			return nil, fmt.Errorf("%w: listSudos repeated next token", models.ErrFatal)
		}
		nextToken = page.NextToken
	}

	if all == nil {
		all = []models.RemoteSudo{}
	}
	return all, nil
}

func (r *sudoRepository) UpdateSudo(ctx context.Context, req models.UpdateSudoRequest) (models.RemoteSudo, error) {
	sudo, err := r.adapter.UpdateSudo(ctx, req)
	if err != nil {
		r.logger.Err(err).Str("func", "*sudoRepository.UpdateSudo").Str("sudo_id", req.ID).Int("expected_version", req.ExpectedVersion).Msg("error updating sudo")
		return models.RemoteSudo{}, mapAdapterError(err)
	}
	return sudo, nil
}

func (r *sudoRepository) DeleteSudo(ctx context.Context, id string, expectedVersion int) (models.RemoteSudo, error) {
	sudo, err := r.adapter.DeleteSudo(ctx, id, expectedVersion)
	if err != nil {
		r.logger.Err(err).Str("func", "*sudoRepository.DeleteSudo").Str("sudo_id", id).Msg("error deleting sudo")
		return models.RemoteSudo{}, mapAdapterError(err)
	}
	return sudo, nil
}
