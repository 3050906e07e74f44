// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sudo-profiles/internal/logger"
	"github.com/MKhiriev/go-sudo-profiles/internal/workers"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

// SubscriberID identifies the daemon in the subscriber registry.
const SubscriberID = "sudo-sync-daemon"

type App struct {
	profiles Profiles
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(profiles Profiles, w *workers.Workers, log *logger.Logger) (*App, error) {
	if profiles == nil {
		return nil, errors.New("profile client is nil")
	}
	if w == nil {
		w = workers.New()
	}
	return &App{profiles: profiles, workers: w, logger: log}, nil
}

// Run primes the cache, subscribes to every change type and starts the
// workers. It blocks until ctx ends. A failed initial listing is logged;
// a failed subscription is returned.
func (a *App) Run(ctx context.Context) error {
	sudos, err := a.profiles.ListSudos(ctx, models.RemoteOnly)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.Run").Msg("initial sync failed")
	} else {
		a.logger.Info().Str("func", "*App.Run").Int("count", len(sudos)).Msg("initial sync done")
	}

	if err = a.profiles.Subscribe(ctx, SubscriberID, models.AllChangeTypes, &logSubscriber{logger: a.logger}); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	defer a.profiles.UnsubscribeAll()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	<-ctx.Done()
	a.logger.Info().Str("func", "*App.Run").Msg("shutting down")
	return nil
}

// logSubscriber logs every notification it receives.
type logSubscriber struct {
	logger *logger.Logger
}

func (s *logSubscriber) SudoChanged(changeType models.ChangeType, sudo models.Sudo) {
	s.logger.Info().
		Str("func", "*logSubscriber.SudoChanged").
		Str("change_type", string(changeType)).
		Str("sudo_id", sudo.ID).
		Int("version", sudo.Version).
		Msg("sudo changed")
}

func (s *logSubscriber) ConnectionStateChanged(changeType models.ChangeType, state models.ConnectionState) {
	s.logger.Info().
		Str("func", "*logSubscriber.ConnectionStateChanged").
		Str("change_type", string(changeType)).
		Str("state", string(state)).
		Msg("connection state changed")
}
