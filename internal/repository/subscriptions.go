// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package repository

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sudo-profiles/models"
)

func (r *sudoRepository) Subscribe(ctx context.Context, changeType models.ChangeType, ownerID string) (bool, error) {
	r.mu.Lock()
	if e, ok := r.subs[changeType]; ok {
		connected := e.connected
		r.mu.Unlock()
		if connected {
			return true, nil
		}
		return false, r.awaitOpen(ctx, changeType, e)
	}
	r.gen++
	gen := r.gen
	e := &subscriptionEntry{gen: gen, ready: make(chan struct{})}
	r.subs[changeType] = e
	r.mu.Unlock()

	sub, err := r.adapter.Subscribe(ctx, changeType, ownerID, &subscriptionHandler{repo: r, changeType: changeType, gen: gen})
	if err != nil {
		r.dropEntry(changeType, gen)
		e.err = mapAdapterError(err)
		close(e.ready)
		r.logger.Err(err).Str("func", "*sudoRepository.Subscribe").Str("change_type", string(changeType)).Msg("error subscribing")
		return false, e.err
	}

	r.mu.Lock()
	if current, ok := r.subs[changeType]; !ok || current.gen != gen {
		// unsubscribed or terminated while connecting
		r.mu.Unlock()
		sub.Cancel()
		e.err = fmt.Errorf("%w: %w", models.ErrRequestFailed, errSubscriptionCancelled)
		close(e.ready)
		return false, nil
	}
	e.sub = sub
	e.connected = true
	r.mu.Unlock()
	close(e.ready)

	r.logger.Debug().Str("func", "*sudoRepository.Subscribe").Str("change_type", string(changeType)).Msg("subscription connected")
	r.delegate.ConnectionStateChanged(changeType, models.ConnectionStateConnected)
	return false, nil
}

// awaitOpen waits for the pending open of e and returns its outcome. A
// successful open reports connected to the delegate itself.
func (r *sudoRepository) awaitOpen(ctx context.Context, changeType models.ChangeType, e *subscriptionEntry) error {
	select {
	case <-e.ready:
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", models.ErrRequestFailed, ctx.Err())
	}

	if e.err != nil {
		r.logger.Debug().Err(e.err).Str("func", "*sudoRepository.awaitOpen").Str("change_type", string(changeType)).Msg("pending subscription failed")
	}
	return e.err
}

func (r *sudoRepository) Unsubscribe(changeType models.ChangeType) {
	r.mu.Lock()
	e, ok := r.subs[changeType]
	delete(r.subs, changeType)
	r.mu.Unlock()

	if ok && e.sub != nil {
		e.sub.Cancel()
	}
}

func (r *sudoRepository) UnsubscribeAll() {
	r.mu.Lock()
	entries := r.subs
	r.subs = make(map[models.ChangeType]*subscriptionEntry)
	r.mu.Unlock()

	for _, e := range entries {
		if e.sub != nil {
			e.sub.Cancel()
		}
	}
}

// dropEntry removes the entry for changeType if it still belongs to gen.
func (r *sudoRepository) dropEntry(changeType models.ChangeType, gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.subs[changeType]; ok && e.gen == gen {
		delete(r.subs, changeType)
		return true
	}
	return false
}

// subscriptionHandler forwards the events of one subscription generation.
type subscriptionHandler struct {
	repo       *sudoRepository
	changeType models.ChangeType
	gen        uint64
}

func (h *subscriptionHandler) SudoReceived(sudo models.RemoteSudo) {
	h.repo.delegate.SudoChanged(h.changeType, sudo)
}

func (h *subscriptionHandler) Terminated(err error) {
	if !h.repo.dropEntry(h.changeType, h.gen) {
		return
	}

	h.repo.logger.Warn().Err(err).Str("func", "*subscriptionHandler.Terminated").Str("change_type", string(h.changeType)).Msg("subscription terminated by transport")
	h.repo.delegate.ConnectionStateChanged(h.changeType, models.ConnectionStateDisconnected)
}
