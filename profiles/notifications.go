// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package profiles

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sudo-profiles/models"
)

// Subscribe registers sub under subscriberID for changeTypes, replacing an
// earlier registration of the same id, and opens the push subscriptions
// that are not live yet. Notifications arrive on transport goroutines,
// after the local cache reflects the change.
//
// A subscriber is told connected once its push subscription is up. When a
// subscription drops, its subscribers are told disconnected and removed;
// they must subscribe again.
func (c *Client) Subscribe(ctx context.Context, subscriberID string, changeTypes []models.ChangeType, sub Subscriber) error {
	if subscriberID == "" {
		return fmt.Errorf("%w: subscriber id is required", models.ErrInvalidInput)
	}
	if sub == nil {
		return fmt.Errorf("%w: subscriber is nil", models.ErrInvalidInput)
	}
	if len(changeTypes) == 0 {
		changeTypes = models.AllChangeTypes
	}
	for _, ct := range changeTypes {
		if !validChangeType(ct) {
			return fmt.Errorf("%w: unknown change type %q", models.ErrInvalidInput, ct)
		}
	}

	owner, err := c.identity.SubjectID(ctx)
	if err != nil {
		return err
	}

	c.registry.Replace(subscriberID, changeTypes, sub)

	for _, ct := range changeTypes {
		alreadyConnected, err := c.repo.Subscribe(ctx, ct, owner)
		if err != nil {
			c.logger.Err(err).Str("func", "*Client.Subscribe").Str("subscriber_id", subscriberID).Str("change_type", string(ct)).Msg("error subscribing")
			c.Unsubscribe(subscriberID, changeTypes)
			return err
		}
		if alreadyConnected && c.registry.MarkConnectedID(ct, subscriberID) {
			sub.ConnectionStateChanged(ct, models.ConnectionStateConnected)
		}
	}

	c.logger.Info().Str("func", "*Client.Subscribe").Str("subscriber_id", subscriberID).Int("change_types", len(changeTypes)).Msg("subscribed")
	return nil
}

// Unsubscribe removes subscriberID from changeTypes, or every change type
// when none are given. A push subscription is closed when its last
// subscriber leaves.
func (c *Client) Unsubscribe(subscriberID string, changeTypes []models.ChangeType) {
	if len(changeTypes) == 0 {
		changeTypes = models.AllChangeTypes
	}
	for _, ct := range changeTypes {
		if c.registry.Remove(subscriberID, ct) == 0 {
			c.repo.Unsubscribe(ct)
		}
	}
}

// UnsubscribeAll removes every subscriber and closes every push
// subscription.
func (c *Client) UnsubscribeAll() {
	c.registry.RemoveAllTypes()
	c.repo.UnsubscribeAll()
}

func validChangeType(ct models.ChangeType) bool {
	for _, known := range models.AllChangeTypes {
		if ct == known {
			return true
		}
	}
	return false
}

// pushHandler reconciles the caches with push events and fans them out.
type pushHandler struct {
	client *Client
}

func (h *pushHandler) SudoChanged(changeType models.ChangeType, remote models.RemoteSudo) {
	c := h.client
	ctx := context.Background()

	var sudo models.Sudo
	switch changeType {
	case models.ChangeTypeDelete:
		local, err := c.transform.ToLocalModel(ctx, remote)
		if err != nil {
			// the id is all a delete needs
			local = models.Sudo{ID: remote.ID, Version: remote.Version, Claims: map[string]models.Claim{}}
		}
		sudo = local
		c.purgeBlobs(remote.ID)
		c.removeFromList(remote.ID)

	default:
		local, err := c.transform.ToLocalModel(ctx, remote)
		if err != nil {
			c.logger.Err(err).Str("func", "*pushHandler.SudoChanged").Str("change_type", string(changeType)).Str("sudo_id", remote.ID).Msg("dropping undecryptable push event")
			return
		}
		sudo = local
		c.mergeIntoList(sudo)
		c.evictSupersededBlobs(sudo)
	}

	subs := c.registry.Subscribers(changeType)
	for _, s := range subs {
		s.SudoChanged(changeType, sudo)
	}
	c.metrics.NotificationsDelivered(changeType, len(subs))
}

func (h *pushHandler) ConnectionStateChanged(changeType models.ChangeType, state models.ConnectionState) {
	c := h.client

	var subs []Subscriber
	if state == models.ConnectionStateConnected {
		// a subscriber joining concurrently may have been told already
		subs = c.registry.MarkConnected(changeType)
	} else {
		subs = c.registry.Subscribers(changeType)
	}
	for _, s := range subs {
		s.ConnectionStateChanged(changeType, state)
	}

	if state == models.ConnectionStateDisconnected {
		c.registry.RemoveAll(changeType)
		c.metrics.Disconnected(changeType)
		c.logger.Warn().Str("func", "*pushHandler.ConnectionStateChanged").Str("change_type", string(changeType)).Msg("push subscription lost")
	}
}
