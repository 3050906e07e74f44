// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package subscriber multiplexes change notifications to the subscribers
// registered for each change type.
package subscriber

import (
	"sort"
	"sync"

	"github.com/MKhiriev/go-sudo-profiles/models"
)

// Subscriber receives change notifications for the change types it was
// registered with.
type Subscriber interface {
	// SudoChanged is called after the local cache reflects the change.
	SudoChanged(changeType models.ChangeType, sudo models.Sudo)

	// ConnectionStateChanged reports connectivity of the push subscription
	// backing the change type.
	ConnectionStateChanged(changeType models.ChangeType, state models.ConnectionState)
}

// Liveness can be implemented by a subscriber whose owner may go away
// without unsubscribing. A subscriber reporting false is skipped on reads
// and pruned on the next mutation.
type Liveness interface {
	Alive() bool
}

// Registry is safe for concurrent use. Mutations are serialized; reads may
// run concurrently with each other.
type Registry struct {
	mu     sync.RWMutex
	byType map[models.ChangeType]map[string]Subscriber
	// connected holds the ids already told their change type is connected.
	connected map[models.ChangeType]map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byType:    make(map[models.ChangeType]map[string]Subscriber),
		connected: make(map[models.ChangeType]map[string]struct{}),
	}
}

// Replace registers sub under id for every change type in changeTypes,
// replacing any earlier registration of id for those types.
func (r *Registry) Replace(id string, changeTypes []models.ChangeType, sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ct := range changeTypes {
		delete(r.byType[ct], id)
		delete(r.connected[ct], id)
	}
	r.pruneLocked()

	for _, ct := range changeTypes {
		subs, ok := r.byType[ct]
		if !ok {
			subs = make(map[string]Subscriber)
			r.byType[ct] = subs
		}
		subs[id] = sub
	}
}

// Remove unregisters id for changeType and returns the number of live
// subscribers left for that type.
func (r *Registry) Remove(id string, changeType models.ChangeType) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byType[changeType], id)
	delete(r.connected[changeType], id)
	r.pruneLocked()

	return len(r.byType[changeType])
}

// RemoveAll unregisters every subscriber of changeType.
func (r *Registry) RemoveAll(changeType models.ChangeType) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byType, changeType)
	delete(r.connected, changeType)
}

// RemoveAllTypes empties the registry.
func (r *Registry) RemoveAllTypes() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byType = make(map[models.ChangeType]map[string]Subscriber)
	r.connected = make(map[models.ChangeType]map[string]struct{})
}

// Subscribers returns a snapshot of the live subscribers of changeType
// ordered by id. The caller may invoke them without holding any lock.
func (r *Registry) Subscribers(changeType models.ChangeType) []Subscriber {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs := r.byType[changeType]
	ids := make([]string, 0, len(subs))
	for id, s := range subs {
		if alive(s) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	out := make([]Subscriber, 0, len(ids))
	for _, id := range ids {
		out = append(out, subs[id])
	}
	return out
}

// MarkConnected returns the live subscribers of changeType that were not
// told about the connection yet, ordered by id, and records them as told.
func (r *Registry) MarkConnected(changeType models.ChangeType) []Subscriber {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs := r.byType[changeType]
	ids := make([]string, 0, len(subs))
	for id, s := range subs {
		if alive(s) && !r.isConnectedLocked(changeType, id) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	out := make([]Subscriber, 0, len(ids))
	for _, id := range ids {
		r.markLocked(changeType, id)
		out = append(out, subs[id])
	}
	return out
}

// MarkConnectedID records id as told that changeType is connected. It
// reports false when id is not registered for changeType or was told
// already.
func (r *Registry) MarkConnectedID(changeType models.ChangeType, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byType[changeType][id]
	if !ok || !alive(s) || r.isConnectedLocked(changeType, id) {
		return false
	}
	r.markLocked(changeType, id)
	return true
}

func (r *Registry) isConnectedLocked(changeType models.ChangeType, id string) bool {
	_, ok := r.connected[changeType][id]
	return ok
}

func (r *Registry) markLocked(changeType models.ChangeType, id string) {
	ids, ok := r.connected[changeType]
	if !ok {
		ids = make(map[string]struct{})
		r.connected[changeType] = ids
	}
	ids[id] = struct{}{}
}

func (r *Registry) pruneLocked() {
	for ct, subs := range r.byType {
		for id, s := range subs {
			if !alive(s) {
				delete(subs, id)
				delete(r.connected[ct], id)
			}
		}
		if len(subs) == 0 {
			delete(r.byType, ct)
			delete(r.connected, ct)
		}
	}
}

func alive(s Subscriber) bool {
	if s == nil {
		return false
	}
	if l, ok := s.(Liveness); ok {
		return l.Alive()
	}
	return true
}
