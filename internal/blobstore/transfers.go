// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blobstore

import (
	"context"
	"sync"
)

// transfers tracks the cancel functions of in-flight operations so Reset
// can abort them.
type transfers struct {
	mu      sync.Mutex
	nextID  uint64
	cancels map[uint64]context.CancelFunc
}

func newTransfers() *transfers {
	return &transfers{cancels: make(map[uint64]context.CancelFunc)}
}

// start derives a cancellable context for one transfer. The returned finish
// func must be called when the transfer ends.
func (t *transfers) start(ctx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)

	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.cancels[id] = cancel
	t.mu.Unlock()

	return ctx, func() {
		t.mu.Lock()
		delete(t.cancels, id)
		t.mu.Unlock()
		cancel()
	}
}

func (t *transfers) cancelAll() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.cancels)
	for id, cancel := range t.cancels {
		cancel()
		delete(t.cancels, id)
	}
	return n
}

func (t *transfers) inFlight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.cancels)
}
