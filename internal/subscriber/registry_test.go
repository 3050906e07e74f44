// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package subscriber

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sudo-profiles/models"
)

type recorder struct {
	name  string
	dead  atomic.Bool
	calls atomic.Int32
}

func (r *recorder) SudoChanged(models.ChangeType, models.Sudo) { r.calls.Add(1) }

func (r *recorder) ConnectionStateChanged(models.ChangeType, models.ConnectionState) {}

func (r *recorder) Alive() bool { return !r.dead.Load() }

// plain does not implement Liveness.
type plain struct{}

func (plain) SudoChanged(models.ChangeType, models.Sudo) {}

func (plain) ConnectionStateChanged(models.ChangeType, models.ConnectionState) {}

func TestRegistry_ReplaceIsIdempotent(t *testing.T) {
	r := NewRegistry()
	a := &recorder{name: "a"}
	b := &recorder{name: "b"}

	r.Replace("s1", []models.ChangeType{models.ChangeTypeCreate, models.ChangeTypeUpdate}, a)
	r.Replace("s1", []models.ChangeType{models.ChangeTypeCreate}, b)

	create := r.Subscribers(models.ChangeTypeCreate)
	require.Len(t, create, 1)
	assert.Same(t, b, create[0])

	update := r.Subscribers(models.ChangeTypeUpdate)
	require.Len(t, update, 1)
	assert.Same(t, a, update[0])

	assert.Empty(t, r.Subscribers(models.ChangeTypeDelete))
}

func TestRegistry_RemoveReturnsRemaining(t *testing.T) {
	r := NewRegistry()
	r.Replace("s1", models.AllChangeTypes, plain{})
	r.Replace("s2", []models.ChangeType{models.ChangeTypeDelete}, plain{})

	assert.Equal(t, 1, r.Remove("s1", models.ChangeTypeDelete))
	assert.Equal(t, 0, r.Remove("s2", models.ChangeTypeDelete))
	assert.Equal(t, 0, r.Remove("missing", models.ChangeTypeDelete))
	assert.Equal(t, 0, r.Remove("s1", models.ChangeTypeCreate))
	assert.Len(t, r.Subscribers(models.ChangeTypeUpdate), 1)
}

func TestRegistry_DeadSubscribersArePruned(t *testing.T) {
	r := NewRegistry()
	dead := &recorder{name: "dead"}
	live := &recorder{name: "live"}

	r.Replace("dead", []models.ChangeType{models.ChangeTypeUpdate}, dead)
	r.Replace("live", []models.ChangeType{models.ChangeTypeUpdate}, live)
	dead.dead.Store(true)

	// skipped on read
	subs := r.Subscribers(models.ChangeTypeUpdate)
	require.Len(t, subs, 1)
	assert.Same(t, live, subs[0])
	assert.Len(t, r.Subscribers(models.ChangeTypeUpdate), 1)

	// pruned on the next mutation
	assert.Equal(t, 0, r.Remove("live", models.ChangeTypeUpdate))
	r.mu.RLock()
	_, ok := r.byType[models.ChangeTypeUpdate]
	r.mu.RUnlock()
	assert.False(t, ok)
}

func TestRegistry_RemoveAll(t *testing.T) {
	r := NewRegistry()
	r.Replace("s1", models.AllChangeTypes, plain{})
	r.Replace("s2", models.AllChangeTypes, plain{})

	r.RemoveAll(models.ChangeTypeCreate)
	assert.Empty(t, r.Subscribers(models.ChangeTypeCreate))
	assert.Len(t, r.Subscribers(models.ChangeTypeUpdate), 2)

	r.RemoveAllTypes()
	for _, ct := range models.AllChangeTypes {
		assert.Empty(t, r.Subscribers(ct))
	}
}

func TestRegistry_SubscribersIsSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Replace("b", []models.ChangeType{models.ChangeTypeCreate}, &recorder{name: "b"})
	r.Replace("a", []models.ChangeType{models.ChangeTypeCreate}, &recorder{name: "a"})

	subs := r.Subscribers(models.ChangeTypeCreate)
	require.Len(t, subs, 2)
	assert.Equal(t, "a", subs[0].(*recorder).name)
	assert.Equal(t, "b", subs[1].(*recorder).name)

	// a subscriber may re-enter the registry while being notified
	for _, s := range subs {
		r.Remove(s.(*recorder).name, models.ChangeTypeCreate)
	}
	assert.Len(t, subs, 2)
	assert.Empty(t, r.Subscribers(models.ChangeTypeCreate))
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", i)
			r.Replace(id, models.AllChangeTypes, &recorder{name: id})
			if i%2 == 0 {
				r.Remove(id, models.ChangeTypeUpdate)
			}
		}(i)
		go func() {
			defer wg.Done()
			for _, s := range r.Subscribers(models.ChangeTypeUpdate) {
				s.SudoChanged(models.ChangeTypeUpdate, models.Sudo{})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, r.Subscribers(models.ChangeTypeCreate), 50)
	assert.Len(t, r.Subscribers(models.ChangeTypeUpdate), 25)
}

func TestRegistry_MarkConnectedOncePerRegistration(t *testing.T) {
	r := NewRegistry()
	a := &recorder{name: "a"}
	b := &recorder{name: "b"}
	ct := models.ChangeTypeUpdate

	r.Replace("a", []models.ChangeType{ct}, a)
	assert.True(t, r.MarkConnectedID(ct, "a"))
	assert.False(t, r.MarkConnectedID(ct, "a"))
	assert.False(t, r.MarkConnectedID(ct, "missing"))

	r.Replace("b", []models.ChangeType{ct}, b)
	subs := r.MarkConnected(ct)
	require.Len(t, subs, 1)
	assert.Same(t, b, subs[0])
	assert.Empty(t, r.MarkConnected(ct))

	// a fresh registration is told again
	r.Replace("a", []models.ChangeType{ct}, a)
	assert.True(t, r.MarkConnectedID(ct, "a"))

	// so is everyone after the type was dropped
	r.RemoveAll(ct)
	r.Replace("b", []models.ChangeType{ct}, b)
	assert.Len(t, r.MarkConnected(ct), 1)

	dead := &recorder{name: "dead"}
	dead.dead.Store(true)
	r.Replace("dead", []models.ChangeType{ct}, dead)
	assert.False(t, r.MarkConnectedID(ct, "dead"))
	assert.Empty(t, r.MarkConnected(ct))
}
