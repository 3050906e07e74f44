// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package profiles

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sudo-profiles/internal/adapter"
	"github.com/MKhiriev/go-sudo-profiles/internal/blobstore"
	"github.com/MKhiriev/go-sudo-profiles/internal/crypto"
	"github.com/MKhiriev/go-sudo-profiles/internal/logger"
	"github.com/MKhiriev/go-sudo-profiles/internal/mock"
	"github.com/MKhiriev/go-sudo-profiles/internal/store"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

const (
	testOwner      = "owner-1"
	testIdentityID = "identity-1"
)

// fakeBackend is an in-memory Sudo service. Records start at version 0 and
// gain one version per accepted update. Per-claim versions grow when a
// claim's payload changes.
type fakeBackend struct {
	mu       sync.Mutex
	records  map[string]models.RemoteSudo
	seq      int
	handlers map[models.ChangeType]adapter.SubscriptionHandler

	updates      atomic.Int32
	subscribeErr error
	updateErr    error

	// subscribeGate, when set, holds every Subscribe call until closed.
	// Each held call first signals subscribeEntered.
	subscribeGate    chan struct{}
	subscribeEntered chan struct{}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		records:  make(map[string]models.RemoteSudo),
		handlers: make(map[models.ChangeType]adapter.SubscriptionHandler),
	}
}

func (b *fakeBackend) CreateSudo(context.Context) (models.RemoteSudo, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	ts := float64(1_700_000_000_000 + b.seq*1000)
	r := models.RemoteSudo{
		ID:               fmt.Sprintf("sudo-%d", b.seq),
		Claims:           []models.SecureClaim{},
		Objects:          []models.SecureObject{},
		Version:          0,
		CreatedAtEpochMs: ts,
		UpdatedAtEpochMs: ts,
		Owner:            testOwner,
	}
	b.records[r.ID] = r
	return r, nil
}

func (b *fakeBackend) GetSudo(_ context.Context, id string) (models.RemoteSudo, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, ok := b.records[id]
	if !ok {
		return models.RemoteSudo{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, id)
	}
	return r, nil
}

func (b *fakeBackend) ListSudos(_ context.Context, _ int, _ *string) (models.SudoPage, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	page := models.SudoPage{Items: make([]models.RemoteSudo, 0, len(b.records))}
	for _, r := range b.records {
		page.Items = append(page.Items, r)
	}
	return page, nil
}

func (b *fakeBackend) UpdateSudo(_ context.Context, req models.UpdateSudoRequest) (models.RemoteSudo, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.updateErr != nil {
		return models.RemoteSudo{}, b.updateErr
	}
	r, ok := b.records[req.ID]
	if !ok {
		return models.RemoteSudo{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, req.ID)
	}
	if r.Version != req.ExpectedVersion {
		return models.RemoteSudo{}, fmt.Errorf("%w: at %d", adapter.ErrVersionConflict, r.Version)
	}

	prevClaims := make(map[string]models.SecureClaim, len(r.Claims))
	for _, c := range r.Claims {
		prevClaims[c.Name] = c
	}
	prevObjects := make(map[string]models.SecureObject, len(r.Objects))
	for _, o := range r.Objects {
		prevObjects[o.Name] = o
	}

	claims := make([]models.SecureClaim, 0, len(req.Claims))
	for _, c := range req.Claims {
		if prev, ok := prevClaims[c.Name]; ok {
			c.Version = prev.Version
			if prev.Base64Data != c.Base64Data {
				c.Version++
			}
		}
		claims = append(claims, c)
	}
	objects := make([]models.SecureObject, 0, len(req.Objects))
	for _, o := range req.Objects {
		if prev, ok := prevObjects[o.Name]; ok {
			o.Version = prev.Version
			if prev.Key != o.Key {
				o.Version++
			}
		}
		objects = append(objects, o)
	}

	r.Claims = claims
	r.Objects = objects
	r.Version++
	r.UpdatedAtEpochMs += 1
	b.records[r.ID] = r
	b.updates.Add(1)
	return r, nil
}

func (b *fakeBackend) DeleteSudo(_ context.Context, id string, expectedVersion int) (models.RemoteSudo, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, ok := b.records[id]
	if !ok {
		return models.RemoteSudo{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, id)
	}
	if r.Version != expectedVersion {
		return models.RemoteSudo{}, fmt.Errorf("%w: at %d", adapter.ErrVersionConflict, r.Version)
	}
	delete(b.records, id)
	return r, nil
}

func (b *fakeBackend) Subscribe(_ context.Context, changeType models.ChangeType, owner string, handler adapter.SubscriptionHandler) (adapter.Subscription, error) {
	if b.subscribeGate != nil {
		b.subscribeEntered <- struct{}{}
		<-b.subscribeGate
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subscribeErr != nil {
		return nil, b.subscribeErr
	}
	if owner != testOwner {
		return nil, adapter.ErrUnauthorized
	}
	b.handlers[changeType] = handler
	return &fakeSubscription{backend: b, changeType: changeType, handler: handler}, nil
}

// put stores r as is, bypassing version checks.
func (b *fakeBackend) put(r models.RemoteSudo) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records[r.ID] = r
}

// drop deletes id without notifying anyone.
func (b *fakeBackend) drop(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.records, id)
}

func (b *fakeBackend) record(id string) (models.RemoteSudo, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.records[id]
	return r, ok
}

// subscribed reports whether changeType has a live subscription.
func (b *fakeBackend) subscribed(changeType models.ChangeType) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.handlers[changeType]
	return ok
}

// push delivers r to the changeType subscription synchronously.
func (b *fakeBackend) push(t *testing.T, changeType models.ChangeType, r models.RemoteSudo) {
	t.Helper()
	b.mu.Lock()
	h, ok := b.handlers[changeType]
	b.mu.Unlock()
	require.True(t, ok, "no subscription for %s", changeType)
	h.SudoReceived(r)
}

// terminate ends the changeType subscription from the service side.
func (b *fakeBackend) terminate(t *testing.T, changeType models.ChangeType, err error) {
	t.Helper()
	b.mu.Lock()
	h, ok := b.handlers[changeType]
	delete(b.handlers, changeType)
	b.mu.Unlock()
	require.True(t, ok, "no subscription for %s", changeType)
	h.Terminated(err)
}

type fakeSubscription struct {
	backend    *fakeBackend
	changeType models.ChangeType
	handler    adapter.SubscriptionHandler
}

func (s *fakeSubscription) Cancel() {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	if s.backend.handlers[s.changeType] == s.handler {
		delete(s.backend.handlers, s.changeType)
	}
}

// recordingBlobs wraps a memory store, failing uploads whose content type
// is a key of failUploads and recording deletions.
type recordingBlobs struct {
	*blobstore.MemoryStore

	mu          sync.Mutex
	failUploads map[string]error
	deleted     []string
}

func newRecordingBlobs() *recordingBlobs {
	return &recordingBlobs{
		MemoryStore: blobstore.NewMemoryStore("sudo-blobs", "eu-west-1"),
		failUploads: make(map[string]error),
	}
}

func (r *recordingBlobs) Upload(ctx context.Context, data []byte, contentType, key string) error {
	r.mu.Lock()
	err := r.failUploads[contentType]
	r.mu.Unlock()
	if err != nil {
		return err
	}
	return r.MemoryStore.Upload(ctx, data, contentType, key)
}

func (r *recordingBlobs) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	r.deleted = append(r.deleted, key)
	r.mu.Unlock()
	return r.MemoryStore.Delete(ctx, key)
}

func (r *recordingBlobs) failContentType(contentType string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failUploads[contentType] = err
}

func (r *recordingBlobs) deletedKeys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.deleted...)
}

func (r *recordingBlobs) keysWithPrefix(prefix string) []string {
	var out []string
	for _, k := range r.Keys() {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	return out
}

type testEnv struct {
	client   *Client
	backend  *fakeBackend
	blobs    *recordingBlobs
	crypto   crypto.Provider
	identity *mock.MockIdentityProvider
}

// newTestEnv builds a client over the fake backend, an in-memory key store
// and a disk cache in a temp dir. modify may adjust the dependencies.
func newTestEnv(t *testing.T, modify ...func(*Dependencies)) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	id := mock.NewMockIdentityProvider(ctrl)
	id.EXPECT().SubjectID(gomock.Any()).Return(testOwner, nil).AnyTimes()
	id.EXPECT().IdentityID(gomock.Any()).Return(testIdentityID, nil).AnyTimes()

	provider, err := crypto.NewProvider(store.NewMemoryKeyStore(), logger.Nop())
	require.NoError(t, err)

	env := &testEnv{
		backend:  newFakeBackend(),
		blobs:    newRecordingBlobs(),
		crypto:   provider,
		identity: id,
	}

	deps := Dependencies{
		Adapter:   env.backend,
		Crypto:    provider,
		BlobStore: env.blobs,
		Identity:  id,
		CacheDir:  t.TempDir(),
		Logger:    logger.Nop(),
	}
	for _, fn := range modify {
		fn(&deps)
	}

	env.client, err = New(deps)
	require.NoError(t, err)
	return env
}

// createSudo creates a profile with a title and, when avatar is non-nil, an
// avatar blob.
func (e *testEnv) createSudo(t *testing.T, title string, avatar []byte) models.Sudo {
	t.Helper()
	updates := []models.ClaimUpdate{models.NewStringClaimUpdate("title", title)}
	if avatar != nil {
		updates = append(updates, models.NewBlobClaimUpdate("avatar", avatar, "image/png"))
	}
	sudo, err := e.client.CreateSudo(context.Background(), updates)
	require.NoError(t, err)
	return sudo
}

type notification struct {
	changeType models.ChangeType
	sudo       models.Sudo
	// cachedVersion is the version ListSudos(CacheOnly) reported for the
	// notified id while the notification was being delivered; -1 when the
	// id was absent.
	cachedVersion int
}

type stateNotification struct {
	changeType models.ChangeType
	state      models.ConnectionState
}

// recordingSubscriber captures notifications and what the cache held at
// delivery time.
type recordingSubscriber struct {
	client *Client

	mu     sync.Mutex
	events []notification
	states []stateNotification
}

func (s *recordingSubscriber) SudoChanged(changeType models.ChangeType, sudo models.Sudo) {
	cachedVersion := -1
	if cached, err := s.client.ListSudos(context.Background(), models.CacheOnly); err == nil {
		for _, c := range cached {
			if c.ID == sudo.ID {
				cachedVersion = c.Version
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, notification{changeType: changeType, sudo: sudo, cachedVersion: cachedVersion})
}

func (s *recordingSubscriber) ConnectionStateChanged(changeType models.ChangeType, state models.ConnectionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = append(s.states, stateNotification{changeType: changeType, state: state})
}

func subscriberCount(env *testEnv, ct models.ChangeType) int {
	return len(env.client.registry.Subscribers(ct))
}

func (s *recordingSubscriber) snapshot() ([]notification, []stateNotification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notification(nil), s.events...), append([]stateNotification(nil), s.states...)
}
