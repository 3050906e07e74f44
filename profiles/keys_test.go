// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package profiles

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sudo-profiles/internal/mock"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

func TestClient_KeyLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.client.CurrentKeyID(ctx)
	require.ErrorIs(t, err, models.ErrNotFound)

	keyID, err := env.client.GenerateEncryptionKey(ctx)
	require.NoError(t, err)

	current, err := env.client.CurrentKeyID(ctx)
	require.NoError(t, err)
	assert.Equal(t, keyID, current)
}

func TestClient_ExportImportKeys(t *testing.T) {
	ctx := context.Background()
	src := newTestEnv(t)
	sudo := src.createSudo(t, "A", nil)
	remote, _ := src.backend.record(sudo.ID)

	archive, err := src.client.ExportKeys(ctx)
	require.NoError(t, err)

	dst := newTestEnv(t)
	require.NoError(t, dst.client.ImportKeys(ctx, archive))
	dst.backend.put(remote)

	got, err := dst.client.GetSudo(ctx, sudo.ID, models.RemoteOnly)
	require.NoError(t, err)
	title, ok := got.StringClaim("title")
	require.True(t, ok)
	assert.Equal(t, "A", title)

	srcKey, err := src.client.CurrentKeyID(ctx)
	require.NoError(t, err)
	dstKey, err := dst.client.CurrentKeyID(ctx)
	require.NoError(t, err)
	assert.Equal(t, srcKey, dstKey)
}

func TestClient_ImportKeys_InvalidArchive(t *testing.T) {
	env := newTestEnv(t)

	err := env.client.ImportKeys(context.Background(), []byte("{"))
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestClient_Reset(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sub := subscribe(t, env, "s1")
	sudo := env.createSudo(t, "A", []byte("avatar"))

	require.NoError(t, env.client.Reset(ctx))

	for _, ct := range models.AllChangeTypes {
		assert.False(t, env.backend.subscribed(ct), ct)
		assert.Zero(t, subscriberCount(env, ct), ct)
	}

	_, err := env.client.ListSudos(ctx, models.CacheOnly)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = env.client.GetBlob(ctx, sudo.Claims["avatar"], models.CacheOnly)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = env.client.CurrentKeyID(ctx)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// the remote record is no longer readable without its key
	_, err = env.client.GetSudo(ctx, sudo.ID, models.RemoteOnly)
	assert.ErrorIs(t, err, models.ErrBadData)

	_, states := sub.snapshot()
	assert.NotContains(t, states, stateNotification{models.ChangeTypeUpdate, models.ConnectionStateDisconnected})
}

func TestClient_Reset_KeyFailureStillClearsCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockProvider(ctrl)
	provider.EXPECT().Reset(gomock.Any()).Return(errors.New("keychain locked"))

	env := newTestEnv(t, func(d *Dependencies) { d.Crypto = provider })
	ctx := context.Background()
	env.client.storeList([]models.Sudo{{ID: "sudo-1", Version: 1}})

	err := env.client.Reset(ctx)
	require.ErrorIs(t, err, models.ErrFatal)

	_, err = env.client.ListSudos(ctx, models.CacheOnly)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
