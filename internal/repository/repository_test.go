// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sudo-profiles/internal/adapter"
	"github.com/MKhiriev/go-sudo-profiles/internal/logger"
	"github.com/MKhiriev/go-sudo-profiles/internal/mock"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

type stateChange struct {
	changeType models.ChangeType
	state      models.ConnectionState
}

type recordingDelegate struct {
	mu      sync.Mutex
	changes []models.RemoteSudo
	states  []stateChange
}

func (d *recordingDelegate) SudoChanged(_ models.ChangeType, sudo models.RemoteSudo) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.changes = append(d.changes, sudo)
}

func (d *recordingDelegate) ConnectionStateChanged(ct models.ChangeType, state models.ConnectionState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.states = append(d.states, stateChange{ct, state})
}

func (d *recordingDelegate) snapshot() ([]models.RemoteSudo, []stateChange) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]models.RemoteSudo(nil), d.changes...), append([]stateChange(nil), d.states...)
}

func newTestRepository(t *testing.T, pageSize int) (*sudoRepository, *mock.MockServerAdapter, *recordingDelegate) {
	t.Helper()
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	d := &recordingDelegate{}

	r, err := New(a, d, pageSize, logger.Nop())
	require.NoError(t, err)
	return r.(*sudoRepository), a, d
}

func strPtr(s string) *string { return &s }

func TestNew_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := New(nil, &recordingDelegate{}, 10, logger.Nop())
	assert.ErrorIs(t, err, models.ErrInvalidConfig)

	_, err = New(mock.NewMockServerAdapter(ctrl), nil, 10, logger.Nop())
	assert.ErrorIs(t, err, models.ErrInvalidConfig)

	r, err := New(mock.NewMockServerAdapter(ctrl), &recordingDelegate{}, 0, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 100, r.(*sudoRepository).pageSize)
}

func TestSudoRepository_ListSudosFollowsPages(t *testing.T) {
	r, a, _ := newTestRepository(t, 2)
	ctx := context.Background()

	gomock.InOrder(
		a.EXPECT().ListSudos(ctx, 2, nil).Return(models.SudoPage{
			Items:     []models.RemoteSudo{{ID: "a"}, {ID: "b"}},
			NextToken: strPtr("t1"),
		}, nil),
		a.EXPECT().ListSudos(ctx, 2, strPtr("t1")).Return(models.SudoPage{
			Items: []models.RemoteSudo{{ID: "c"}},
		}, nil),
	)

	all, err := r.ListSudos(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[2].ID)
}

func TestSudoRepository_ListSudosEmpty(t *testing.T) {
	r, a, _ := newTestRepository(t, 5)
	a.EXPECT().ListSudos(gomock.Any(), 5, nil).Return(models.SudoPage{}, nil)

	all, err := r.ListSudos(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestSudoRepository_ListSudosRepeatedToken(t *testing.T) {
	r, a, _ := newTestRepository(t, 1)
	a.EXPECT().ListSudos(gomock.Any(), 1, gomock.Any()).Return(models.SudoPage{NextToken: strPtr("same")}, nil).Times(2)

	_, err := r.ListSudos(context.Background())
	assert.ErrorIs(t, err, models.ErrFatal)
}

func TestSudoRepository_ErrorsAreMapped(t *testing.T) {
	r, a, _ := newTestRepository(t, 1)
	ctx := context.Background()

	a.EXPECT().CreateSudo(ctx).Return(models.RemoteSudo{}, fmt.Errorf("%w: nope", adapter.ErrUnauthorized))
	_, err := r.CreateSudo(ctx)
	assert.ErrorIs(t, err, models.ErrNotAuthorized)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	a.EXPECT().GetSudo(ctx, "x").Return(models.RemoteSudo{}, adapter.ErrNotFound)
	_, err = r.GetSudo(ctx, "x")
	assert.ErrorIs(t, err, models.ErrNotFound)

	a.EXPECT().UpdateSudo(ctx, gomock.Any()).Return(models.RemoteSudo{}, adapter.ErrVersionConflict)
	_, err = r.UpdateSudo(ctx, models.UpdateSudoRequest{ID: "x"})
	assert.ErrorIs(t, err, models.ErrVersionMismatch)

	a.EXPECT().DeleteSudo(ctx, "x", 2).Return(models.RemoteSudo{}, adapter.ErrRateLimited)
	_, err = r.DeleteSudo(ctx, "x", 2)
	assert.ErrorIs(t, err, models.ErrRateLimitExceeded)

	a.EXPECT().ListSudos(ctx, 1, nil).Return(models.SudoPage{}, adapter.ErrServerError)
	_, err = r.ListSudos(ctx)
	assert.ErrorIs(t, err, models.ErrServiceError)
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "forbidden", err: adapter.ErrForbidden, want: models.ErrNotAuthorized},
		{name: "entitlements", err: adapter.ErrInsufficientEntitlements, want: models.ErrInsufficientEntitlements},
		{name: "invalid argument", err: adapter.ErrInvalidArgument, want: models.ErrInvalidInput},
		{name: "bad request", err: adapter.ErrBadRequest, want: models.ErrInvalidInput},
		{name: "bad gateway", err: adapter.ErrBadGateway, want: models.ErrServiceError},
		{name: "unknown graphql", err: adapter.ErrGraphQL, want: models.ErrServiceError},
		{name: "invalid response", err: adapter.ErrInvalidResponse, want: models.ErrFatal},
		{name: "transport", err: adapter.ErrTransport, want: models.ErrRequestFailed},
		{name: "not signed in passes through", err: models.ErrNotSignedIn, want: models.ErrNotSignedIn},
		{name: "cancelled", err: context.Canceled, want: context.Canceled},
		{name: "unknown", err: errors.New("mystery"), want: models.ErrRequestFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapAdapterError(tt.err), tt.want)
		})
	}
	assert.NoError(t, mapAdapterError(nil))
}
