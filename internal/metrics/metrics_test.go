// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sudo-profiles/models"
)

func TestMetrics_Counters(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	m.CacheWriteFailed(CacheSudos, "set")
	m.CacheWriteFailed(CacheSudos, "set")
	m.CacheWriteFailed(CacheBlobs, "remove")
	assert.InDelta(t, 2, testutil.ToFloat64(m.cacheWriteFailures.WithLabelValues(CacheSudos, "set")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.cacheWriteFailures.WithLabelValues(CacheBlobs, "remove")), 0)

	m.NotificationsDelivered(models.ChangeTypeUpdate, 3)
	m.NotificationsDelivered(models.ChangeTypeUpdate, 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.notifications.WithLabelValues("update")), 0)

	m.BlobTransfer(TransferUpload, nil)
	m.BlobTransfer(TransferUpload, errors.New("boom"))
	assert.InDelta(t, 1, testutil.ToFloat64(m.blobTransfers.WithLabelValues(TransferUpload, "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.blobTransfers.WithLabelValues(TransferUpload, "error")), 0)

	m.Disconnected(models.ChangeTypeDelete)
	assert.InDelta(t, 1, testutil.ToFloat64(m.disconnections.WithLabelValues("delete")), 0)
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.CacheWriteFailed(CacheSudos, "set")
		m.NotificationsDelivered(models.ChangeTypeCreate, 1)
		m.BlobTransfer(TransferDelete, nil)
		m.Disconnected(models.ChangeTypeCreate)
	})
}
