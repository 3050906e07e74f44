// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus counters for the profile client.
//
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-sudo-profiles/models"
)

const namespace = "sudo_profiles"

// Cache names used as label values.
const (
	CacheSudos = "sudos"
	CacheBlobs = "blobs"
)

// Blob transfer operations used as label values.
const (
	TransferUpload   = "upload"
	TransferDownload = "download"
	TransferDelete   = "delete"
)

type Metrics struct {
	cacheWriteFailures *prometheus.CounterVec
	notifications      *prometheus.CounterVec
	blobTransfers      *prometheus.CounterVec
	disconnections     *prometheus.CounterVec
}

// New creates the counters and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		cacheWriteFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_write_failures_total",
			Help:      "Cache writes that failed after a successful remote operation.",
		}, []string{"cache", "op"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_delivered_total",
			Help:      "Subscriber notifications delivered, by change type.",
		}, []string{"change_type"}),
		blobTransfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blob_transfers_total",
			Help:      "Blob store transfers, by operation and result.",
		}, []string{"op", "result"}),
		disconnections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "subscription_disconnections_total",
			Help:      "Push subscriptions terminated by the transport.",
		}, []string{"change_type"}),
	}

	for _, c := range []prometheus.Collector{m.cacheWriteFailures, m.notifications, m.blobTransfers, m.disconnections} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// CacheWriteFailed counts a swallowed cache write failure.
func (m *Metrics) CacheWriteFailed(cache, op string) {
	if m == nil {
		return
	}
	m.cacheWriteFailures.WithLabelValues(cache, op).Inc()
}

// NotificationsDelivered counts n notifications for changeType.
func (m *Metrics) NotificationsDelivered(changeType models.ChangeType, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.notifications.WithLabelValues(string(changeType)).Add(float64(n))
}

// BlobTransfer counts one transfer. A nil err is a success.
func (m *Metrics) BlobTransfer(op string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.blobTransfers.WithLabelValues(op, result).Inc()
}

// Disconnected counts a transport initiated subscription termination.
func (m *Metrics) Disconnected(changeType models.ChangeType) {
	if m == nil {
		return
	}
	m.disconnections.WithLabelValues(string(changeType)).Inc()
}
