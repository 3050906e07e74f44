// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChangeType identifies the kind of push notification a subscriber is
// interested in.
type ChangeType string

const (
	ChangeTypeCreate ChangeType = "create"
	ChangeTypeUpdate ChangeType = "update"
	ChangeTypeDelete ChangeType = "delete"
)

// AllChangeTypes lists every change type in a stable order.
var AllChangeTypes = []ChangeType{ChangeTypeCreate, ChangeTypeUpdate, ChangeTypeDelete}

// ConnectionState is the connectivity of a push subscription.
type ConnectionState string

const (
	ConnectionStateConnected    ConnectionState = "connected"
	ConnectionStateDisconnected ConnectionState = "disconnected"
)

// CachePolicy selects where a read is served from.
type CachePolicy int

const (
	// CacheOnly serves the read from the local cache only.
	CacheOnly CachePolicy = iota + 1
	// RemoteOnly always goes to the remote service and refreshes the cache.
	RemoteOnly
)

// String implements fmt.Stringer.
func (p CachePolicy) String() string {
	switch p {
	case CacheOnly:
		return "cacheOnly"
	case RemoteOnly:
		return "remoteOnly"
	default:
		return "unknown"
	}
}
