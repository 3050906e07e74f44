// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync daemon runtime.
//
// It primes the local cache from the remote service, keeps it current
// through push subscriptions and the background refresh worker, and tears
// everything down when the process is asked to stop.
package client
