// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by key store methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned when no key with the requested id exists.
	ErrKeyNotFound = errors.New("symmetric key was not found")

	// ErrNoCurrentKey is returned when the store holds no current key.
	ErrNoCurrentKey = errors.New("no current symmetric key")

	// ErrInvalidKey is returned when a key has no id or no material.
	ErrInvalidKey = errors.New("invalid symmetric key")
)

// Low-level database operation errors. These are wrapped by key store
// methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan symmetric key rows")
)
