// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an account with the same login
	// is already stored.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoAccountWasFound is returned when no account matches the login.
	ErrNoAccountWasFound = errors.New("no account was found")
)

// Low-level database operation errors.
var (
	// ErrUnsupportedDriver is returned for a storage driver with no backend.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")

	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan account row")
)
