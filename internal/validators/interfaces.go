// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the constraint engine used by the validation
// core: the component that, given an object or a method invocation, returns
// the set of violated constraints.
//
// Core concepts:
//   - Engine: validates whole instances against their struct tag constraints,
//     descending into nested structs. Supports optional field-level scoping.
//   - ExecutableEngine: validates method parameters and return values against
//     a declared models.MethodSpec. The capability is optional and is obtained
//     once through Engine.ForExecutables.
//
// The engine never decides whether something should be validated; that is the
// job of the validation package. It only reports what is violated.
package validators

import (
	"context"

	"github.com/MKhiriev/go-contract-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// Engine validates whole instances.
type Engine interface {
	// Validate returns the violations of obj, optionally restricted to the
	// named fields. An empty result means obj is valid. A non-nil error means
	// the engine could not validate obj at all (nil or non-struct input).
	Validate(ctx context.Context, obj any, fields ...string) ([]models.Violation, error)

	// ForExecutables returns the method-level validation capability or an
	// error when it is not available in the current environment.
	ForExecutables() (ExecutableEngine, error)
}

// ExecutableEngine validates method invocations against their declared
// contract.
type ExecutableEngine interface {
	// ValidateParameters returns the violations of args against the
	// parameter constraints of method.
	ValidateParameters(ctx context.Context, receiver any, method models.MethodSpec, args []any) ([]models.Violation, error)

	// ValidateReturnValue returns the violations of returnValue against the
	// return value constraints of method.
	ValidateReturnValue(ctx context.Context, receiver any, method models.MethodSpec, returnValue any) ([]models.Violation, error)
}
