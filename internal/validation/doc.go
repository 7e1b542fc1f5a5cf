// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validation is the validation dispatch and interception engine.
//
// It decides which types and methods are subject to validation, validates
// instances when the container provisions them (static validation), wraps
// calls of contracted methods with a pre/post validation boundary (dynamic
// validation) and turns violation sets reported by the constraint engine
// into a single *Failure.
//
// Declaring constraints:
//
//	type Settings struct {
//	    Realm  string  `validate:"required"`
//	    Limits *Limits `cascade:""`
//	}
//
//	registry := validation.NewRegistry()
//	registry.Register(validation.Method[*accountService]("Register").
//	    CascadeParam("request", "required").
//	    CascadeReturn("").
//	    Spec())
//
// Static candidates are types declaring at least one field with a `validate`
// tag or a `cascade` marker. Dynamic candidates are methods whose registered
// contract constrains a parameter or the return value.
//
// Failures:
//   - *Failure (errors.Is(err, ErrValidationIssue)): constraint violations.
//     Failure.Kind tells a pre-check failure, where the method body never
//     ran, from a post-check failure, where it already ran.
//   - ErrDynamicValidationUnsupported: the executable capability is absent.
package validation
