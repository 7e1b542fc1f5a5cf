// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validation

import (
	"errors"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-contract-guard/models"
)

// Kind tells where a Failure was detected.
type Kind int

const (
	// KindInstance: whole-instance validation on provisioning.
	KindInstance Kind = iota + 1

	// KindParameters: pre-check of a method call. The method body did not run.
	KindParameters

	// KindReturnValue: post-check of a method call. The method body already
	// ran and its side effects are not rolled back.
	KindReturnValue
)

// String returns the label used in failure summaries.
func (k Kind) String() string {
	switch k {
	case KindInstance:
		return "instance"
	case KindParameters:
		return "parameters"
	case KindReturnValue:
		return "return value"
	default:
		return "unknown"
	}
}

// Failure is the error raised when a validation call produced violations.
// It owns a copy of the violations and a summary computed at construction;
// it is never modified afterwards.
type Failure struct {
	id         uuid.UUID
	kind       Kind
	target     string
	violations []models.Violation
	summary    string
}

// Error returns the summary. It enumerates every violation.
func (f *Failure) Error() string {
	return f.summary
}

// Is makes errors.Is(err, ErrValidationIssue) hold for every *Failure.
func (f *Failure) Is(target error) bool {
	return target == ErrValidationIssue
}

// ID correlates the failure with its diagnostic log entries.
func (f *Failure) ID() uuid.UUID {
	return f.id
}

// Kind returns where the failure was detected.
func (f *Failure) Kind() Kind {
	return f.kind
}

// Target returns the validated type name, or "<type>.<method>" for method
// call failures.
func (f *Failure) Target() string {
	return f.target
}

// Violations returns a copy of the violations in engine order.
func (f *Failure) Violations() []models.Violation {
	return append([]models.Violation(nil), f.violations...)
}

// Len returns the number of violations.
func (f *Failure) Len() int {
	return len(f.violations)
}

// AfterExecution reports whether the method body already ran when the
// failure was detected.
func (f *Failure) AfterExecution() bool {
	return f.kind == KindReturnValue
}

// AsFailure extracts a *Failure from err's chain.
func AsFailure(err error) (*Failure, bool) {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure, true
	}
	return nil, false
}

// Response returns the transport representation of the failure.
func (f *Failure) Response() models.ViolationResponse {
	details := make([]models.ViolationDetail, 0, len(f.violations))
	for _, v := range f.violations {
		details = append(details, models.ViolationDetail{
			Path:       v.Path,
			Message:    v.Message,
			Constraint: v.Constraint,
		})
	}

	return models.ViolationResponse{
		FailureID:  f.id.String(),
		Kind:       f.kind.String(),
		Target:     f.target,
		Violations: details,
	}
}
