// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/models"
)

// Aggregator turns a non-empty violation set into a single *Failure and
// reports the per-violation breakdown to the logger.
//
// Violations keep the order the engine produced them in; none is dropped,
// merged or sorted.
type Aggregator struct {
	logger *logger.Logger
}

// NewAggregator creates an Aggregator logging diagnostics to logger.
func NewAggregator(logger *logger.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// Instance aggregates the violations of a whole-instance validation of a
// value of type target. It returns nil when violations is empty.
//
// Summary layout:
//
//	Constraint violations on <type>
//		<path> - <message>, but <value> was found.
func (a *Aggregator) Instance(target reflect.Type, violations []models.Violation) *Failure {
	if len(violations) == 0 {
		return nil
	}

	name := models.TypeName(target)

	var sb strings.Builder
	sb.WriteString("Constraint violations on ")
	sb.WriteString(name)
	sb.WriteString("\n")
	for _, v := range violations {
		fmt.Fprintf(&sb, "\t%s - %s, but %v was found.\n", v.Path, v.Message, v.InvalidValue)
	}

	return a.newFailure(KindInstance, name, violations, sb.String())
}

// Executable aggregates the violations of a parameter (KindParameters) or
// return value (KindReturnValue) validation of method. It returns nil when
// violations is empty.
//
// Summary layout:
//
//	Constraint violations on <parameters|return value> of <type>.<method>
//		<index> - <type>.<path> - <message>, but <value> was found.
func (a *Aggregator) Executable(kind Kind, method models.MethodKey, violations []models.Violation) *Failure {
	if len(violations) == 0 {
		return nil
	}

	target := method.String()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Constraint violations on %s of %s\n", kind, target)
	for i, v := range violations {
		fmt.Fprintf(&sb, "\t%d - %s.%s - %s, but %v was found.\n", i, v.RootTypeName(), v.Path, v.Message, v.InvalidValue)
	}

	return a.newFailure(kind, target, violations, sb.String())
}

func (a *Aggregator) newFailure(kind Kind, target string, violations []models.Violation, summary string) *Failure {
	failure := &Failure{
		id:         uuid.New(),
		kind:       kind,
		target:     target,
		violations: append([]models.Violation(nil), violations...),
		summary:    strings.TrimSuffix(summary, "\n"),
	}

	for i, v := range failure.violations {
		a.logger.Debug().
			Str("failure_id", failure.id.String()).
			Str("kind", kind.String()).
			Int("violation", i).
			Str("path", v.RootTypeName()+"."+v.Path).
			Str("constraint", v.Constraint).
			Str("invalid_value", fmt.Sprint(v.InvalidValue)).
			Msg(v.Message)
	}

	return failure
}
