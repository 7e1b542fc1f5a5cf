// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"reflect"

	"github.com/MKhiriev/go-contract-guard/models"
)

// ValidateParameters validates every constrained parameter of method in
// position order. Parameters without a spec entry are not validated.
func (e *PlaygroundEngine) ValidateParameters(ctx context.Context, receiver any, method models.MethodSpec, args []any) ([]models.Violation, error) {
	if len(method.Params) > len(args) {
		return nil, fmt.Errorf("%w: %s declares %d, got %d", ErrParameterCountMismatch, method.Key, len(method.Params), len(args))
	}

	root := rootType(receiver, method)
	var result []models.Violation
	for i, param := range method.Params {
		if !param.Constrained() {
			continue
		}

		prefix := method.Key.Name + "." + method.ParamName(i)
		violations, err := e.validateValue(ctx, root, prefix, args[i], param.Constraint, param.Cascade)
		if err != nil {
			return nil, err
		}
		result = append(result, violations...)
	}

	return result, nil
}

// ValidateReturnValue validates returnValue against the return spec of method.
func (e *PlaygroundEngine) ValidateReturnValue(ctx context.Context, receiver any, method models.MethodSpec, returnValue any) ([]models.Violation, error) {
	if !method.Return.Constrained() {
		return nil, nil
	}

	prefix := method.Key.Name + "." + models.ReturnValuePath
	return e.validateValue(ctx, rootType(receiver, method), prefix, returnValue, method.Return.Constraint, method.Return.Cascade)
}

// validateValue applies constraint to value and, when cascade is set and
// value holds a struct, validates the struct's own constraints and those of
// its cascade-marked fields.
//
// Constraints on struct values are presence rules only: a nil pointer fails
// them, a non-nil struct is left to cascade.
func (e *PlaygroundEngine) validateValue(ctx context.Context, root reflect.Type, prefix string, value any, constraint string, cascade bool) ([]models.Violation, error) {
	var result []models.Violation

	if constraint != "" && !isStructValue(value) {
		violations, err := e.violations(root, nil, prefix, e.validate.VarCtx(ctx, value, constraint))
		if err != nil {
			return nil, err
		}
		result = append(result, violations...)
	}

	if cascade && isStructValue(value) {
		violations, err := e.violations(root, derefType(reflect.TypeOf(value)), prefix, e.validate.StructCtx(ctx, value))
		if err != nil {
			return nil, err
		}
		result = append(result, violations...)
	}

	return result, nil
}

// isStructValue reports whether value is a struct or a non-nil pointer chain
// to a struct. time.Time is treated as a scalar.
func isStructValue(value any) bool {
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	return v.Kind() == reflect.Struct && v.Type() != timeType
}

func rootType(receiver any, method models.MethodSpec) reflect.Type {
	if method.Key.Type != nil {
		return method.Key.Type
	}
	return reflect.TypeOf(receiver)
}
