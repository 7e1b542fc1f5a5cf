// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validation

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contract-guard/internal/container"
	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/internal/validators"
	"github.com/MKhiriev/go-contract-guard/models"
)

// DynamicInterceptor wraps method calls with parameter and return value
// validation.
type DynamicInterceptor struct {
	// executable is nil when the capability is not supported; every call
	// then fails with ErrDynamicValidationUnsupported.
	executable validators.ExecutableEngine
	registry   *Registry
	aggregator *Aggregator
	logger     *logger.Logger
}

// NewDynamicInterceptor creates a DynamicInterceptor. executable may be nil.
func NewDynamicInterceptor(executable validators.ExecutableEngine, registry *Registry, aggregator *Aggregator, logger *logger.Logger) *DynamicInterceptor {
	return &DynamicInterceptor{
		executable: executable,
		registry:   registry,
		aggregator: aggregator,
		logger:     logger,
	}
}

// Supported reports whether the executable capability is available.
func (i *DynamicInterceptor) Supported() bool {
	return i.executable != nil
}

// Intercept implements container.MethodInterceptor:
//  1. the arguments are validated; on violations a KindParameters *Failure is
//     returned and proceed is not called;
//  2. proceed runs the method body; its error is returned unchanged;
//  3. the return value is validated; on violations a KindReturnValue
//     *Failure is returned although the body already ran.
//
// A method without a registered contract is passed through.
func (i *DynamicInterceptor) Intercept(ctx context.Context, receiver any, method models.MethodKey, args []any, proceed container.Proceed) (any, error) {
	if i.executable == nil {
		return nil, ErrDynamicValidationUnsupported
	}

	spec, ok := i.registry.Lookup(method)
	if !ok {
		return proceed(ctx, args)
	}

	violations, err := i.executable.ValidateParameters(ctx, receiver, spec, args)
	if err != nil {
		return nil, fmt.Errorf("error validating parameters of %s: %w", method, err)
	}
	if failure := i.aggregator.Executable(KindParameters, method, violations); failure != nil {
		i.logger.Debug().
			Str("failure_id", failure.ID().String()).
			Str("method", failure.Target()).
			Msg("call rejected before execution")
		return nil, failure
	}

	result, err := proceed(ctx, args)
	if err != nil {
		return result, err
	}

	violations, err = i.executable.ValidateReturnValue(ctx, receiver, spec, result)
	if err != nil {
		return nil, fmt.Errorf("error validating return value of %s: %w", method, err)
	}
	if failure := i.aggregator.Executable(KindReturnValue, method, violations); failure != nil {
		i.logger.Debug().
			Str("failure_id", failure.ID().String()).
			Str("method", failure.Target()).
			Msg("call failed after execution")
		return nil, failure
	}

	return result, nil
}
