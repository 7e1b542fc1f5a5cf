// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validation

import (
	"context"
	"reflect"

	"github.com/MKhiriev/go-contract-guard/internal/config"
	"github.com/MKhiriev/go-contract-guard/internal/container"
	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/internal/validators"
	"github.com/MKhiriev/go-contract-guard/models"
)

// Service bundles static validation, dynamic validation and candidate
// classification behind one object.
type Service struct {
	registry    *Registry
	classifier  *Classifier
	dispatcher  *StaticDispatcher
	interceptor *DynamicInterceptor

	cfg    config.Validation
	logger *logger.Logger
}

// NewService builds a Service over engine and the contracts of registry.
//
// The executable capability is requested from engine exactly once. When it
// is unavailable, or cfg.DisableDynamic is set, dynamic validation is off for
// the whole process: Intercept always returns
// ErrDynamicValidationUnsupported and Install binds no interceptor.
func NewService(engine validators.Engine, registry *Registry, cfg config.Validation, logger *logger.Logger) *Service {
	aggregator := NewAggregator(logger)
	classifier := NewClassifier(registry)

	var executable validators.ExecutableEngine
	if cfg.DisableDynamic {
		logger.Info().Msg("dynamic validation disabled by configuration")
	} else {
		exec, err := engine.ForExecutables()
		if err != nil {
			logger.Info().Msg("unable to create the dynamic validator, support for dynamic validation disabled")
			logger.Debug().Err(err).Msg("executable validation capability unavailable")
		} else {
			executable = exec
		}
	}

	return &Service{
		registry:    registry,
		classifier:  classifier,
		dispatcher:  NewStaticDispatcher(engine, classifier, aggregator, !cfg.DisablePrefilter, logger),
		interceptor: NewDynamicInterceptor(executable, registry, aggregator, logger),
		cfg:         cfg,
		logger:      logger,
	}
}

// ValidateInstance validates instance as a whole.
func (s *Service) ValidateInstance(ctx context.Context, instance any) error {
	return s.dispatcher.ValidateInstance(ctx, instance)
}

// Intercept validates a method call around proceed.
func (s *Service) Intercept(ctx context.Context, receiver any, method models.MethodKey, args []any, proceed container.Proceed) (any, error) {
	return s.interceptor.Intercept(ctx, receiver, method, args, proceed)
}

// DynamicValidationSupported reports whether method calls can be validated.
func (s *Service) DynamicValidationSupported() bool {
	return s.interceptor.Supported()
}

// IsStaticCandidate reports whether instances of t need static validation.
func (s *Service) IsStaticCandidate(t reflect.Type) bool {
	return s.classifier.IsStaticCandidate(t)
}

// IsDynamicCandidate reports whether calls of method need dynamic validation.
func (s *Service) IsDynamicCandidate(method models.MethodKey) bool {
	return s.classifier.IsDynamicCandidate(method)
}

// IsDynamicTypeCandidate reports whether any method of t needs dynamic
// validation.
func (s *Service) IsDynamicTypeCandidate(t reflect.Type) bool {
	return s.classifier.IsDynamicTypeCandidate(t)
}
