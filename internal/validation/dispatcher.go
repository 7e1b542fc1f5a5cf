// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validation

import (
	"context"
	"fmt"
	"reflect"

	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/internal/validators"
	"github.com/MKhiriev/go-contract-guard/models"
)

// StaticDispatcher validates whole instances.
type StaticDispatcher struct {
	engine     validators.Engine
	classifier *Classifier
	aggregator *Aggregator

	// prefilter skips instances of non-candidate types without calling the
	// engine. It only saves work: the engine finds nothing on such types.
	prefilter bool

	logger *logger.Logger
}

// NewStaticDispatcher creates a StaticDispatcher.
func NewStaticDispatcher(engine validators.Engine, classifier *Classifier, aggregator *Aggregator, prefilter bool, logger *logger.Logger) *StaticDispatcher {
	return &StaticDispatcher{
		engine:     engine,
		classifier: classifier,
		aggregator: aggregator,
		prefilter:  prefilter,
		logger:     logger,
	}
}

// ValidateInstance validates every constraint reachable from instance and
// returns a *Failure when any is violated. The instance is never modified.
func (d *StaticDispatcher) ValidateInstance(ctx context.Context, instance any) error {
	instanceType := reflect.TypeOf(instance)
	if d.prefilter && !d.classifier.IsStaticCandidate(instanceType) {
		return nil
	}

	violations, err := d.engine.Validate(ctx, instance)
	if err != nil {
		return fmt.Errorf("error validating instance of %s: %w", models.TypeName(instanceType), err)
	}

	if failure := d.aggregator.Instance(instanceType, violations); failure != nil {
		d.logger.Debug().
			Str("failure_id", failure.ID().String()).
			Str("type", failure.Target()).
			Int("violations", failure.Len()).
			Msg("instance failed static validation")
		return failure
	}

	return nil
}

// OnProvision implements container.ProvisionListener.
func (d *StaticDispatcher) OnProvision(ctx context.Context, instance any) error {
	return d.ValidateInstance(ctx, instance)
}
