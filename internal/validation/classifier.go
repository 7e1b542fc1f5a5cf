// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/MKhiriev/go-contract-guard/internal/validators"
	"github.com/MKhiriev/go-contract-guard/models"
)

// CascadeTag marks a field whose value must be validated recursively.
const CascadeTag = validators.CascadeTag

// Classifier decides which types and methods are validation candidates.
// Results are pure functions of declared metadata; once the registry is
// sealed they are memoised for the lifetime of the process.
type Classifier struct {
	registry *Registry

	types   sync.Map // reflect.Type -> models.Classification
	methods sync.Map // models.MethodKey -> bool
}

// NewClassifier creates a Classifier reading method contracts from registry.
func NewClassifier(registry *Registry) *Classifier {
	return &Classifier{registry: registry}
}

// IsStaticCandidate reports whether a declared field of t carries a
// constraint or a cascade marker. Embedded structs are not descended into:
// each type in a hierarchy is classified on its own declarations.
func (c *Classifier) IsStaticCandidate(t reflect.Type) bool {
	return c.Classify(t).Static
}

// IsDynamicTypeCandidate reports whether any registered method of t is a
// dynamic candidate.
func (c *Classifier) IsDynamicTypeCandidate(t reflect.Type) bool {
	return c.Classify(t).Dynamic
}

// IsDynamicCandidate reports whether the contract of key constrains a
// parameter at any position or the return value.
func (c *Classifier) IsDynamicCandidate(key models.MethodKey) bool {
	key = models.NewMethodKey(key.Type, key.Name)
	if cached, ok := c.methods.Load(key); ok {
		return cached.(bool)
	}

	spec, ok := c.registry.Lookup(key)
	candidate := ok && isDynamicSpec(spec)

	if c.registry.Sealed() {
		c.methods.Store(key, candidate)
	}
	return candidate
}

// Classify returns both eligibility bits of t.
func (c *Classifier) Classify(t reflect.Type) models.Classification {
	t = derefType(t)
	if t == nil {
		return models.Classification{}
	}
	if cached, ok := c.types.Load(t); ok {
		return cached.(models.Classification)
	}

	classification := models.Classification{
		Static:  hasConstrainedField(t),
		Dynamic: c.hasDynamicMethod(t),
	}

	if c.registry.Sealed() {
		c.types.Store(t, classification)
	}
	return classification
}

func (c *Classifier) hasDynamicMethod(t reflect.Type) bool {
	for _, spec := range c.registry.Methods(t) {
		if c.IsDynamicCandidate(spec.Key) {
			return true
		}
	}
	return false
}

func isDynamicSpec(spec models.MethodSpec) bool {
	for _, param := range spec.Params {
		if param.Constrained() {
			return true
		}
	}
	return spec.Return.Constrained()
}

func hasConstrainedField(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}

	for i := range t.NumField() {
		field := t.Field(i)
		if hasConstraint(field.Tag) || validators.HasCascadeMarker(field.Tag) {
			return true
		}
	}
	return false
}

func hasConstraint(tag reflect.StructTag) bool {
	rules := strings.TrimSpace(tag.Get(validators.ConstraintTag))
	return rules != "" && rules != "-"
}
