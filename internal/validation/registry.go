// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validation

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-contract-guard/models"
)

// Registry holds the declared method contracts. Contracts are registered at
// startup; Seal freezes the registry, after which it is only read and needs
// no locking.
type Registry struct {
	mu     sync.RWMutex
	specs  map[models.MethodKey]models.MethodSpec
	byType map[reflect.Type][]models.MethodKey
	sealed atomic.Bool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		specs:  make(map[models.MethodKey]models.MethodSpec),
		byType: make(map[reflect.Type][]models.MethodKey),
	}
}

// Register adds method contracts. The method must exist on the receiver type
// (or on its pointer type) and must not be registered twice.
func (r *Registry) Register(specs ...models.MethodSpec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return ErrRegistrySealed
	}

	for _, spec := range specs {
		if spec.Key.Type == nil || spec.Key.Name == "" {
			return fmt.Errorf("%w: missing receiver type or method name", ErrInvalidSpec)
		}
		key := models.NewMethodKey(spec.Key.Type, spec.Key.Name)
		if !hasMethod(key) {
			return fmt.Errorf("%w: %s", ErrUnknownMethod, key)
		}
		if _, exists := r.specs[key]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateMethod, key)
		}

		spec.Key = key
		r.specs[key] = spec
		r.byType[key.Type] = append(r.byType[key.Type], key)
	}

	return nil
}

// Seal freezes the registry.
func (r *Registry) Seal() {
	r.mu.Lock()
	r.sealed.Store(true)
	r.mu.Unlock()
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	return r.sealed.Load()
}

// Lookup returns the contract of key.
func (r *Registry) Lookup(key models.MethodKey) (models.MethodSpec, bool) {
	if !r.sealed.Load() {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}

	spec, ok := r.specs[models.NewMethodKey(key.Type, key.Name)]
	return spec, ok
}

// Methods returns the contracts registered for t in registration order.
func (r *Registry) Methods(t reflect.Type) []models.MethodSpec {
	if !r.sealed.Load() {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}

	t = derefType(t)
	keys := r.byType[t]
	specs := make([]models.MethodSpec, 0, len(keys))
	for _, key := range keys {
		specs = append(specs, r.specs[key])
	}
	return specs
}

func hasMethod(key models.MethodKey) bool {
	if _, ok := key.Type.MethodByName(key.Name); ok {
		return true
	}
	if key.Type.Kind() == reflect.Interface {
		return false
	}
	_, ok := reflect.PointerTo(key.Type).MethodByName(key.Name)
	return ok
}

func derefType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
