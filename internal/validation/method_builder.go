package validation

import (
	"reflect"

	"github.com/MKhiriev/go-contract-guard/models"
)

// MethodBuilder declares the contract of one method.
type MethodBuilder struct {
	spec models.MethodSpec
}

// Method starts the contract of method name on receiver type T.
func Method[T any](name string) *MethodBuilder {
	return &MethodBuilder{
		spec: models.MethodSpec{Key: models.NewMethodKey(reflect.TypeFor[T](), name)},
	}
}

// Param declares the next parameter with the given constraint rules.
func (b *MethodBuilder) Param(name, constraint string) *MethodBuilder {
	b.spec.Params = append(b.spec.Params, models.ParamSpec{Name: name, Constraint: constraint})
	return b
}

// CascadeParam declares the next parameter with constraint rules and cascaded
// validation of its own struct constraints.
func (b *MethodBuilder) CascadeParam(name, constraint string) *MethodBuilder {
	b.spec.Params = append(b.spec.Params, models.ParamSpec{Name: name, Constraint: constraint, Cascade: true})
	return b
}

// Unconstrained declares the next parameter without constraints.
func (b *MethodBuilder) Unconstrained(name string) *MethodBuilder {
	return b.Param(name, "")
}

// Returns declares the constraint rules of the return value.
func (b *MethodBuilder) Returns(constraint string) *MethodBuilder {
	b.spec.Return = models.ReturnSpec{Constraint: constraint}
	return b
}

// CascadeReturn declares constraint rules of the return value and cascaded
// validation of its own struct constraints.
func (b *MethodBuilder) CascadeReturn(constraint string) *MethodBuilder {
	b.spec.Return = models.ReturnSpec{Constraint: constraint, Cascade: true}
	return b
}

// Spec returns the built contract.
func (b *MethodBuilder) Spec() models.MethodSpec {
	spec := b.spec
	spec.Params = append([]models.ParamSpec(nil), b.spec.Params...)
	return spec
}
