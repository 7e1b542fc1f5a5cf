package models

import (
	"fmt"
	"reflect"
)

// ReturnValuePath is the path segment used for violations of a method's
// return value.
const ReturnValuePath = "<return value>"

// MethodKey identifies a method of a type. Pointer receivers are normalised
// to their element type so that T and *T share one key.
type MethodKey struct {
	// Type is the receiver type.
	Type reflect.Type

	// Name is the method name.
	Name string
}

// NewMethodKey builds a normalised MethodKey for the method name of t.
func NewMethodKey(t reflect.Type, name string) MethodKey {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return MethodKey{Type: t, Name: name}
}

// String returns "<type>.<method>".
func (k MethodKey) String() string {
	return fmt.Sprintf("%s.%s", TypeName(k.Type), k.Name)
}

// ParamSpec declares the constraints of one method parameter.
type ParamSpec struct {
	// Name is used in violation paths; "arg<N>" is used when empty.
	Name string

	// Constraint holds validator tag rules applied to the argument value
	// (e.g. "required,email"). Empty means no constraint.
	Constraint string

	// Cascade requests validation of the argument's own struct constraints.
	Cascade bool
}

// Constrained reports whether the parameter carries a constraint or a
// cascade marker.
func (p ParamSpec) Constrained() bool {
	return p.Constraint != "" || p.Cascade
}

// ReturnSpec declares the constraints of a method return value.
type ReturnSpec struct {
	// Constraint holds validator tag rules applied to the return value.
	Constraint string

	// Cascade requests validation of the returned struct's own constraints.
	Cascade bool
}

// Constrained reports whether the return value carries a constraint or a
// cascade marker.
func (r ReturnSpec) Constrained() bool {
	return r.Constraint != "" || r.Cascade
}

// MethodSpec is the declared validation contract of a method: one ParamSpec
// per parameter position and a ReturnSpec. Context parameters are not part
// of the contract and must not be listed.
type MethodSpec struct {
	Key    MethodKey
	Params []ParamSpec
	Return ReturnSpec
}

// ParamName returns the path segment of the parameter at position i.
func (s MethodSpec) ParamName(i int) string {
	if i < len(s.Params) && s.Params[i].Name != "" {
		return s.Params[i].Name
	}
	return fmt.Sprintf("arg%d", i)
}
