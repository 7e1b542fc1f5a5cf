package models

import "reflect"

// Violation describes a single failed constraint occurrence reported by the
// constraint engine. Violations are produced exclusively by the engine and
// are treated as read-only values by the rest of the application.
type Violation struct {
	// RootType is the type that owns the violated constraint: the validated
	// struct for instance validation, or the receiver type for parameter and
	// return value validation.
	RootType reflect.Type `json:"-"`

	// Path is the property path of the violated value relative to RootType
	// (e.g. "Address.Street", "Register.request.Email", "Register.<return value>").
	Path string `json:"path"`

	// InvalidValue is the value that failed the constraint.
	InvalidValue any `json:"invalid_value"`

	// Message is the human-readable explanation of the violated constraint.
	Message string `json:"message"`

	// Constraint is the name of the violated constraint as declared in the
	// struct tag or method spec (e.g. "required", "min").
	Constraint string `json:"constraint"`
}

// RootTypeName returns the canonical name of RootType: the package-qualified
// name for named types, the type literal otherwise and "<nil>" when unknown.
func (v Violation) RootTypeName() string {
	return TypeName(v.RootType)
}

// TypeName returns the canonical, pointer-free name of t.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
