package validation

import "errors"

var (
	// ErrValidationIssue is matched by every *Failure through errors.Is.
	ErrValidationIssue = errors.New("validation issue")

	// ErrDynamicValidationUnsupported is returned by every dynamic validation
	// attempt when the executable validation capability is not available.
	ErrDynamicValidationUnsupported = errors.New("dynamic validation is not supported")

	ErrRegistrySealed  = errors.New("method registry is sealed")
	ErrDuplicateMethod = errors.New("method contract already registered")
	ErrUnknownMethod   = errors.New("type has no such method")
	ErrInvalidSpec     = errors.New("invalid method contract")
)
