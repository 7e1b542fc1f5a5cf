package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid transport settings
	// (for example, no listen address at all or a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidValidationConfigs indicates invalid validation core settings
	// (for example, an empty message locale).
	ErrInvalidValidationConfigs = errors.New("invalid validation configuration")
	// ErrInvalidAccountConfigs indicates invalid sample account settings
	// (for example, empty realm or negative minimal age).
	ErrInvalidAccountConfigs = errors.New("invalid account configuration")
	// ErrInvalidStorageConfigs indicates an unknown storage driver or a SQL
	// driver without a DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates an empty token issuer or a
	// non-positive token lifetime.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
