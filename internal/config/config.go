// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"

	"github.com/MKhiriev/go-contract-guard/models"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to the env lookups of a nested group.
//   - env: environment variable name of a scalar field.
//   - validate: constraints checked when the group is provisioned.
type StructuredConfig struct {
	// App holds process-wide settings such as the log level and version.
	App App `envPrefix:"APP_"`

	// Validation controls which validation modes are wired at startup.
	Validation Validation `envPrefix:"VALIDATION_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Account holds the settings of the sample account service.
	Account Account `envPrefix:"ACCOUNT_"`

	// Storage selects where accounts are persisted.
	Storage Storage `envPrefix:"STORAGE_"`

	// Auth holds session token settings.
	Auth Auth `envPrefix:"AUTH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is the minimal zerolog level ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Validation controls the validation core. Every switch is phrased so that
// its zero value is the default behaviour.
type Validation struct {
	// DisableStatic turns off validation of provisioned instances.
	// Env: VALIDATION_DISABLE_STATIC
	DisableStatic bool `env:"DISABLE_STATIC"`

	// DisableDynamic turns off method call interception process-wide, as if
	// the executable validation capability were absent.
	// Env: VALIDATION_DISABLE_DYNAMIC
	DisableDynamic bool `env:"DISABLE_DYNAMIC"`

	// DisablePrefilter makes the static dispatcher validate every instance
	// it is given instead of static candidates only.
	// Env: VALIDATION_DISABLE_PREFILTER
	DisablePrefilter bool `env:"DISABLE_PREFILTER"`

	// Locale selects the language of violation messages.
	// Env: VALIDATION_LOCALE
	Locale string `env:"LOCALE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Account holds the settings of the sample account service. It is handed
// out by the dependency container, which validates it on provisioning.
type Account struct {
	// Realm names the account namespace. Required.
	// Env: ACCOUNT_REALM
	Realm string `env:"REALM" validate:"required,alphanum,max=32"`

	// MinAge is the minimal age accepted at registration.
	// Env: ACCOUNT_MIN_AGE
	MinAge int `env:"MIN_AGE" validate:"gte=0,lte=150"`
}

// Storage drivers accepted by [Storage.Driver].
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Storage selects the account repository backend. Like [Account] it is
// handed out by the container and validated on provisioning.
type Storage struct {
	// Driver is one of "memory", "postgres" or "sqlite3".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER" validate:"required,oneof=memory postgres sqlite3"`

	// DSN is the data source name passed to the SQL driver.
	// Env: STORAGE_DSN
	DSN string `env:"DSN" validate:"required_unless=Driver memory"`
}

// Auth holds session token settings.
type Auth struct {
	// TokenIssuer is written to and checked against the iss claim.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" validate:"required"`

	// TokenSignKey is the HMAC-SHA256 key of session tokens. When empty a
	// random key is generated at startup.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey models.Secret `env:"TOKEN_SIGN_KEY" validate:"omitempty,min=16"`

	// TokenDuration is the lifetime of an issued token.
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" validate:"gt=0"`
}

// Defaults returns the values used for fields no source has set.
func Defaults() StructuredConfig {
	return StructuredConfig{
		App: App{
			LogLevel: "info",
		},
		Validation: Validation{
			Locale: "en",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Account: Account{
			Realm:  "default",
			MinAge: 13,
		},
		Storage: Storage{
			Driver: DriverMemory,
		},
		Auth: Auth{
			TokenIssuer:   "go-contract-guard",
			TokenDuration: time.Hour,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// Redacted returns a copy of cfg with secrets masked, suitable for logging.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	if cfg.Auth.TokenSignKey != "" {
		cfg.Auth.TokenSignKey = redactedValue
	}
	if cfg.Storage.DSN != "" {
		cfg.Storage.DSN = redactedValue
	}
	return cfg
}

const redactedValue = "[REDACTED]"
