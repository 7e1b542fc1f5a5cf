package store

import (
	"context"

	"github.com/MKhiriev/go-contract-guard/models"
)

// AccountRepository stores accounts keyed by login. Logins are compared
// case-insensitively.
type AccountRepository interface {
	// CreateAccount persists record. It returns [ErrLoginAlreadyExists] when
	// the login is taken.
	CreateAccount(ctx context.Context, record models.AccountRecord) error

	// FindAccountByLogin returns the record stored under login or
	// [ErrNoAccountWasFound].
	FindAccountByLogin(ctx context.Context, login string) (models.AccountRecord, error)
}
