package service

import (
	"context"

	"github.com/MKhiriev/go-contract-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service/service_mock.go -package=servicemock

// AccountService registers and looks up accounts.
type AccountService interface {
	Register(ctx context.Context, request models.SignupRequest) (models.Account, error)
	Authenticate(ctx context.Context, credentials models.Credentials) (models.Account, error)
	Find(ctx context.Context, login string) (models.Account, error)
}

// TokenService issues and verifies session tokens.
type TokenService interface {
	Issue(ctx context.Context, account models.Account) (models.Token, error)
	Parse(ctx context.Context, signed string) (models.TokenClaims, error)
}

// AppInfoService reports build metadata and enforced validation modes.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// logging or validating.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService // returns a decorated AccountService applying additional behavior
}

// ValidationCapabilities reports which validation modes are active.
type ValidationCapabilities interface {
	DynamicValidationSupported() bool
}
