package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contract-guard/internal/config"
	"github.com/MKhiriev/go-contract-guard/internal/container"
	"github.com/MKhiriev/go-contract-guard/internal/crypto"
	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/internal/store"
	"github.com/MKhiriev/go-contract-guard/models"
)

type Services struct {
	AccountService AccountService
	TokenService   TokenService
	AppInfoService AppInfoService
}

// Provide registers the providers of every service in c. The account,
// storage and auth settings are provided too, so they pass static validation
// before the services depending on them are built.
func Provide(c *container.Container, build models.AppBuildInfo, cfg config.StructuredConfig, capabilities ValidationCapabilities, logger *logger.Logger) error {
	return errors.Join(
		container.ProvideValue(c, cfg.Account),
		container.ProvideValue(c, cfg.Storage),
		container.ProvideValue(c, crypto.NewPasswordHasher()),
		container.Provide(c, func(ctx context.Context, c *container.Container) (store.AccountRepository, error) {
			storageCfg, err := container.Resolve[config.Storage](ctx, c)
			if err != nil {
				return nil, err
			}
			return store.NewAccountRepository(ctx, storageCfg, logger)
		}),
		container.Provide(c, func(ctx context.Context, c *container.Container) (AccountService, error) {
			accountCfg, err := container.Resolve[config.Account](ctx, c)
			if err != nil {
				return nil, err
			}
			accounts, err := container.Resolve[store.AccountRepository](ctx, c)
			if err != nil {
				return nil, err
			}
			hasher, err := container.Resolve[crypto.PasswordHasher](ctx, c)
			if err != nil {
				return nil, err
			}
			return NewAccountValidationService(c).Wrap(NewAccountService(accounts, hasher, accountCfg, logger)), nil
		}),
		container.ProvideValue(c, cfg.Auth),
		container.Provide(c, func(ctx context.Context, c *container.Container) (TokenService, error) {
			authCfg, err := container.Resolve[config.Auth](ctx, c)
			if err != nil {
				return nil, err
			}
			return NewTokenService(authCfg, logger)
		}),
		container.ProvideValue(c, NewAppInfoService(build, cfg.Validation, capabilities, logger)),
	)
}

// NewServices resolves every service from c.
func NewServices(ctx context.Context, c *container.Container) (*Services, error) {
	accountService, err := container.Resolve[AccountService](ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error resolving account service: %w", err)
	}
	tokenService, err := container.Resolve[TokenService](ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error resolving token service: %w", err)
	}
	appInfoService, err := container.Resolve[AppInfoService](ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error resolving app info service: %w", err)
	}

	return &Services{
		AccountService: accountService,
		TokenService:   tokenService,
		AppInfoService: appInfoService,
	}, nil
}
