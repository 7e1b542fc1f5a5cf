package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contract-guard/internal/config"
	"github.com/MKhiriev/go-contract-guard/internal/container"
	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/internal/validation"
	"github.com/MKhiriev/go-contract-guard/internal/validators"
	"github.com/MKhiriev/go-contract-guard/models"
)

func newWiredContainer(t *testing.T, cfg config.StructuredConfig) *container.Container {
	t.Helper()

	engine, err := validators.NewPlaygroundEngine()
	require.NoError(t, err)
	registry := validation.NewRegistry()
	require.NoError(t, RegisterContracts(registry))
	validationService := validation.NewService(engine, registry, cfg.Validation, logger.Nop())

	c := container.New(logger.Nop())
	require.NoError(t, Provide(c, models.NewAppBuildInfo("1.2.3", "", ""), cfg, validationService, logger.Nop()))
	require.NoError(t, validationService.Install(c))
	return c
}

func TestNewServices(t *testing.T) {
	ctx := context.Background()
	c := newWiredContainer(t, config.Defaults())

	services, err := NewServices(ctx, c)
	require.NoError(t, err)

	_, isValidated := services.AccountService.(*AccountValidationService)
	assert.True(t, isValidated)

	info := services.AppInfoService.GetAppInfo(ctx)
	assert.Equal(t, models.AppInfo{
		Version:           "1.2.3",
		BuildDate:         "N/A",
		BuildCommit:       "N/A",
		StaticValidation:  true,
		DynamicValidation: true,
	}, info)
}

func TestNewServices_InvalidAccountSettingsRejected(t *testing.T) {
	cfg := config.Defaults()
	cfg.Account.Realm = "not a realm!"
	c := newWiredContainer(t, cfg)

	_, err := NewServices(context.Background(), c)
	assert.ErrorIs(t, err, container.ErrProvisionRejected)
	assert.ErrorIs(t, err, validation.ErrValidationIssue)
}

func TestNewServices_DynamicValidationDisabled(t *testing.T) {
	cfg := config.Defaults()
	cfg.Validation.DisableDynamic = true
	c := newWiredContainer(t, cfg)

	services, err := NewServices(context.Background(), c)
	require.NoError(t, err)
	assert.False(t, services.AppInfoService.GetAppInfo(context.Background()).DynamicValidation)
}

func TestProvide_Twice(t *testing.T) {
	c := container.New(logger.Nop())
	validationService := validation.NewService(nil, validation.NewRegistry(), config.Validation{DisableDynamic: true}, logger.Nop())

	require.NoError(t, Provide(c, models.AppBuildInfo{}, config.Defaults(), validationService, logger.Nop()))
	assert.ErrorIs(t, Provide(c, models.AppBuildInfo{}, config.Defaults(), validationService, logger.Nop()), container.ErrDuplicateProvider)
}

func TestNewServices_InvalidStorageSettingsRejected(t *testing.T) {
	tests := []struct {
		name    string
		storage config.Storage
	}{
		{name: "unknown driver", storage: config.Storage{Driver: "mysql", DSN: "root@/accounts"}},
		{name: "sql driver without dsn", storage: config.Storage{Driver: config.DriverPostgres}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults()
			cfg.Storage = tt.storage
			c := newWiredContainer(t, cfg)

			_, err := NewServices(context.Background(), c)
			require.ErrorIs(t, err, container.ErrProvisionRejected)

			failure, ok := validation.AsFailure(err)
			require.True(t, ok)
			assert.Equal(t, validation.KindInstance, failure.Kind())
		})
	}
}
