package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contract-guard/internal/config"
	"github.com/MKhiriev/go-contract-guard/internal/logger"
)

// NewAccountRepository builds the account repository selected by cfg. SQL
// backends are connected and migrated before use.
func NewAccountRepository(ctx context.Context, cfg config.Storage, logger *logger.Logger) (AccountRepository, error) {
	if cfg.Driver == config.DriverMemory {
		return NewMemoryAccountRepository(), nil
	}

	db, err := NewConnect(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return NewAccountSQLRepository(db, logger), nil
}
