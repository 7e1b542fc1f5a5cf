package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-contract-guard/internal/config"
	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/migrations"
)

// DB is a SQL connection bound to its dialect.
type DB struct {
	*sql.DB

	// dialect is the goose dialect of the connection.
	dialect string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewConnect opens and pings the database described by cfg.
func NewConnect(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	var driverName string
	var db *DB

	switch cfg.Driver {
	case config.DriverPostgres:
		driverName = "pgx"
		db = &DB{dialect: "postgres", builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}
	case config.DriverSQLite:
		driverName = "sqlite3"
		db = &DB{dialect: "sqlite3", builder: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	conn, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("error opening database connection")
		return nil, fmt.Errorf("error opening database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("connected to database successfully")

	db.DB = conn
	db.logger = log
	return db, nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect, db.logger)
}
