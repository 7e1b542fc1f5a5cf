package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/models"
)

const accountsTable = "accounts"

var accountColumns = []string{
	"id",
	"login",
	"email",
	"realm",
	"display_name",
	"age",
	"country",
	"password_hash",
	"created_at",
}

// accountRepository is the SQL implementation of [AccountRepository].
type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountSQLRepository constructs an [AccountRepository] backed by db.
func NewAccountSQLRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount inserts record. A unique violation on the login key is
// reported as [ErrLoginAlreadyExists].
func (r *accountRepository) CreateAccount(ctx context.Context, record models.AccountRecord) error {
	account := record.Account

	query, args, err := r.db.builder.
		Insert(accountsTable).
		Columns(accountColumns...).
		Columns("login_key").
		Values(
			account.ID,
			account.Login,
			account.Email,
			account.Realm,
			account.Profile.DisplayName,
			account.Profile.Age,
			account.Profile.Country,
			record.PasswordHash,
			account.CreatedAt,
			loginKey(account.Login),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrLoginAlreadyExists
		}
		r.logger.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// FindAccountByLogin selects the account whose login key matches login.
func (r *accountRepository) FindAccountByLogin(ctx context.Context, login string) (models.AccountRecord, error) {
	query, args, err := r.db.builder.
		Select(accountColumns...).
		From(accountsTable).
		Where("login_key = ?", loginKey(login)).
		ToSql()
	if err != nil {
		return models.AccountRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.AccountRecord
	account := &record.Account
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&account.ID,
		&account.Login,
		&account.Email,
		&account.Realm,
		&account.Profile.DisplayName,
		&account.Profile.Age,
		&account.Profile.Country,
		&record.PasswordHash,
		&account.CreatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.AccountRecord{}, ErrNoAccountWasFound
	case err != nil:
		r.logger.Err(err).Str("func", "*accountRepository.FindAccountByLogin").Msg("error scanning account")
		return models.AccountRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	account.CreatedAt = account.CreatedAt.UTC()
	return record, nil
}
