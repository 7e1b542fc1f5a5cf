package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-contract-guard/internal/config"
	"github.com/MKhiriev/go-contract-guard/internal/crypto"
	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/internal/store"
	"github.com/MKhiriev/go-contract-guard/models"
)

// accountService registers and authenticates accounts kept in an
// [store.AccountRepository].
type accountService struct {
	accounts store.AccountRepository
	hasher   crypto.PasswordHasher
	cfg      config.Account
	now      func() time.Time

	logger *logger.Logger
}

func NewAccountService(accounts store.AccountRepository, hasher crypto.PasswordHasher, cfg config.Account, logger *logger.Logger) AccountService {
	return &accountService{
		accounts: accounts,
		hasher:   hasher,
		cfg:      cfg,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *accountService) Register(ctx context.Context, request models.SignupRequest) (models.Account, error) {
	if request.Profile == nil {
		return models.Account{}, fmt.Errorf("%w: profile is missing", ErrInvalidDataProvided)
	}
	if request.Profile.Age < s.cfg.MinAge {
		return models.Account{}, fmt.Errorf("%w: minimal age is %d", ErrUnderage, s.cfg.MinAge)
	}

	passwordHash, err := s.hasher.Hash(request.Password.Reveal())
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrGeneratingID, err)
	}

	account := models.Account{
		ID:        id,
		Login:     request.Login,
		Email:     request.Email,
		Realm:     s.cfg.Realm,
		Profile:   *request.Profile,
		CreatedAt: s.now().UTC(),
	}

	err = s.accounts.CreateAccount(ctx, models.AccountRecord{Account: account, PasswordHash: passwordHash})
	if errors.Is(err, store.ErrLoginAlreadyExists) {
		return models.Account{}, fmt.Errorf("%w: %s", ErrLoginTaken, request.Login)
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("error storing account: %w", err)
	}

	s.logger.Info().Str("account_id", id.String()).Str("realm", account.Realm).Msg("account registered")
	return account, nil
}

func (s *accountService) Authenticate(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	record, err := s.findRecord(ctx, credentials.Login)
	if err != nil {
		return models.Account{}, err
	}

	matches, err := s.hasher.Verify(credentials.Password.Reveal(), record.PasswordHash)
	if err != nil {
		return models.Account{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !matches {
		return models.Account{}, ErrWrongPassword
	}

	return record.Account, nil
}

func (s *accountService) Find(ctx context.Context, login string) (models.Account, error) {
	record, err := s.findRecord(ctx, login)
	if err != nil {
		return models.Account{}, err
	}
	return record.Account, nil
}

func (s *accountService) findRecord(ctx context.Context, login string) (models.AccountRecord, error) {
	record, err := s.accounts.FindAccountByLogin(ctx, login)
	if errors.Is(err, store.ErrNoAccountWasFound) {
		return models.AccountRecord{}, fmt.Errorf("%w: %s", ErrAccountNotFound, login)
	}
	if err != nil {
		return models.AccountRecord{}, fmt.Errorf("error loading account: %w", err)
	}
	return record, nil
}
