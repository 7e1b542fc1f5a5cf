package store

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-contract-guard/models"
)

type memoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]models.AccountRecord
}

// NewMemoryAccountRepository returns an [AccountRepository] that keeps
// accounts in process memory.
func NewMemoryAccountRepository() AccountRepository {
	return &memoryAccountRepository{
		accounts: make(map[string]models.AccountRecord),
	}
}

func (m *memoryAccountRepository) CreateAccount(_ context.Context, record models.AccountRecord) error {
	key := loginKey(record.Account.Login)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[key]; exists {
		return ErrLoginAlreadyExists
	}
	m.accounts[key] = record
	return nil
}

func (m *memoryAccountRepository) FindAccountByLogin(_ context.Context, login string) (models.AccountRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.accounts[loginKey(login)]
	if !ok {
		return models.AccountRecord{}, ErrNoAccountWasFound
	}
	return record, nil
}

func loginKey(login string) string {
	return strings.ToLower(login)
}
