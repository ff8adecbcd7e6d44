package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/api-sage/bank-ledger/src/internal/domain"
)

// AccountRepository keeps accounts in opening order; the account number is
// the position in that order, starting at 1.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts []*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

func (r *AccountRepository) Create(_ context.Context, build func(number int64) *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	number := int64(len(r.accounts)) + 1
	account := build(number)
	if account == nil {
		return nil, fmt.Errorf("build account %d: nil account", number)
	}
	if account.Number() != number {
		return nil, fmt.Errorf("build account %d: got number %d", number, account.Number())
	}

	r.accounts = append(r.accounts, account)
	return account, nil
}

func (r *AccountRepository) GetByNumber(_ context.Context, number int64) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if number < 1 || number > int64(len(r.accounts)) {
		return nil, domain.ErrRecordNotFound
	}
	return r.accounts[number-1], nil
}

func (r *AccountRepository) GetAll(_ context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

func (r *AccountRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}
