package domain

import "context"

// AccountRepository owns account number assignment: a new account gets the
// current account count plus one.
type AccountRepository interface {
	Create(ctx context.Context, build func(number int64) *Account) (*Account, error)
	GetByNumber(ctx context.Context, number int64) (*Account, error)
	GetAll(ctx context.Context) ([]*Account, error)
}
