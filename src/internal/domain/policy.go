package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultWithdrawalLimit = 500
	DefaultMaxWithdrawals  = 3
)

// WithdrawalPolicy runs before the funds checks of Account.Withdraw.
type WithdrawalPolicy interface {
	Check(account *Account, amount decimal.Decimal) error
}

// StandardPolicy leaves withdrawals to the funds checks alone.
type StandardPolicy struct{}

func (StandardPolicy) Check(*Account, decimal.Decimal) error {
	return nil
}

// CheckingPolicy caps the size of a single withdrawal and the number of
// withdrawals. The per-operation cap is checked first.
//
// The count is taken from the account history. With a zero Period every
// withdrawal ever recorded counts, so the cap applies for the lifetime of
// the account.
type CheckingPolicy struct {
	Limit          decimal.Decimal
	MaxWithdrawals int
	Period         time.Duration
}

func DefaultCheckingPolicy() CheckingPolicy {
	return CheckingPolicy{
		Limit:          decimal.NewFromInt(DefaultWithdrawalLimit),
		MaxWithdrawals: DefaultMaxWithdrawals,
	}
}

func (p CheckingPolicy) Check(account *Account, amount decimal.Decimal) error {
	var since time.Time
	if p.Period > 0 {
		since = account.history.clock().Add(-p.Period)
	}
	count := account.history.CountKind(TransactionKindWithdrawal, since)

	if amount.GreaterThan(p.Limit) {
		return ErrWithdrawalLimitExceeded
	}
	if count >= p.MaxWithdrawals {
		return ErrWithdrawalCountExceeded
	}

	return nil
}
