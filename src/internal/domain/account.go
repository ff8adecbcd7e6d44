package domain

import (
	"sync"

	"github.com/shopspring/decimal"
)

const AgencyCode = "0001"

type AccountType string

const (
	AccountTypeStandard AccountType = "STANDARD"
	AccountTypeChecking AccountType = "CHECKING"
)

// Account holds a balance that only moves through Deposit and Withdraw.
// The mutex is held across check, mutation and history recording so one
// account never sees interleaved operations.
type Account struct {
	mu       sync.Mutex
	number   int64
	agency   string
	ownerCPF string
	balance  decimal.Decimal
	history  *History
	policy   WithdrawalPolicy
}

func NewAccount(number int64, ownerCPF string, policy WithdrawalPolicy) *Account {
	if policy == nil {
		policy = StandardPolicy{}
	}

	return &Account{
		number:   number,
		agency:   AgencyCode,
		ownerCPF: ownerCPF,
		balance:  decimal.Zero,
		history:  NewHistory(),
		policy:   policy,
	}
}

// NewCheckingAccount opens an account with the default checking limits.
func NewCheckingAccount(number int64, ownerCPF string) *Account {
	return NewAccount(number, ownerCPF, DefaultCheckingPolicy())
}

func (a *Account) Number() int64 {
	return a.number
}

func (a *Account) Agency() string {
	return a.agency
}

func (a *Account) OwnerCPF() string {
	return a.ownerCPF
}

func (a *Account) Type() AccountType {
	if _, ok := a.policy.(CheckingPolicy); ok {
		return AccountTypeChecking
	}
	return AccountTypeStandard
}

func (a *Account) Policy() WithdrawalPolicy {
	return a.policy
}

func (a *Account) History() *History {
	return a.history
}

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Statement returns the balance together with the entries that produced it.
func (a *Account) Statement() (decimal.Decimal, []HistoryEntry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance, a.history.Entries()
}

// Deposit credits the account without recording history.
func (a *Account) Deposit(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.deposit(amount)
}

// Withdraw runs the withdrawal policy and then the funds checks. It does not
// record history.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.withdraw(amount)
}

func (a *Account) deposit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	a.balance = a.balance.Add(amount)
	return nil
}

func (a *Account) withdraw(amount decimal.Decimal) error {
	if err := a.policy.Check(a, amount); err != nil {
		return err
	}

	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	a.balance = a.balance.Sub(amount)
	return nil
}
