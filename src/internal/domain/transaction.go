package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionKindDeposit    TransactionKind = "DEPOSIT"
	TransactionKindWithdrawal TransactionKind = "WITHDRAWAL"
)

// Transaction is one monetary operation waiting to be applied to an account.
type Transaction struct {
	Kind   TransactionKind
	Amount decimal.Decimal
}

func NewDeposit(amount decimal.Decimal) Transaction {
	return Transaction{Kind: TransactionKindDeposit, Amount: amount}
}

func NewWithdrawal(amount decimal.Decimal) Transaction {
	return Transaction{Kind: TransactionKindWithdrawal, Amount: amount}
}

// Apply mutates the account and records the entry in its history. Nothing
// is recorded when the account rejects the operation.
func (t Transaction) Apply(account *Account) error {
	_, err := t.Execute(account)
	return err
}

// Execute is Apply that also returns the balance the operation left behind,
// read under the same lock. A rejected operation returns the unchanged balance.
func (t Transaction) Execute(account *Account) (decimal.Decimal, error) {
	account.mu.Lock()
	defer account.mu.Unlock()

	var err error
	switch t.Kind {
	case TransactionKindDeposit:
		err = account.deposit(t.Amount)
	case TransactionKindWithdrawal:
		err = account.withdraw(t.Amount)
	default:
		return account.balance, fmt.Errorf("unknown transaction kind %q", t.Kind)
	}
	if err != nil {
		return account.balance, err
	}

	account.history.Record(t.Kind, t.Amount)
	return account.balance, nil
}
