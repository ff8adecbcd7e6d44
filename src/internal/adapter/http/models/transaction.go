package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amounts outside these bounds are rejected before any arithmetic runs.
const (
	MaxAmountIntegerDigits = 15
	MaxAmountScale         = 18
)

// TransactionRequest targets one of the client's accounts. A zero account
// number selects the client's first account.
type TransactionRequest struct {
	CPF           string          `json:"cpf"`
	AccountNumber int64           `json:"accountNumber,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r TransactionRequest) Validate() error {
	var errs []string

	if cpf := strings.TrimSpace(r.CPF); cpf == "" {
		errs = append(errs, "cpf is required")
	} else if !digitsOnly(cpf) {
		errs = append(errs, "cpf must contain digits only")
	}
	if r.AccountNumber < 0 {
		errs = append(errs, "accountNumber cannot be negative")
	}
	switch {
	case !amountInRange(r.Amount):
		errs = append(errs, fmt.Sprintf("amount is out of range: at most %d integer digits and %d decimal places", MaxAmountIntegerDigits, MaxAmountScale))
	case r.Amount.Exponent() < -2 && !r.Amount.Equal(r.Amount.Round(2)):
		errs = append(errs, "amount must have at most 2 decimal places")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// amountInRange only inspects the coefficient length and exponent, so huge
// exponents never get rescaled.
func amountInRange(amount decimal.Decimal) bool {
	exp := int(amount.Exponent())
	if exp < -MaxAmountScale {
		return false
	}
	return amount.NumDigits()+exp <= MaxAmountIntegerDigits
}

type TransactionResponse struct {
	Agency        string `json:"agency"`
	AccountNumber int64  `json:"accountNumber"`
	Kind          string `json:"kind"`
	Amount        string `json:"amount"`
	Balance       string `json:"balance"`
	Reason        string `json:"reason,omitempty"`
}
