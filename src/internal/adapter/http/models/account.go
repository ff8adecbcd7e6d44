package models

import (
	"errors"
	"strings"
)

type OpenAccountRequest struct {
	CPF string `json:"cpf"`
}

func (r OpenAccountRequest) Validate() error {
	cpf := strings.TrimSpace(r.CPF)
	if cpf == "" {
		return errors.New("cpf is required")
	}
	if !digitsOnly(cpf) {
		return errors.New("cpf must contain digits only")
	}
	return nil
}

type AccountResponse struct {
	Agency          string `json:"agency"`
	AccountNumber   int64  `json:"accountNumber"`
	AccountType     string `json:"accountType"`
	Holder          string `json:"holder"`
	Balance         string `json:"balance"`
	WithdrawalLimit string `json:"withdrawalLimit,omitempty"`
	MaxWithdrawals  int    `json:"maxWithdrawals,omitempty"`
}

type GetStatementRequest struct {
	CPF           string `json:"cpf"`
	AccountNumber int64  `json:"accountNumber,omitempty"`
}

func (r GetStatementRequest) Validate() error {
	var errs []string

	if cpf := strings.TrimSpace(r.CPF); cpf == "" {
		errs = append(errs, "cpf is required")
	} else if !digitsOnly(cpf) {
		errs = append(errs, "cpf must contain digits only")
	}
	if r.AccountNumber < 0 {
		errs = append(errs, "accountNumber cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type StatementEntryResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Amount    string `json:"amount"`
	Timestamp string `json:"timestamp"`
}

type StatementResponse struct {
	Agency        string                   `json:"agency"`
	AccountNumber int64                    `json:"accountNumber"`
	Holder        string                   `json:"holder"`
	Entries       []StatementEntryResponse `json:"entries"`
	Balance       string                   `json:"balance"`
	Note          string                   `json:"note,omitempty"`
}
