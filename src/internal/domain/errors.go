package domain

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrDuplicateIdentifier = errors.New("Identifier already registered")
var ErrInvalidAmount = errors.New("Invalid amount")
var ErrInsufficientFunds = errors.New("Insufficient funds")
var ErrWithdrawalLimitExceeded = errors.New("Withdrawal limit exceeded")
var ErrWithdrawalCountExceeded = errors.New("Withdrawal count exceeded")
var ErrClientHasNoAccount = errors.New("Client has no account")

// ReasonCode classifies a domain error for callers that report it.
func ReasonCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidAmount):
		return "INVALID_AMOUNT"
	case errors.Is(err, ErrInsufficientFunds):
		return "INSUFFICIENT_FUNDS"
	case errors.Is(err, ErrWithdrawalLimitExceeded):
		return "WITHDRAWAL_LIMIT_EXCEEDED"
	case errors.Is(err, ErrWithdrawalCountExceeded):
		return "WITHDRAWAL_COUNT_EXCEEDED"
	case errors.Is(err, ErrRecordNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrDuplicateIdentifier):
		return "DUPLICATE_IDENTIFIER"
	case errors.Is(err, ErrClientHasNoAccount):
		return "NO_ACCOUNT"
	default:
		return "UNKNOWN"
	}
}
