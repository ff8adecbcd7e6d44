package services

import (
	"context"
	"errors"

	"github.com/api-sage/bank-ledger/src/internal/commons"
	"github.com/api-sage/bank-ledger/src/internal/domain"
)

var errAccountNotFound = errors.New("account not found")

// resolveAccount finds the client by CPF and then the requested account
// among the client's accounts. A zero account number selects the first one.
func resolveAccount(ctx context.Context, clientRepo domain.ClientRepository, cpf string, accountNumber int64) (*domain.Client, *domain.Account, error) {
	client, err := clientRepo.GetByCPF(ctx, cpf)
	if err != nil {
		return nil, nil, err
	}

	if accountNumber == 0 {
		account, err := client.PrimaryAccount()
		if err != nil {
			return client, nil, err
		}
		return client, account, nil
	}

	account, err := client.Account(accountNumber)
	if err != nil {
		return client, nil, errors.Join(errAccountNotFound, err)
	}
	return client, account, nil
}

func lookupErrorResponse[T any](err error) commons.Response[T] {
	switch {
	case errors.Is(err, errAccountNotFound):
		return commons.ErrorResponse[T](commons.MessageAccountNotFound, domain.ReasonCode(err))
	case errors.Is(err, domain.ErrRecordNotFound):
		return commons.ErrorResponse[T](commons.MessageClientNotFound, domain.ReasonCode(err))
	case errors.Is(err, domain.ErrClientHasNoAccount):
		return commons.ErrorResponse[T](commons.MessageAccountNotFound, domain.ReasonCode(err))
	default:
		return commons.ErrorResponse[T]("failed to resolve account", "Unable to resolve account right now")
	}
}
