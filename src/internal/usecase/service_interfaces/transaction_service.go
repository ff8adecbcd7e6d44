package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/bank-ledger/src/internal/commons"
)

type TransactionService interface {
	Deposit(ctx context.Context, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error)
	Withdraw(ctx context.Context, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error)
}
