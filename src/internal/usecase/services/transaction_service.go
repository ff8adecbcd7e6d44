package services

import (
	"context"
	"strings"

	"github.com/api-sage/bank-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/bank-ledger/src/internal/commons"
	"github.com/api-sage/bank-ledger/src/internal/domain"
	"github.com/api-sage/bank-ledger/src/internal/logger"
	"github.com/api-sage/bank-ledger/src/internal/metrics"
	"github.com/shopspring/decimal"
)

type TransactionService struct {
	clientRepo domain.ClientRepository
	metrics    *metrics.Metrics
}

func NewTransactionService(clientRepo domain.ClientRepository, m *metrics.Metrics) *TransactionService {
	return &TransactionService{clientRepo: clientRepo, metrics: m}
}

func (s *TransactionService) Deposit(ctx context.Context, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error) {
	return s.submit(ctx, req, domain.NewDeposit)
}

func (s *TransactionService) Withdraw(ctx context.Context, req models.TransactionRequest) (commons.Response[models.TransactionResponse], error) {
	return s.submit(ctx, req, domain.NewWithdrawal)
}

func (s *TransactionService) submit(
	ctx context.Context,
	req models.TransactionRequest,
	build func(amount decimal.Decimal) domain.Transaction,
) (commons.Response[models.TransactionResponse], error) {
	tx := build(req.Amount)
	fields := logger.Fields{
		"kind":          string(tx.Kind),
		"accountNumber": req.AccountNumber,
	}
	logger.Info("transaction service submit request", fields)

	if err := req.Validate(); err != nil {
		logger.Error("transaction service submit validation failed", err, fields)
		return commons.ErrorResponse[models.TransactionResponse](commons.MessageValidationFailed, err.Error()), err
	}
	fields["amount"] = req.Amount.StringFixed(2)

	client, account, err := resolveAccount(ctx, s.clientRepo, strings.TrimSpace(req.CPF), req.AccountNumber)
	if err != nil {
		logger.Error("transaction service submit lookup failed", err, fields)
		return lookupErrorResponse[models.TransactionResponse](err), err
	}

	balance, err := client.Execute(account, tx)
	s.metrics.ObserveTransaction(string(tx.Kind), err)

	response := models.TransactionResponse{
		Agency:        account.Agency(),
		AccountNumber: account.Number(),
		Kind:          string(tx.Kind),
		Amount:        tx.Amount.StringFixed(2),
		Balance:       balance.StringFixed(2),
	}

	if err != nil {
		response.Reason = domain.ReasonCode(err)
		logger.Error("transaction service submit rejected", err, logger.Fields{
			"kind":          response.Kind,
			"accountNumber": response.AccountNumber,
			"reason":        response.Reason,
		})
		return commons.Response[models.TransactionResponse]{
			Success: false,
			Message: commons.MessageTransactionDenied,
			Data:    &response,
			Errors:  []string{err.Error()},
		}, err
	}

	logger.Info("transaction service submit success", logger.Fields{
		"kind":          response.Kind,
		"accountNumber": response.AccountNumber,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("transaction completed successfully", response), nil
}
