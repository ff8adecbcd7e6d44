package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/bank-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/bank-ledger/src/internal/commons"
	"github.com/api-sage/bank-ledger/src/internal/domain"
	"github.com/api-sage/bank-ledger/src/internal/logger"
	"github.com/api-sage/bank-ledger/src/internal/metrics"
)

const noTransactionsNote = "No transactions recorded."

type AccountService struct {
	accountRepo domain.AccountRepository
	clientRepo  domain.ClientRepository
	policy      domain.CheckingPolicy
	metrics     *metrics.Metrics
}

func NewAccountService(
	accountRepo domain.AccountRepository,
	clientRepo domain.ClientRepository,
	policy domain.CheckingPolicy,
	m *metrics.Metrics,
) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		clientRepo:  clientRepo,
		policy:      policy,
		metrics:     m,
	}
}

func (s *AccountService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service open account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service open account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse](commons.MessageValidationFailed, err.Error()), err
	}

	client, err := s.clientRepo.GetByCPF(ctx, strings.TrimSpace(req.CPF))
	if err != nil {
		logger.Error("account service open account client lookup failed", err, nil)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse](commons.MessageClientNotFound), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to open account", "Unable to open account right now"), err
	}

	account, err := s.accountRepo.Create(ctx, func(number int64) *domain.Account {
		return domain.NewAccount(number, client.CPF, s.policy)
	})
	if err != nil {
		logger.Error("account service open account repository failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("failed to open account", "Unable to open account right now"), fmt.Errorf("open account: %w", err)
	}
	client.AddAccount(account)
	s.metrics.IncrementAccountsOpened()

	logger.Info("account service open account success", logger.Fields{
		"accountNumber": account.Number(),
		"agency":        account.Agency(),
	})

	return commons.SuccessResponse("account opened successfully", toAccountResponse(account, client.Name)), nil
}

func (s *AccountService) ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error) {
	logger.Info("account service list accounts request", nil)

	accounts, err := s.accountRepo.GetAll(ctx)
	if err != nil {
		logger.Error("account service list accounts failed", err, nil)
		return commons.ErrorResponse[[]models.AccountResponse]("failed to list accounts", "Unable to list accounts right now"), err
	}

	resp := make([]models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		holder := ""
		if client, err := s.clientRepo.GetByCPF(ctx, account.OwnerCPF()); err == nil {
			holder = client.Name
		}
		resp = append(resp, toAccountResponse(account, holder))
	}

	logger.Info("account service list accounts success", logger.Fields{
		"count": len(resp),
	})

	return commons.SuccessResponse("accounts fetched successfully", resp), nil
}

func (s *AccountService) GetStatement(ctx context.Context, req models.GetStatementRequest) (commons.Response[models.StatementResponse], error) {
	logger.Info("account service get statement request", logger.Fields{
		"accountNumber": req.AccountNumber,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.StatementResponse](commons.MessageValidationFailed, err.Error()), err
	}

	client, account, err := resolveAccount(ctx, s.clientRepo, strings.TrimSpace(req.CPF), req.AccountNumber)
	if err != nil {
		logger.Error("account service get statement lookup failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		return lookupErrorResponse[models.StatementResponse](err), err
	}

	balance, entries := account.Statement()

	resp := models.StatementResponse{
		Agency:        account.Agency(),
		AccountNumber: account.Number(),
		Holder:        client.Name,
		Entries:       make([]models.StatementEntryResponse, 0, len(entries)),
		Balance:       balance.StringFixed(2),
	}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, models.StatementEntryResponse{
			ID:        entry.ID,
			Kind:      string(entry.Kind),
			Amount:    entry.Amount.StringFixed(2),
			Timestamp: entry.Timestamp.Format(time.RFC3339),
		})
	}
	if len(resp.Entries) == 0 {
		resp.Note = noTransactionsNote
	}

	logger.Info("account service get statement success", logger.Fields{
		"accountNumber": resp.AccountNumber,
		"entries":       len(resp.Entries),
	})

	return commons.SuccessResponse("statement fetched successfully", resp), nil
}

func (s *AccountService) GetAccount(ctx context.Context, accountNumber int64) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service get account request", logger.Fields{
		"accountNumber": accountNumber,
	})

	if accountNumber <= 0 {
		return commons.ErrorResponse[models.AccountResponse](commons.MessageValidationFailed, "accountNumber must be greater than zero"), fmt.Errorf("accountNumber must be greater than zero")
	}

	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		logger.Error("account service get account failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse](commons.MessageAccountNotFound), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to get account", "Unable to fetch account right now"), err
	}

	holder := ""
	if client, err := s.clientRepo.GetByCPF(ctx, account.OwnerCPF()); err == nil {
		holder = client.Name
	}

	return commons.SuccessResponse("account fetched successfully", toAccountResponse(account, holder)), nil
}

func toAccountResponse(account *domain.Account, holder string) models.AccountResponse {
	resp := models.AccountResponse{
		Agency:        account.Agency(),
		AccountNumber: account.Number(),
		AccountType:   string(account.Type()),
		Holder:        holder,
		Balance:       account.Balance().StringFixed(2),
	}
	if policy, ok := account.Policy().(domain.CheckingPolicy); ok {
		resp.WithdrawalLimit = policy.Limit.StringFixed(2)
		resp.MaxWithdrawals = policy.MaxWithdrawals
	}
	return resp
}
