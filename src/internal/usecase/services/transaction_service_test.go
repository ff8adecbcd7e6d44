package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/api-sage/bank-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/bank-ledger/src/internal/commons"
	"github.com/api-sage/bank-ledger/src/internal/domain"
	"github.com/api-sage/bank-ledger/src/internal/metrics"
	"github.com/api-sage/bank-ledger/src/internal/usecase/services"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
)

func TestTransactionServiceCheckingScenario(t *testing.T) {
	l := newLedger(t)
	l.registerWithAccount(t, "1")
	ctx := context.Background()

	resp, err := l.txSvc.Deposit(ctx, models.TransactionRequest{CPF: "1", Amount: decimal.NewFromInt(1000)})
	if err != nil || resp.Data.Balance != "1000.00" || resp.Data.Amount != "1000.00" {
		t.Fatalf("deposit: err=%v resp=%+v", err, resp)
	}

	for _, want := range []string{"700.00", "400.00", "100.00"} {
		resp, err := l.txSvc.Withdraw(ctx, models.TransactionRequest{CPF: "1", Amount: decimal.NewFromInt(300)})
		if err != nil {
			t.Fatalf("withdraw: %v", err)
		}
		if resp.Data.Balance != want {
			t.Fatalf("expected balance %s, got %s", want, resp.Data.Balance)
		}
	}

	resp, err = l.txSvc.Withdraw(ctx, models.TransactionRequest{CPF: "1", Amount: decimal.NewFromInt(300)})
	if !errors.Is(err, domain.ErrWithdrawalCountExceeded) {
		t.Fatalf("expected ErrWithdrawalCountExceeded, got %v", err)
	}
	if resp.Message != commons.MessageTransactionDenied || resp.Data.Reason != "WITHDRAWAL_COUNT_EXCEEDED" {
		t.Fatalf("unexpected rejection %+v", resp)
	}
	if resp.Data.Balance != "100.00" {
		t.Fatalf("expected balance to stay 100.00, got %s", resp.Data.Balance)
	}

	account, _ := l.accounts.GetByNumber(ctx, 1)
	if account.History().Len() != 4 {
		t.Fatalf("expected 4 history entries, got %d", account.History().Len())
	}

	if got := testutil.ToFloat64(l.metrics.Transactions.WithLabelValues("WITHDRAWAL", metrics.OutcomeFailed)); got != 1 {
		t.Fatalf("expected 1 failed withdrawal metric, got %v", got)
	}
	if got := testutil.ToFloat64(l.metrics.Transactions.WithLabelValues("WITHDRAWAL", metrics.OutcomeSuccess)); got != 3 {
		t.Fatalf("expected 3 successful withdrawal metrics, got %v", got)
	}
}

func TestTransactionServiceLimitBeforeFunds(t *testing.T) {
	l := newLedger(t)
	l.registerWithAccount(t, "1")
	ctx := context.Background()

	if _, err := l.txSvc.Deposit(ctx, models.TransactionRequest{CPF: "1", Amount: decimal.NewFromInt(1000)}); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	_, err := l.txSvc.Withdraw(ctx, models.TransactionRequest{CPF: "1", Amount: decimal.NewFromInt(501)})
	if !errors.Is(err, domain.ErrWithdrawalLimitExceeded) {
		t.Fatalf("expected ErrWithdrawalLimitExceeded, got %v", err)
	}
}

func TestTransactionServiceRejectsOversizedAmount(t *testing.T) {
	l := newLedger(t)
	l.registerWithAccount(t, "1")

	resp, err := l.txSvc.Deposit(context.Background(), models.TransactionRequest{CPF: "1", Amount: decimal.RequireFromString("1e30000000")})
	if err == nil || resp.Message != commons.MessageValidationFailed {
		t.Fatalf("expected validation failure, got err=%v resp=%+v", err, resp)
	}

	account, _ := l.accounts.GetByNumber(context.Background(), 1)
	if account.History().Len() != 0 {
		t.Fatalf("expected no history, got %d entries", account.History().Len())
	}
}

func TestTransactionServiceDepositInvalidAmount(t *testing.T) {
	l := newLedger(t)
	l.registerWithAccount(t, "1")

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		resp, err := l.txSvc.Deposit(context.Background(), models.TransactionRequest{CPF: "1", Amount: amount})
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount for %s, got %v", amount, err)
		}
		if resp.Data.Balance != "0.00" {
			t.Fatalf("expected balance 0.00, got %s", resp.Data.Balance)
		}
	}
}

func TestTransactionServiceUnknownClient(t *testing.T) {
	svc := services.NewTransactionService(clientRepoStub{}, nil)

	resp, err := svc.Deposit(context.Background(), models.TransactionRequest{CPF: "404", Amount: decimal.NewFromInt(1)})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if resp.Message != commons.MessageClientNotFound {
		t.Fatalf("expected client not found message, got %q", resp.Message)
	}
}

func TestTransactionServiceAccountOfAnotherClient(t *testing.T) {
	l := newLedger(t)
	l.registerWithAccount(t, "1")
	other := l.registerWithAccount(t, "2")

	resp, err := l.txSvc.Deposit(context.Background(), models.TransactionRequest{CPF: "1", AccountNumber: other, Amount: decimal.NewFromInt(5)})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if resp.Message != commons.MessageAccountNotFound {
		t.Fatalf("expected account not found message, got %q", resp.Message)
	}
}

func TestTransactionServiceClientWithoutAccount(t *testing.T) {
	client := domain.NewClient("9", "Bia", time.Time{}, "Rua B")
	svc := services.NewTransactionService(clientRepoStub{
		getByCPFFn: func(context.Context, string) (*domain.Client, error) {
			return client, nil
		},
	}, nil)

	_, err := svc.Withdraw(context.Background(), models.TransactionRequest{CPF: "9", Amount: decimal.NewFromInt(5)})
	if !errors.Is(err, domain.ErrClientHasNoAccount) {
		t.Fatalf("expected ErrClientHasNoAccount, got %v", err)
	}
}
