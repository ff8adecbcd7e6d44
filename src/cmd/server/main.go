package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/bank-ledger/src/internal/adapter/http/controller"
	"github.com/api-sage/bank-ledger/src/internal/adapter/http/middleware"
	"github.com/api-sage/bank-ledger/src/internal/adapter/http/router"
	"github.com/api-sage/bank-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/bank-ledger/src/internal/config"
	"github.com/api-sage/bank-ledger/src/internal/domain"
	"github.com/api-sage/bank-ledger/src/internal/logger"
	"github.com/api-sage/bank-ledger/src/internal/metrics"
	"github.com/api-sage/bank-ledger/src/internal/usecase/services"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	m := metrics.New()
	clientRepo := memory.NewClientRepository()
	accountRepo := memory.NewAccountRepository()

	policy := domain.CheckingPolicy{
		Limit:          cfg.WithdrawalLimit,
		MaxWithdrawals: cfg.MaxWithdrawals,
		Period:         cfg.WithdrawalPeriod,
	}

	mux := router.New(
		controller.NewClientController(services.NewClientService(clientRepo, m)),
		controller.NewAccountController(services.NewAccountService(accountRepo, clientRepo, policy, m)),
		controller.NewTransactionController(services.NewTransactionService(clientRepo, m)),
		m.Handler(),
		middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("bank ledger server listening", logger.Fields{
			"addr":            cfg.Addr,
			"withdrawalLimit": cfg.WithdrawalLimit.String(),
			"maxWithdrawals":  cfg.MaxWithdrawals,
			"period":          cfg.WithdrawalPeriod.String(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("bank ledger server shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("bank ledger server stopped", err, nil)
		_ = logger.Sync()
		log.Fatalf("server: %v", err)
	}
}
