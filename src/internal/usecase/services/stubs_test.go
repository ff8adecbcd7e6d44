package services_test

import (
	"context"

	"github.com/api-sage/bank-ledger/src/internal/domain"
)

type clientRepoStub struct {
	createFn   func(ctx context.Context, client *domain.Client) (*domain.Client, error)
	getByCPFFn func(ctx context.Context, cpf string) (*domain.Client, error)
	getAllFn   func(ctx context.Context) ([]*domain.Client, error)
}

func (s clientRepoStub) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if s.createFn != nil {
		return s.createFn(ctx, client)
	}
	return client, nil
}

func (s clientRepoStub) GetByCPF(ctx context.Context, cpf string) (*domain.Client, error) {
	if s.getByCPFFn != nil {
		return s.getByCPFFn(ctx, cpf)
	}
	return nil, domain.ErrRecordNotFound
}

func (s clientRepoStub) GetAll(ctx context.Context) ([]*domain.Client, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return nil, nil
}

type accountRepoStub struct {
	createFn      func(ctx context.Context, build func(number int64) *domain.Account) (*domain.Account, error)
	getByNumberFn func(ctx context.Context, number int64) (*domain.Account, error)
	getAllFn      func(ctx context.Context) ([]*domain.Account, error)
}

func (s accountRepoStub) Create(ctx context.Context, build func(number int64) *domain.Account) (*domain.Account, error) {
	if s.createFn != nil {
		return s.createFn(ctx, build)
	}
	return build(1), nil
}

func (s accountRepoStub) GetByNumber(ctx context.Context, number int64) (*domain.Account, error) {
	if s.getByNumberFn != nil {
		return s.getByNumberFn(ctx, number)
	}
	return nil, domain.ErrRecordNotFound
}

func (s accountRepoStub) GetAll(ctx context.Context) ([]*domain.Account, error) {
	if s.getAllFn != nil {
		return s.getAllFn(ctx)
	}
	return nil, nil
}
