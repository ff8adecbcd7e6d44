package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/bank-ledger/src/internal/domain"
)

func TestClientRepositoryRejectsDuplicateCPF(t *testing.T) {
	repo := NewClientRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.NewClient("111", "Ana", time.Time{}, "Rua A"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, domain.NewClient("111", "Bia", time.Time{}, "Rua B"))
	require.ErrorIs(t, err, domain.ErrDuplicateIdentifier)
	assert.Equal(t, 1, repo.Count())

	found, err := repo.GetByCPF(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.Name)
}

func TestClientRepositoryLookupAndOrder(t *testing.T) {
	repo := NewClientRepository()
	ctx := context.Background()

	for _, cpf := range []string{"3", "1", "2"} {
		_, err := repo.Create(ctx, domain.NewClient(cpf, "c"+cpf, time.Time{}, ""))
		require.NoError(t, err)
	}

	_, err := repo.GetByCPF(ctx, "9")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "3", all[0].CPF)
	assert.Equal(t, "2", all[2].CPF)
}

func TestAccountRepositoryAssignsSequentialNumbers(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		account, err := repo.Create(ctx, func(number int64) *domain.Account {
			return domain.NewCheckingAccount(number, "111")
		})
		require.NoError(t, err)
		assert.Equal(t, want, account.Number())
	}

	account, err := repo.GetByNumber(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), account.Number())

	for _, missing := range []int64{0, 4, -1} {
		_, err := repo.GetByNumber(ctx, missing)
		assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	}
}

func TestAccountRepositoryRejectsMismatchedNumber(t *testing.T) {
	repo := NewAccountRepository()

	_, err := repo.Create(context.Background(), func(int64) *domain.Account {
		return domain.NewCheckingAccount(42, "111")
	})
	require.Error(t, err)
	assert.Zero(t, repo.Count())
}

func TestAccountRepositoryConcurrentCreate(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, func(number int64) *domain.Account {
				return domain.NewCheckingAccount(number, "111")
			})
		}()
	}
	wg.Wait()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, workers)
	for i, account := range all {
		assert.Equal(t, int64(i+1), account.Number())
	}
}
