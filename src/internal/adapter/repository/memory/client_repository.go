package memory

import (
	"context"
	"sync"

	"github.com/api-sage/bank-ledger/src/internal/domain"
)

type ClientRepository struct {
	mu      sync.RWMutex
	clients map[string]*domain.Client
	order   []string
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{clients: make(map[string]*domain.Client)}
}

func (r *ClientRepository) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clients[client.CPF]; exists {
		return nil, domain.ErrDuplicateIdentifier
	}

	r.clients[client.CPF] = client
	r.order = append(r.order, client.CPF)
	return client, nil
}

func (r *ClientRepository) GetByCPF(_ context.Context, cpf string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[cpf]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return client, nil
}

func (r *ClientRepository) GetAll(_ context.Context) ([]*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]*domain.Client, 0, len(r.order))
	for _, cpf := range r.order {
		clients = append(clients, r.clients[cpf])
	}
	return clients, nil
}

func (r *ClientRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
