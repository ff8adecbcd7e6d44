package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/bank-ledger/src/internal/commons"
)

type ClientService interface {
	RegisterClient(ctx context.Context, req models.RegisterClientRequest) (commons.Response[models.ClientResponse], error)
	GetClient(ctx context.Context, cpf string) (commons.Response[models.ClientResponse], error)
	ListClients(ctx context.Context) (commons.Response[[]models.ClientResponse], error)
}
