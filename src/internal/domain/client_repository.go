package domain

import "context"

type ClientRepository interface {
	Create(ctx context.Context, client *Client) (*Client, error)
	GetByCPF(ctx context.Context, cpf string) (*Client, error)
	GetAll(ctx context.Context) ([]*Client, error)
}
