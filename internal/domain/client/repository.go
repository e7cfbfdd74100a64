package client

import "context"

type ClientRepository interface {
	Create(ctx context.Context, newClient Client) (Client, error)
	GetByID(ctx context.Context, id string) (Client, error)
	Update(ctx context.Context, updated Client) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit int) ([]Client, error)
}
