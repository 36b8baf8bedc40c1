package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByCustomerID(ctx context.Context, customerID string) (*Customer, error)
	GetByID(ctx context.Context, id uint64) (*Customer, error)
	GetByAuthID(ctx context.Context, authID string) (*Customer, error)
	ListAll(ctx context.Context) ([]Customer, error)
	Save(ctx context.Context, c *Customer) error
	DeleteByCustomerID(ctx context.Context, customerID string) error
}
