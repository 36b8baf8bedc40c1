package customermock

import (
	"context"

	domain "loanflow-service/internal/domain/customer"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying customer.Repository. Fill in the
// Fn fields a test needs; unfilled lookups report not found.
type Repo struct {
	CreateFn             func(ctx context.Context, c *domain.Customer) error
	GetByCustomerIDFn    func(ctx context.Context, customerID string) (*domain.Customer, error)
	GetByIDFn            func(ctx context.Context, id uint64) (*domain.Customer, error)
	GetByAuthIDFn        func(ctx context.Context, authID string) (*domain.Customer, error)
	ListAllFn            func(ctx context.Context) ([]domain.Customer, error)
	SaveFn               func(ctx context.Context, c *domain.Customer) error
	DeleteByCustomerIDFn func(ctx context.Context, customerID string) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByCustomerID(ctx context.Context, customerID string) (*domain.Customer, error) {
	if m.GetByCustomerIDFn != nil {
		return m.GetByCustomerIDFn(ctx, customerID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Customer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByAuthID(ctx context.Context, authID string) (*domain.Customer, error) {
	if m.GetByAuthIDFn != nil {
		return m.GetByAuthIDFn(ctx, authID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Customer, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, c *domain.Customer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) DeleteByCustomerID(ctx context.Context, customerID string) error {
	if m.DeleteByCustomerIDFn != nil {
		return m.DeleteByCustomerIDFn(ctx, customerID)
	}
	return nil
}
