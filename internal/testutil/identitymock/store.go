package identitymock

import (
	"context"

	domain "loanflow-service/internal/domain/identity"
)

var _ domain.Store = (*Store)(nil)

// Store is a function-backed mock satisfying identity.Store.
type Store struct {
	CreateFn         func(ctx context.Context, u *domain.AuthUser) error
	GetByEmailFn     func(ctx context.Context, email string) (*domain.AuthUser, error)
	GetByAuthIDFn    func(ctx context.Context, authID string) (*domain.AuthUser, error)
	DeleteByAuthIDFn func(ctx context.Context, authID string) error
}

func (m *Store) Create(ctx context.Context, u *domain.AuthUser) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Store) GetByEmail(ctx context.Context, email string) (*domain.AuthUser, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, domain.ErrNotFound
}

func (m *Store) GetByAuthID(ctx context.Context, authID string) (*domain.AuthUser, error) {
	if m.GetByAuthIDFn != nil {
		return m.GetByAuthIDFn(ctx, authID)
	}
	return nil, domain.ErrNotFound
}

func (m *Store) DeleteByAuthID(ctx context.Context, authID string) error {
	if m.DeleteByAuthIDFn != nil {
		return m.DeleteByAuthIDFn(ctx, authID)
	}
	return nil
}
