package perceptionmock

import (
	"context"

	domain "loanflow-service/internal/domain/perception"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying perception.Repository. Unfilled
// lookups report not found, which is also the "no perception yet" answer the
// add flow relies on.
type Repo struct {
	CreateFn             func(ctx context.Context, p *domain.Perception) error
	GetByPerceptionIDFn  func(ctx context.Context, perceptionID string) (*domain.Perception, error)
	GetByLoanRequestIDFn func(ctx context.Context, loanRequestID uint64) (*domain.Perception, error)
	ListAllFn            func(ctx context.Context) ([]domain.Perception, error)
	UpdateStageFn        func(ctx context.Context, id uint64, s domain.Stage) (*domain.Perception, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Perception) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPerceptionID(ctx context.Context, perceptionID string) (*domain.Perception, error) {
	if m.GetByPerceptionIDFn != nil {
		return m.GetByPerceptionIDFn(ctx, perceptionID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByLoanRequestID(ctx context.Context, loanRequestID uint64) (*domain.Perception, error) {
	if m.GetByLoanRequestIDFn != nil {
		return m.GetByLoanRequestIDFn(ctx, loanRequestID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Perception, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) UpdateStage(ctx context.Context, id uint64, s domain.Stage) (*domain.Perception, error) {
	if m.UpdateStageFn != nil {
		return m.UpdateStageFn(ctx, id, s)
	}
	return nil, domain.ErrNotFound
}
