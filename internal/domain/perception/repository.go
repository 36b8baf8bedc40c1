package perception

import "context"

type Repository interface {
	Create(ctx context.Context, p *Perception) error
	GetByPerceptionID(ctx context.Context, perceptionID string) (*Perception, error)
	// GetByLoanRequestID returns ErrNotFound when no perception exists yet;
	// the add operation relies on that to enforce the one-per-request rule.
	GetByLoanRequestID(ctx context.Context, loanRequestID uint64) (*Perception, error)
	ListAll(ctx context.Context) ([]Perception, error)
	UpdateStage(ctx context.Context, id uint64, s Stage) (*Perception, error)
}
