package requestmock

import (
	"context"

	domain "loanflow-service/internal/domain/request"
)

var (
	_ domain.Repository          = (*Repo)(nil)
	_ domain.ReferenceRepository = (*RefRepo)(nil)
	_ domain.HistoryRepository   = (*HistoryRepo)(nil)
	_ domain.DocumentRepository  = (*DocRepo)(nil)
)

// Repo is a function-backed mock satisfying request.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, lr *domain.LoanRequest) error
	GetByRequestIDFn    func(ctx context.Context, requestID string) (*domain.LoanRequest, error)
	GetByIDFn           func(ctx context.Context, id uint64) (*domain.LoanRequest, error)
	ListAllFn           func(ctx context.Context) ([]domain.LoanRequest, error)
	ListByAdminStatusFn func(ctx context.Context, s domain.AdminStatus) ([]domain.LoanRequest, error)
	ListByCustomerIDFn  func(ctx context.Context, customerID uint64) ([]domain.LoanRequest, error)
	UpdateAdminStatusFn func(ctx context.Context, id uint64, s domain.AdminStatus) (*domain.LoanRequest, error)
	UpdateStatusFn      func(ctx context.Context, id uint64, s domain.Status) (*domain.LoanRequest, error)
	UpdateStageFn       func(ctx context.Context, id uint64, s domain.Stage) (*domain.LoanRequest, error)
}

func (m *Repo) Create(ctx context.Context, lr *domain.LoanRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, lr)
	}
	return nil
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.LoanRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.LoanRequest, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.LoanRequest, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByAdminStatus(ctx context.Context, s domain.AdminStatus) ([]domain.LoanRequest, error) {
	if m.ListByAdminStatusFn != nil {
		return m.ListByAdminStatusFn(ctx, s)
	}
	return nil, nil
}

func (m *Repo) ListByCustomerID(ctx context.Context, customerID uint64) ([]domain.LoanRequest, error) {
	if m.ListByCustomerIDFn != nil {
		return m.ListByCustomerIDFn(ctx, customerID)
	}
	return nil, nil
}

func (m *Repo) UpdateAdminStatus(ctx context.Context, id uint64, s domain.AdminStatus) (*domain.LoanRequest, error) {
	if m.UpdateAdminStatusFn != nil {
		return m.UpdateAdminStatusFn(ctx, id, s)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) UpdateStatus(ctx context.Context, id uint64, s domain.Status) (*domain.LoanRequest, error) {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, s)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) UpdateStage(ctx context.Context, id uint64, s domain.Stage) (*domain.LoanRequest, error) {
	if m.UpdateStageFn != nil {
		return m.UpdateStageFn(ctx, id, s)
	}
	return nil, domain.ErrNotFound
}

// RefRepo is a function-backed mock satisfying request.ReferenceRepository.
type RefRepo struct {
	CreateFn              func(ctx context.Context, r *domain.Reference) error
	ListByLoanRequestIDFn func(ctx context.Context, loanRequestID uint64) ([]domain.Reference, error)
}

func (m *RefRepo) Create(ctx context.Context, r *domain.Reference) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *RefRepo) ListByLoanRequestID(ctx context.Context, loanRequestID uint64) ([]domain.Reference, error) {
	if m.ListByLoanRequestIDFn != nil {
		return m.ListByLoanRequestIDFn(ctx, loanRequestID)
	}
	return nil, nil
}

// HistoryRepo is a function-backed mock satisfying request.HistoryRepository.
type HistoryRepo struct {
	AppendFn              func(ctx context.Context, h *domain.StatusHistory) error
	ListByLoanRequestIDFn func(ctx context.Context, loanRequestID uint64) ([]domain.StatusHistory, error)
}

func (m *HistoryRepo) Append(ctx context.Context, h *domain.StatusHistory) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, h)
	}
	return nil
}

func (m *HistoryRepo) ListByLoanRequestID(ctx context.Context, loanRequestID uint64) ([]domain.StatusHistory, error) {
	if m.ListByLoanRequestIDFn != nil {
		return m.ListByLoanRequestIDFn(ctx, loanRequestID)
	}
	return nil, nil
}

// DocRepo is a function-backed mock satisfying request.DocumentRepository.
type DocRepo struct {
	CreateFn              func(ctx context.Context, d *domain.Document) error
	ListByLoanRequestIDFn func(ctx context.Context, loanRequestID uint64) ([]domain.Document, error)
}

func (m *DocRepo) Create(ctx context.Context, d *domain.Document) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *DocRepo) ListByLoanRequestID(ctx context.Context, loanRequestID uint64) ([]domain.Document, error) {
	if m.ListByLoanRequestIDFn != nil {
		return m.ListByLoanRequestIDFn(ctx, loanRequestID)
	}
	return nil, nil
}
