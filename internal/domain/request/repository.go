package request

import "context"

type Repository interface {
	Create(ctx context.Context, r *LoanRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*LoanRequest, error)
	GetByID(ctx context.Context, id uint64) (*LoanRequest, error)
	ListAll(ctx context.Context) ([]LoanRequest, error)
	ListByAdminStatus(ctx context.Context, s AdminStatus) ([]LoanRequest, error)
	ListByCustomerID(ctx context.Context, customerID uint64) ([]LoanRequest, error)
	// Single-field overwrites; any enum member is a legal target.
	UpdateAdminStatus(ctx context.Context, id uint64, s AdminStatus) (*LoanRequest, error)
	UpdateStatus(ctx context.Context, id uint64, s Status) (*LoanRequest, error)
	UpdateStage(ctx context.Context, id uint64, s Stage) (*LoanRequest, error)
}

type ReferenceRepository interface {
	Create(ctx context.Context, r *Reference) error
	ListByLoanRequestID(ctx context.Context, loanRequestID uint64) ([]Reference, error)
}

type HistoryRepository interface {
	Append(ctx context.Context, h *StatusHistory) error
	ListByLoanRequestID(ctx context.Context, loanRequestID uint64) ([]StatusHistory, error)
}

type DocumentRepository interface {
	Create(ctx context.Context, d *Document) error
	ListByLoanRequestID(ctx context.Context, loanRequestID uint64) ([]Document, error)
}
