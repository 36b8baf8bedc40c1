package loan

import (
	"context"

	loanDomain "loanflow-service/internal/domain/loan"
)

// Usecase exposes the read-only loan catalog.
type Usecase struct {
	loans loanDomain.Repository
}

func NewUsecase(loans loanDomain.Repository) *Usecase {
	return &Usecase{loans: loans}
}

// ListActive returns the packages offered to applicants.
func (u *Usecase) ListActive(ctx context.Context) ([]loanDomain.Loan, error) {
	return u.loans.ListActive(ctx)
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	return u.loans.GetByLoanID(ctx, loanID)
}
