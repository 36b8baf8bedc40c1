package uow

import (
	"context"

	"loanflow-service/internal/domain/customer"
	"loanflow-service/internal/domain/identity"
	"loanflow-service/internal/domain/request"
)

// Repos bundles the repositories that participate in multi-row writes.
type Repos struct {
	Customers  customer.Repository
	Identities identity.Store
	Requests   request.Repository
	References request.ReferenceRepository
	History    request.HistoryRepository
}

// UnitOfWork runs fn with every repo bound to one database transaction.
// Used for the all-or-nothing writes: request + references, signup
// identity + customer row.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
