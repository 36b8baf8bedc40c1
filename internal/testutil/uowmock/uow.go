package uowmock

import (
	"context"
	"errors"

	"loanflow-service/internal/domain/uow"
)

var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: not configured")

// UoW satisfies uow.UnitOfWork. Either set WithinTxFn, or set Repos (and
// optionally BeginErr) and the default implementation runs fn against them
// without any transaction semantics.
type UoW struct {
	Repos      uow.Repos
	BeginErr   error
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
}

func New(r uow.Repos) *UoW { return &UoW{Repos: r} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	if m.BeginErr != nil {
		return m.BeginErr
	}
	if fn == nil {
		return errUnimplemented
	}
	return fn(m.Repos)
}
