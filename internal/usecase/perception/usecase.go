package perception

import (
	"context"
	"errors"

	"go.uber.org/zap"

	customerDomain "loanflow-service/internal/domain/customer"
	loanDomain "loanflow-service/internal/domain/loan"
	perceptionDomain "loanflow-service/internal/domain/perception"
	requestDomain "loanflow-service/internal/domain/request"
	"loanflow-service/pkg/id"
)

var ErrInvalidStage = errors.New("unknown perception stage")

type Usecase struct {
	perceptions perceptionDomain.Repository
	requests    requestDomain.Repository
	loans       loanDomain.Repository
	customers   customerDomain.Repository
	log         *zap.Logger
}

func NewUsecase(
	perceptions perceptionDomain.Repository,
	requests requestDomain.Repository,
	loans loanDomain.Repository,
	customers customerDomain.Repository,
	log *zap.Logger,
) *Usecase {
	return &Usecase{perceptions: perceptions, requests: requests, loans: loans, customers: customers, log: log}
}

// Add creates the collections record for a loan request. At most one exists
// per request; the check lives here, not in a storage constraint, and a
// duplicate is a validation failure rather than a storage error.
func (u *Usecase) Add(ctx context.Context, requestID string, s perceptionDomain.Stage) (*perceptionDomain.Perception, error) {
	if !s.Valid() {
		return nil, ErrInvalidStage
	}
	lr, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	_, err = u.perceptions.GetByLoanRequestID(ctx, lr.ID)
	switch {
	case err == nil:
		return nil, perceptionDomain.ErrAlreadyExists
	case !errors.Is(err, perceptionDomain.ErrNotFound):
		return nil, err
	}

	p := &perceptionDomain.Perception{
		PerceptionID:  id.NewID32(),
		LoanRequestID: lr.ID,
		Stage:         s,
	}
	if err := u.perceptions.Create(ctx, p); err != nil {
		return nil, err
	}
	u.log.Info("perception created",
		zap.String("perception_id", p.PerceptionID),
		zap.String("request_id", requestID))
	return p, nil
}

// SetStage overwrites the collections stage; any member of the enum is a
// legal target.
func (u *Usecase) SetStage(ctx context.Context, perceptionID string, s perceptionDomain.Stage) (*perceptionDomain.Perception, error) {
	if !s.Valid() {
		return nil, ErrInvalidStage
	}
	p, err := u.perceptions.GetByPerceptionID(ctx, perceptionID)
	if err != nil {
		return nil, err
	}
	return u.perceptions.UpdateStage(ctx, p.ID, s)
}

// List returns all perceptions joined with their request, loan package and
// customer, newest first.
func (u *Usecase) List(ctx context.Context) ([]ListItem, error) {
	rows, err := u.perceptions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ListItem, 0, len(rows))
	for _, p := range rows {
		out = append(out, u.listItem(ctx, p))
	}
	return out, nil
}

// Detail returns a single perception with its joins and the stage stepper.
func (u *Usecase) Detail(ctx context.Context, perceptionID string) (*DetailDTO, error) {
	p, err := u.perceptions.GetByPerceptionID(ctx, perceptionID)
	if err != nil {
		return nil, err
	}
	item := u.listItem(ctx, *p)
	return &DetailDTO{
		ListItem: item,
		Steps:    p.Stage.Steps(),
	}, nil
}

func (u *Usecase) listItem(ctx context.Context, p perceptionDomain.Perception) ListItem {
	item := ListItem{
		PerceptionID: p.PerceptionID,
		Stage:        p.Stage,
		CreatedAt:    p.CreatedAt,
	}
	lr, err := u.requests.GetByID(ctx, p.LoanRequestID)
	if err != nil {
		return item
	}
	item.RequestID = lr.RequestID
	if pkg, err := u.loans.GetByID(ctx, lr.LoanID); err == nil {
		item.Amount = pkg.Amount
		item.Duration = pkg.Duration
	}
	if cust, err := u.customers.GetByID(ctx, lr.CustomerID); err == nil {
		item.CustomerName = cust.FirstName + " " + cust.LastName
		item.CustomerPhone = cust.Phone
	}
	return item
}
