package customer

import (
	"context"
	"errors"

	"go.uber.org/zap"

	customerDomain "loanflow-service/internal/domain/customer"
	"loanflow-service/internal/domain/identity"
)

// DeleteOutcome reports the two-step customer delete. The row delete and the
// identity delete are independent writes: losing the second leaves an orphaned
// identity, which the caller must surface, not hide behind an error.
type DeleteOutcome struct {
	CustomerDeleted bool   `json:"customer_deleted"`
	AuthDeleted     bool   `json:"auth_deleted"`
	Message         string `json:"message"`
}

type Usecase struct {
	customers  customerDomain.Repository
	identities identity.Store
	log        *zap.Logger
}

func NewUsecase(customers customerDomain.Repository, identities identity.Store, log *zap.Logger) *Usecase {
	return &Usecase{customers: customers, identities: identities, log: log}
}

// List returns every customer, newest first.
func (u *Usecase) List(ctx context.Context) ([]customerDomain.Customer, error) {
	return u.customers.ListAll(ctx)
}

func (u *Usecase) Get(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
	return u.customers.GetByCustomerID(ctx, customerID)
}

// Profile returns the customer owning the authenticated identity.
func (u *Usecase) Profile(ctx context.Context, authID string) (*customerDomain.Customer, error) {
	return u.customers.GetByAuthID(ctx, authID)
}

// UpdateProfile overwrites the editable profile fields of the authenticated
// customer. Identity fields (email, auth link) are not touched here.
func (u *Usecase) UpdateProfile(ctx context.Context, authID string, in UpdateProfileInput) (*customerDomain.Customer, error) {
	c, err := u.customers.GetByAuthID(ctx, authID)
	if err != nil {
		return nil, err
	}
	c.FirstName = in.FirstName
	c.LastName = in.LastName
	c.Phone = in.Phone
	c.AddressLine1 = in.AddressLine1
	c.AddressLine2 = in.AddressLine2
	c.City = in.City
	c.Province = in.Province
	c.PostalCode = in.PostalCode
	if err := u.customers.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes the customer row, then its auth identity. The first failure
// aborts; a failure on the second step is a partial success reported in the
// outcome.
func (u *Usecase) Delete(ctx context.Context, customerID string) (*DeleteOutcome, error) {
	c, err := u.customers.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := u.customers.DeleteByCustomerID(ctx, customerID); err != nil {
		return nil, err
	}

	out := &DeleteOutcome{CustomerDeleted: true}
	if err := u.identities.DeleteByAuthID(ctx, c.AuthID); err != nil && !errors.Is(err, identity.ErrNotFound) {
		u.log.Warn("customer deleted but identity removal failed",
			zap.String("customer_id", customerID),
			zap.String("auth_id", c.AuthID),
			zap.Error(err))
		out.Message = "Customer deleted, but failed to remove authentication"
		return out, nil
	}
	out.AuthDeleted = true
	out.Message = "Customer deleted successfully"

	u.log.Info("customer deleted",
		zap.String("customer_id", customerID),
		zap.String("auth_id", c.AuthID))
	return out, nil
}
