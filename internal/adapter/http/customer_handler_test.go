package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	customerDomain "loanflow-service/internal/domain/customer"
	"loanflow-service/internal/testutil/customermock"
	"loanflow-service/internal/testutil/identitymock"
	customerUC "loanflow-service/internal/usecase/customer"
)

const custID = "c1000000000000000000000000000001"

func deleteCtx(e *echo.Echo, id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodDelete, "/admin/customers/"+id, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("customer_id")
	c.SetParamValues(id)
	return c, rec
}

func TestDeleteEndpointReportsPartialFailure(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	customers := &customermock.Repo{
		GetByCustomerIDFn: func(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
			return &customerDomain.Customer{CustomerID: customerID, AuthID: "a1000000000000000000000000000001"}, nil
		},
		DeleteByCustomerIDFn: func(ctx context.Context, customerID string) error { return nil },
	}
	identities := &identitymock.Store{
		DeleteByAuthIDFn: func(ctx context.Context, authID string) error {
			return errors.New("auth store down")
		},
	}
	h := NewCustomerHandler(customerUC.NewUsecase(customers, identities, zap.NewNop()))

	c, rec := deleteCtx(e, custID)
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	// Partial success is still a 200; the body carries the caveat.
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	var out customerUC.DeleteOutcome
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("body: %v", err)
	}
	if !out.CustomerDeleted || out.AuthDeleted {
		t.Fatalf("outcome = %+v", out)
	}
	if out.Message != "Customer deleted, but failed to remove authentication" {
		t.Fatalf("message = %q", out.Message)
	}
}

func TestDeleteEndpointValidatesParam(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewCustomerHandler(customerUC.NewUsecase(&customermock.Repo{}, &identitymock.Store{}, zap.NewNop()))

	c, rec := deleteCtx(e, "not-hex")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}

	c, rec = deleteCtx(e, custID)
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown customer: want 404, got %d", rec.Code)
	}
}
