package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loanflow-service/internal/adapter/middleware"
	customerDomain "loanflow-service/internal/domain/customer"
	"loanflow-service/internal/usecase/customer"
	"loanflow-service/pkg/listview"
)

type CustomerHandler struct{ uc *customer.Usecase }

func NewCustomerHandler(uc *customer.Usecase) *CustomerHandler { return &CustomerHandler{uc: uc} }

// List is the admin customers table, sortable by name or signup date.
func (h *CustomerHandler) List(c echo.Context) error {
	rows, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	p := parseListParams(c)
	switch c.QueryParam("sort_by") {
	case "name":
		listview.Sort(rows, p.Dir, func(r customerDomain.Customer) listview.SortKey {
			return listview.StringKey(r.LastName + " " + r.FirstName)
		})
	default:
		listview.Sort(rows, p.Dir, func(r customerDomain.Customer) listview.SortKey {
			return listview.TimeKey(r.CreatedAt)
		})
	}
	return c.JSON(http.StatusOK, paged(rows, p))
}

func (h *CustomerHandler) Get(c echo.Context) error {
	customerID := c.Param("customer_id")
	if !reHex32.MatchString(customerID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid customer_id"})
	}
	cust, err := h.uc.Get(c.Request().Context(), customerID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, cust)
}

// Delete removes a customer and its auth identity. A partial failure still
// answers 200; the outcome body says what actually happened.
func (h *CustomerHandler) Delete(c echo.Context) error {
	customerID := c.Param("customer_id")
	if !reHex32.MatchString(customerID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid customer_id"})
	}
	out, err := h.uc.Delete(c.Request().Context(), customerID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Profile returns the authenticated customer's own record.
func (h *CustomerHandler) Profile(c echo.Context) error {
	authID, _ := c.Get(middleware.CtxAuthID).(string)
	cust, err := h.uc.Profile(c.Request().Context(), authID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, cust)
}

func (h *CustomerHandler) UpdateProfile(c echo.Context) error {
	authID, _ := c.Get(middleware.CtxAuthID).(string)
	var req customer.UpdateProfileInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	cust, err := h.uc.UpdateProfile(c.Request().Context(), authID, req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, cust)
}
