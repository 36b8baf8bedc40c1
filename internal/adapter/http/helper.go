package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	customerDomain "loanflow-service/internal/domain/customer"
	identityDomain "loanflow-service/internal/domain/identity"
	loanDomain "loanflow-service/internal/domain/loan"
	perceptionDomain "loanflow-service/internal/domain/perception"
	requestDomain "loanflow-service/internal/domain/request"
	perceptionUC "loanflow-service/internal/usecase/perception"
	requestUC "loanflow-service/internal/usecase/request"
	"loanflow-service/pkg/listview"
)

// writeDomainError maps domain errors to HTTP codes. Anything unrecognized is
// a 500 with a generic body.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, requestDomain.ErrNotFound),
		errors.Is(err, customerDomain.ErrNotFound),
		errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, perceptionDomain.ErrNotFound),
		errors.Is(err, identityDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})

	case errors.Is(err, perceptionDomain.ErrAlreadyExists):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, identityDomain.ErrEmailTaken):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, identityDomain.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})

	case errors.Is(err, requestUC.ErrInvalidStage),
		errors.Is(err, requestUC.ErrInvalidStatus),
		errors.Is(err, requestUC.ErrInvalidAdminStatus),
		errors.Is(err, perceptionUC.ErrInvalidStage):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// listParams are the shared sort/page query parameters of list endpoints.
type listParams struct {
	Dir      listview.Direction
	Page     int
	PageSize int
}

const defaultPageSize = 20

func parseListParams(c echo.Context) listParams {
	p := listParams{Dir: listview.Desc, Page: 0, PageSize: defaultPageSize}
	if c.QueryParam("sort_dir") == string(listview.Asc) {
		p.Dir = listview.Asc
	}
	if n, err := strconv.Atoi(c.QueryParam("page")); err == nil && n >= 0 {
		p.Page = n
	}
	if n, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && n > 0 && n <= 200 {
		p.PageSize = n
	}
	return p
}

// pagedResponse is the standard list envelope.
type pagedResponse struct {
	Items      any `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func paged[T any](rows []T, p listParams) pagedResponse {
	return pagedResponse{
		Items:      listview.Page(rows, p.Page, p.PageSize),
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      len(rows),
		TotalPages: listview.TotalPages(len(rows), p.PageSize),
	}
}
