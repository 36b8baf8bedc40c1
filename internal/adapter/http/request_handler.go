package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loanflow-service/internal/adapter/middleware"
	requestDomain "loanflow-service/internal/domain/request"
	"loanflow-service/internal/usecase/customer"
	"loanflow-service/internal/usecase/request"
	"loanflow-service/pkg/listview"
)

type RequestHandler struct {
	uc        *request.Usecase
	customers *customer.Usecase
}

func NewRequestHandler(uc *request.Usecase, customers *customer.Usecase) *RequestHandler {
	return &RequestHandler{uc: uc, customers: customers}
}

// ownCustomerID resolves the authenticated identity to its customer record.
func (h *RequestHandler) ownCustomerID(c echo.Context) (string, error) {
	authID, _ := c.Get(middleware.CtxAuthID).(string)
	cust, err := h.customers.Profile(c.Request().Context(), authID)
	if err != nil {
		return "", err
	}
	return cust.CustomerID, nil
}

func requestIDParam(c echo.Context) (string, bool) {
	id := c.Param("request_id")
	return id, reHex32.MatchString(id)
}

// Create submits the multi-step application form for the authenticated
// customer.
func (h *RequestHandler) Create(c echo.Context) error {
	customerID, err := h.ownCustomerID(c)
	if err != nil {
		return writeDomainError(c, err)
	}

	var req request.CreateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	lr, err := h.uc.Create(c.Request().Context(), customerID, req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, lr)
}

// ListMine returns the authenticated customer's own requests.
func (h *RequestHandler) ListMine(c echo.Context) error {
	customerID, err := h.ownCustomerID(c)
	if err != nil {
		return writeDomainError(c, err)
	}
	rows, err := h.uc.ListForCustomer(c.Request().Context(), customerID)
	if err != nil {
		return writeDomainError(c, err)
	}
	p := parseListParams(c)
	listview.Sort(rows, p.Dir, func(r request.CustomerListItem) listview.SortKey {
		return listview.TimeKey(r.RequestDate)
	})
	return c.JSON(http.StatusOK, paged(rows, p))
}

// ListAdmin is the admin requests table, optionally filtered by decision
// status and sortable by date, customer or amount.
func (h *RequestHandler) ListAdmin(c echo.Context) error {
	filter := requestDomain.AdminStatus(c.QueryParam("admin_status"))
	rows, err := h.uc.List(c.Request().Context(), filter)
	if err != nil {
		return writeDomainError(c, err)
	}
	p := parseListParams(c)
	switch c.QueryParam("sort_by") {
	case "customer":
		listview.Sort(rows, p.Dir, func(r request.AdminListItem) listview.SortKey {
			return listview.StringKey(r.CustomerName)
		})
	case "amount":
		listview.Sort(rows, p.Dir, func(r request.AdminListItem) listview.SortKey {
			return listview.NumberKey(r.LoanPackage.Amount)
		})
	default:
		listview.Sort(rows, p.Dir, func(r request.AdminListItem) listview.SortKey {
			return listview.TimeKey(r.RequestDate)
		})
	}
	return c.JSON(http.StatusOK, paged(rows, p))
}

func (h *RequestHandler) Detail(c echo.Context) error {
	requestID, ok := requestIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request_id"})
	}
	dto, err := h.uc.Detail(c.Request().Context(), requestID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type decideReq struct {
	Decision string `json:"decision" validate:"required,oneof=pending accept rejected"`
}

type decideResp struct {
	Request       *requestDomain.LoanRequest `json:"request"`
	StatusUpdated bool                       `json:"status_updated"`
	Message       string                     `json:"message,omitempty"`
}

// Decide records the admin decision. A failed follow-up status write is still
// a 200; the body carries the partial outcome.
func (h *RequestHandler) Decide(c echo.Context) error {
	requestID, ok := requestIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request_id"})
	}
	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	actor, _ := c.Get(middleware.CtxAuthID).(string)
	res, err := h.uc.Decide(c.Request().Context(), requestID, requestDomain.AdminStatus(req.Decision), actor)
	if err != nil {
		return writeDomainError(c, err)
	}
	resp := decideResp{Request: res.Request, StatusUpdated: res.StatusUpdated}
	if res.StatusErr != nil {
		resp.Message = "decision saved, but status update failed"
	}
	return c.JSON(http.StatusOK, resp)
}

type setStatusReq struct {
	Status string `json:"status" validate:"required"`
}

func (h *RequestHandler) SetStatus(c echo.Context) error {
	requestID, ok := requestIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request_id"})
	}
	var req setStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	actor, _ := c.Get(middleware.CtxAuthID).(string)
	lr, err := h.uc.SetStatus(c.Request().Context(), requestID, requestDomain.Status(req.Status), actor)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, lr)
}

type setStageReq struct {
	Stage string `json:"stage" validate:"required"`
}

func (h *RequestHandler) SetStage(c echo.Context) error {
	requestID, ok := requestIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request_id"})
	}
	var req setStageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	lr, err := h.uc.SetStage(c.Request().Context(), requestID, requestDomain.Stage(req.Stage))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, lr)
}

func (h *RequestHandler) ListDocuments(c echo.Context) error {
	requestID, ok := requestIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request_id"})
	}
	docs, err := h.uc.ListDocuments(c.Request().Context(), requestID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, docs)
}

type addDocumentReq struct {
	DocumentType string `json:"document_type" validate:"required"`
	FileName     string `json:"file_name" validate:"required"`
	FilePath     string `json:"file_path" validate:"required"`
}

func (h *RequestHandler) AddDocument(c echo.Context) error {
	requestID, ok := requestIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request_id"})
	}
	var req addDocumentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	actor, _ := c.Get(middleware.CtxAuthID).(string)
	doc, err := h.uc.AddDocument(c.Request().Context(), requestID, req.DocumentType, req.FileName, req.FilePath, actor)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, doc)
}
