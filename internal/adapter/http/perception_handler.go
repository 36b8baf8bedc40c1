package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	perceptionDomain "loanflow-service/internal/domain/perception"
	"loanflow-service/internal/usecase/perception"
	"loanflow-service/pkg/listview"
)

type PerceptionHandler struct{ uc *perception.Usecase }

func NewPerceptionHandler(uc *perception.Usecase) *PerceptionHandler {
	return &PerceptionHandler{uc: uc}
}

func (h *PerceptionHandler) Add(c echo.Context) error {
	var req perception.AddInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	stage := perceptionDomain.Stage(req.Stage)
	if req.Stage == "" {
		stage = perceptionDomain.StageNew
	}
	p, err := h.uc.Add(c.Request().Context(), req.RequestID, stage)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PerceptionHandler) List(c echo.Context) error {
	rows, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	p := parseListParams(c)
	switch c.QueryParam("sort_by") {
	case "customer":
		listview.Sort(rows, p.Dir, func(r perception.ListItem) listview.SortKey {
			return listview.StringKey(r.CustomerName)
		})
	case "amount":
		listview.Sort(rows, p.Dir, func(r perception.ListItem) listview.SortKey {
			return listview.NumberKey(r.Amount)
		})
	default:
		listview.Sort(rows, p.Dir, func(r perception.ListItem) listview.SortKey {
			return listview.TimeKey(r.CreatedAt)
		})
	}
	return c.JSON(http.StatusOK, paged(rows, p))
}

func (h *PerceptionHandler) Detail(c echo.Context) error {
	perceptionID := c.Param("perception_id")
	if !reHex32.MatchString(perceptionID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid perception_id"})
	}
	dto, err := h.uc.Detail(c.Request().Context(), perceptionID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type setPerceptionStageReq struct {
	Stage string `json:"stage" validate:"required"`
}

func (h *PerceptionHandler) SetStage(c echo.Context) error {
	perceptionID := c.Param("perception_id")
	if !reHex32.MatchString(perceptionID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid perception_id"})
	}
	var req setPerceptionStageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	p, err := h.uc.SetStage(c.Request().Context(), perceptionID, perceptionDomain.Stage(req.Stage))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
