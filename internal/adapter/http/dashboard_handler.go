package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loanflow-service/internal/usecase/dashboard"
)

type DashboardHandler struct{ uc *dashboard.Usecase }

func NewDashboardHandler(uc *dashboard.Usecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) Snapshot(c echo.Context) error {
	snap, err := h.uc.Snapshot(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}
