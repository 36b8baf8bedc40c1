package http

import (
	"github.com/labstack/echo/v4"
)

// Handlers bundles everything RegisterRoutes wires up.
type Handlers struct {
	Base       *Handler
	Auth       *AuthHandler
	Customer   *CustomerHandler
	Loan       *LoanHandler
	Request    *RequestHandler
	Perception *PerceptionHandler
	Dashboard  *DashboardHandler
}

// RegisterRoutes lays out the API surface: public auth and catalog routes, a
// /me group for the authenticated customer, and an /admin group behind the
// role gate. Mutating routes in both groups sit behind the idempotency
// middleware, which needs the identity set by authMW.
func RegisterRoutes(e *echo.Echo, h Handlers, authMW, adminMW, idemMW echo.MiddlewareFunc) {
	e.GET("/health", h.Base.Health)

	e.POST("/auth/signup", h.Auth.SignUp)
	e.POST("/auth/signin", h.Auth.SignIn)
	e.POST("/auth/signout", h.Auth.SignOut)

	e.GET("/loans", h.Loan.ListActive)
	e.GET("/loans/:loan_id", h.Loan.Get)

	me := e.Group("/me", authMW)
	me.GET("/profile", h.Customer.Profile)
	me.PUT("/profile", h.Customer.UpdateProfile, idemMW)
	me.GET("/requests", h.Request.ListMine)
	me.POST("/requests", h.Request.Create, idemMW)
	me.GET("/requests/:request_id", h.Request.Detail)

	admin := e.Group("/admin", authMW, adminMW)
	admin.GET("/dashboard", h.Dashboard.Snapshot)

	admin.GET("/requests", h.Request.ListAdmin)
	admin.GET("/requests/:request_id", h.Request.Detail)
	admin.PATCH("/requests/:request_id/decision", h.Request.Decide, idemMW)
	admin.PATCH("/requests/:request_id/status", h.Request.SetStatus, idemMW)
	admin.PATCH("/requests/:request_id/stage", h.Request.SetStage, idemMW)
	admin.GET("/requests/:request_id/documents", h.Request.ListDocuments)
	admin.POST("/requests/:request_id/documents", h.Request.AddDocument, idemMW)

	admin.GET("/customers", h.Customer.List)
	admin.GET("/customers/:customer_id", h.Customer.Get)
	admin.DELETE("/customers/:customer_id", h.Customer.Delete, idemMW)

	admin.GET("/perceptions", h.Perception.List)
	admin.POST("/perceptions", h.Perception.Add, idemMW)
	admin.GET("/perceptions/:perception_id", h.Perception.Detail)
	admin.PATCH("/perceptions/:perception_id/stage", h.Perception.SetStage, idemMW)
}
