package perception

import (
	"time"

	perceptionDomain "loanflow-service/internal/domain/perception"
	"loanflow-service/internal/domain/stage"
)

// AddInput is the payload for creating a perception. Stage is optional and
// defaults to New.
type AddInput struct {
	RequestID string `json:"request_id" validate:"required,hex32"`
	Stage     string `json:"stage" validate:"omitempty"`
}

// ListItem is one row of the collections board, joined with the loan request
// it tracks.
type ListItem struct {
	PerceptionID  string                 `json:"perception_id"`
	RequestID     string                 `json:"request_id,omitempty"`
	Stage         perceptionDomain.Stage `json:"stage"`
	Amount        float64                `json:"amount,omitempty"`
	Duration      string                 `json:"duration,omitempty"`
	CustomerName  string                 `json:"customer_name,omitempty"`
	CustomerPhone string                 `json:"customer_phone,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

type DetailDTO struct {
	ListItem
	Steps []stage.Step `json:"steps"`
}
