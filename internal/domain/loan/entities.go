package loan

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("loan not found")
)

// Loan is an immutable catalog entry (a loan package the customer picks
// from). Never mutated by the workflow; read-only reference data.
type Loan struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	LoanID       string    `gorm:"column:loan_id;type:char(32);not null;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	Amount       float64   `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	Duration     string    `gorm:"column:duration;size:50;not null" json:"duration"`
	InterestRate float64   `gorm:"column:interest_rate;type:decimal(6,4);not null" json:"interest_rate"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	IsActive     bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }
