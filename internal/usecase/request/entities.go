package request

import (
	"time"

	requestDomain "loanflow-service/internal/domain/request"
	"loanflow-service/internal/domain/stage"
)

// BirthDateInput arrives as three separate sub-fields from the multi-step
// form; month and day are zero-padded to two digits on assembly.
type BirthDateInput struct {
	Year  string `json:"year" validate:"required,len=4,number"`
	Month string `json:"month" validate:"required,min=1,max=2,number"`
	Day   string `json:"day" validate:"required,min=1,max=2,number"`
}

type ReferenceInput struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Relationship string `json:"relationship" validate:"required"`
}

// CreateInput is the full application payload of the multi-step form.
type CreateInput struct {
	LoanID string `json:"loan_id" validate:"required,hex32"`

	BirthDate             BirthDateInput `json:"birth_date"`
	Gender                string         `json:"gender" validate:"required,oneof=male female other prefer-not-to-say"`
	SocialInsuranceNumber string         `json:"social_insurance_number"`

	AddressLine1 string `json:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" validate:"required"`
	Province     string `json:"province" validate:"required,len=2"`
	PostalCode   string `json:"postal_code" validate:"required"`

	Reference1 ReferenceInput `json:"reference1"`
	Reference2 ReferenceInput `json:"reference2"`

	IncomeSource     string `json:"income_source" validate:"required,oneof=employed saaq CSST pension invalidity insurance rqap"`
	BankInstitution  string `json:"bank_institution" validate:"required,len=3"`
	PayFrequency     string `json:"pay_frequency" validate:"required,oneof=1month 2weeks bimonthly 1week"`
	NextPayDate      string `json:"next_pay_date" validate:"required,datetime=2006-01-02"`
	ConsumerProposal string `json:"consumer_proposal" validate:"required,oneof=yes no"`
	Bankruptcy       string `json:"bankruptcy" validate:"required,oneof=yes no"`

	FileTreatmentMethod   string `json:"file_treatment_method" validate:"required,oneof=normal priority"`
	TermsAccepted         bool   `json:"terms_accepted" validate:"required"`
	PrivacyPolicyAccepted bool   `json:"privacy_policy_accepted" validate:"required"`
	MarketingOptIn        bool   `json:"marketing_opt_in"`
}

// LoanPackage is the joined catalog snapshot shown on every list row.
type LoanPackage struct {
	Amount   float64 `json:"amount"`
	Duration string  `json:"duration"`
}

// AdminListItem is one row of the admin requests table.
type AdminListItem struct {
	RequestID    string                    `json:"request_id"`
	RequestDate  time.Time                 `json:"request_date"`
	CustomerName string                    `json:"customer_name"`
	LoanPackage  LoanPackage               `json:"loan_package"`
	PayFrequency string                    `json:"pay_frequency"`
	AdminStatus  requestDomain.AdminStatus `json:"admin_request_status"`
	Status       requestDomain.Status      `json:"status"`
	Stage        requestDomain.Stage       `json:"request_stage"`
}

// CustomerListItem is one row of the customer's own requests table.
type CustomerListItem struct {
	RequestID    string                    `json:"request_id"`
	RequestDate  time.Time                 `json:"request_date"`
	LoanPackage  LoanPackage               `json:"loan_package"`
	PayFrequency string                    `json:"pay_frequency"`
	Reference    string                    `json:"reference"`
	Status       requestDomain.Status      `json:"status"`
	NextPayDate  string                    `json:"next_pay_date"`
	AdminStatus  requestDomain.AdminStatus `json:"admin_request_status"`
}

// HistoryItem is one timeline entry.
type HistoryItem struct {
	Status requestDomain.Status `json:"status"`
	Notes  string               `json:"notes,omitempty"`
	Date   time.Time            `json:"date"`
}

// DetailDTO is the full read model for the request detail pages: raw values
// with the code-to-label lookups applied, plus both steppers.
type DetailDTO struct {
	RequestID   string                    `json:"request_id"`
	RequestDate time.Time                 `json:"request_date"`
	AdminStatus requestDomain.AdminStatus `json:"admin_request_status"`
	Status      requestDomain.Status      `json:"status"`
	Stage       requestDomain.Stage       `json:"request_stage"`

	Customer struct {
		CustomerID string `json:"customer_id"`
		FirstName  string `json:"first_name"`
		LastName   string `json:"last_name"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
	} `json:"customer"`

	PersonalInfo struct {
		BirthDate             string `json:"birth_date"`
		Gender                string `json:"gender"`
		SocialInsuranceNumber string `json:"social_insurance_number,omitempty"`
	} `json:"personal_info"`

	Address struct {
		Line1      string `json:"line1"`
		Line2      string `json:"line2,omitempty"`
		City       string `json:"city"`
		Province   string `json:"province"`
		PostalCode string `json:"postal_code"`
	} `json:"address"`

	IncomeSource struct {
		Source           string `json:"source"`
		BankInstitution  string `json:"bank_institution"`
		PayFrequency     string `json:"pay_frequency"`
		NextPayDate      string `json:"next_pay_date"`
		ConsumerProposal string `json:"consumer_proposal"`
		Bankruptcy       string `json:"bankruptcy"`
	} `json:"income_source"`

	LoanDetails struct {
		LoanID              string  `json:"loan_id"`
		Amount              float64 `json:"amount"`
		Duration            string  `json:"duration"`
		InterestRate        float64 `json:"interest_rate"`
		FileTreatmentMethod string  `json:"file_treatment_method"`
	} `json:"loan_details"`

	References    []ReferenceDTO         `json:"references"`
	StatusHistory []HistoryItem          `json:"status_history"`
	Documents     []requestDomain.Document `json:"documents,omitempty"`

	StageSteps  []stage.Step `json:"stage_steps"`
	StatusSteps []stage.Step `json:"status_steps"`
}

type ReferenceDTO struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Relationship   string `json:"relationship"`
	ReferenceOrder int    `json:"reference_order"`
}

// DecideResult reports the two independent writes of a decision. Err-free
// means both landed; StatusErr set means the decision was saved but the
// forced status write failed (a partial update the caller must surface).
type DecideResult struct {
	Request       *requestDomain.LoanRequest `json:"request"`
	StatusUpdated bool                       `json:"status_updated"`
	StatusErr     error                      `json:"-"`
}
