package request

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("loan request not found")
)

// LoanRequest is the central workflow entity: one customer's application for
// one loan package, plus the three status axes mutated by admin actions.
// Rows are never deleted.
type LoanRequest struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	RequestID  string `gorm:"column:request_id;type:char(32);not null;uniqueIndex:ux_loan_requests_request_id" json:"request_id"`
	CustomerID uint64 `gorm:"column:customer_id;not null;index" json:"-"`
	LoanID     uint64 `gorm:"column:loan_id;not null;index" json:"-"`

	// Personal information
	BirthDate              string `gorm:"column:birth_date;size:10" json:"birth_date"` // YYYY-MM-DD
	Gender                 string `gorm:"column:gender;size:20" json:"gender"`
	SocialInsuranceNumber  string `gorm:"column:social_insurance_number;size:16" json:"social_insurance_number,omitempty"`

	// Address
	AddressLine1 string `gorm:"column:address_line1;size:255" json:"address_line1"`
	AddressLine2 string `gorm:"column:address_line2;size:255" json:"address_line2,omitempty"`
	City         string `gorm:"column:city;size:100" json:"city"`
	Province     string `gorm:"column:province;size:2" json:"province"`
	PostalCode   string `gorm:"column:postal_code;size:10" json:"postal_code"`

	// Income source
	IncomeSource     string    `gorm:"column:income_source;size:20" json:"income_source"`
	BankInstitution  string    `gorm:"column:bank_institution;size:3" json:"bank_institution"`
	PayFrequency     string    `gorm:"column:pay_frequency;size:10" json:"pay_frequency"`
	NextPayDate      string    `gorm:"column:next_pay_date;size:10" json:"next_pay_date"`
	ConsumerProposal bool      `gorm:"column:consumer_proposal" json:"consumer_proposal"`
	Bankruptcy       bool      `gorm:"column:bankruptcy" json:"bankruptcy"`

	// Loan details and consents
	FileTreatmentMethod   string `gorm:"column:file_treatment_method;size:10" json:"file_treatment_method"`
	TermsAccepted         bool   `gorm:"column:terms_accepted" json:"terms_accepted"`
	PrivacyPolicyAccepted bool   `gorm:"column:privacy_policy_accepted" json:"privacy_policy_accepted"`
	MarketingOptIn        bool   `gorm:"column:marketing_opt_in" json:"marketing_opt_in"`

	// Status axes. AdminStatus (the gatekeeping decision) and Stage (the
	// processing pipeline) are independent: an accepted request can still sit
	// early in the pipeline.
	AdminStatus AdminStatus `gorm:"column:admin_request_status;size:10;default:'pending'" json:"admin_request_status"`
	Status      Status      `gorm:"column:status;size:30;default:'pending'" json:"status"`
	Stage       Stage       `gorm:"column:request_stage;size:20;default:'Application'" json:"request_stage"`

	RequestDate time.Time `gorm:"column:request_date;autoCreateTime" json:"request_date"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LoanRequest) TableName() string { return "loan_requests" }

// Reference is a third-party contact supplied by the applicant. Exactly two
// exist per request (reference_order 1 and 2); immutable after creation.
type Reference struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ReferenceID   string    `gorm:"column:reference_id;type:char(32);not null" json:"reference_id"`
	LoanRequestID uint64    `gorm:"column:loan_request_id;not null;index" json:"-"`
	Name          string    `gorm:"column:name;size:100;not null" json:"name"`
	Phone         string    `gorm:"column:phone;size:20;not null" json:"phone"`
	Relationship  string    `gorm:"column:relationship;size:50;not null" json:"relationship"`
	ReferenceOrder int      `gorm:"column:reference_order;not null" json:"reference_order"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Reference) TableName() string { return "references" }

// StatusHistory is the append-only audit row written when the legacy status
// changes. Read-only to the timeline view.
type StatusHistory struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	LoanRequestID uint64    `gorm:"column:loan_request_id;not null;index" json:"-"`
	Status        Status    `gorm:"column:status;size:30;not null" json:"status"`
	Notes         string    `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedBy     string    `gorm:"column:created_by;type:char(32)" json:"created_by"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (StatusHistory) TableName() string { return "loan_status_history" }

// Document is uploaded-file metadata; the file body lives in external storage.
// Created on upload, never mutated.
type Document struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	DocumentID    string    `gorm:"column:document_id;type:char(32);not null" json:"document_id"`
	LoanRequestID uint64    `gorm:"column:loan_request_id;not null;index" json:"-"`
	DocumentType  string    `gorm:"column:document_type;size:50;not null" json:"document_type"`
	FileName      string    `gorm:"column:file_name;size:255;not null" json:"file_name"`
	FilePath      string    `gorm:"column:file_path;type:text;not null" json:"file_path"`
	UploadedBy    string    `gorm:"column:uploaded_by;type:char(32)" json:"uploaded_by"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Document) TableName() string { return "loan_documents" }
