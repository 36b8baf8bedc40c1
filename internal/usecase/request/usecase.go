package request

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	customerDomain "loanflow-service/internal/domain/customer"
	loanDomain "loanflow-service/internal/domain/loan"
	"loanflow-service/internal/domain/lookup"
	requestDomain "loanflow-service/internal/domain/request"
	"loanflow-service/internal/domain/uow"
	"loanflow-service/pkg/id"
)

var (
	ErrInvalidStage       = errors.New("unknown request stage")
	ErrInvalidStatus      = errors.New("unknown status")
	ErrInvalidAdminStatus = errors.New("unknown decision value")
)

type Usecase struct {
	requests  requestDomain.Repository
	refs      requestDomain.ReferenceRepository
	history   requestDomain.HistoryRepository
	documents requestDomain.DocumentRepository
	loans     loanDomain.Repository
	customers customerDomain.Repository
	uow       uow.UnitOfWork
	log       *zap.Logger
}

func NewUsecase(
	requests requestDomain.Repository,
	refs requestDomain.ReferenceRepository,
	history requestDomain.HistoryRepository,
	documents requestDomain.DocumentRepository,
	loans loanDomain.Repository,
	customers customerDomain.Repository,
	tx uow.UnitOfWork,
	log *zap.Logger,
) *Usecase {
	return &Usecase{
		requests: requests, refs: refs, history: history, documents: documents,
		loans: loans, customers: customers, uow: tx, log: log,
	}
}

// pad2 zero-pads a day/month sub-field to two digits.
func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// Create inserts the loan request and its two references in one transaction.
// The request starts at admin status pending, legacy status pending, stage
// Application.
func (u *Usecase) Create(ctx context.Context, customerID string, in CreateInput) (*requestDomain.LoanRequest, error) {
	cust, err := u.customers.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	pkg, err := u.loans.GetByLoanID(ctx, in.LoanID)
	if err != nil {
		return nil, err
	}

	birthDate := fmt.Sprintf("%s-%s-%s", in.BirthDate.Year, pad2(in.BirthDate.Month), pad2(in.BirthDate.Day))

	lr := &requestDomain.LoanRequest{
		RequestID:             id.NewID32(),
		CustomerID:            cust.ID,
		LoanID:                pkg.ID,
		BirthDate:             birthDate,
		Gender:                in.Gender,
		SocialInsuranceNumber: in.SocialInsuranceNumber,
		AddressLine1:          in.AddressLine1,
		AddressLine2:          in.AddressLine2,
		City:                  in.City,
		Province:              in.Province,
		PostalCode:            in.PostalCode,
		IncomeSource:          in.IncomeSource,
		BankInstitution:       in.BankInstitution,
		PayFrequency:          in.PayFrequency,
		NextPayDate:           in.NextPayDate,
		ConsumerProposal:      in.ConsumerProposal == "yes",
		Bankruptcy:            in.Bankruptcy == "yes",
		FileTreatmentMethod:   in.FileTreatmentMethod,
		TermsAccepted:         in.TermsAccepted,
		PrivacyPolicyAccepted: in.PrivacyPolicyAccepted,
		MarketingOptIn:        in.MarketingOptIn,
		AdminStatus:           requestDomain.AdminPending,
		Status:                requestDomain.StatusPending,
		Stage:                 requestDomain.StageApplication,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Requests.Create(ctx, lr); err != nil {
			return err
		}
		for i, ref := range []ReferenceInput{in.Reference1, in.Reference2} {
			row := &requestDomain.Reference{
				ReferenceID:    id.NewID32(),
				LoanRequestID:  lr.ID,
				Name:           ref.Name,
				Phone:          ref.Phone,
				Relationship:   ref.Relationship,
				ReferenceOrder: i + 1,
			}
			if err := r.References.Create(ctx, row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("loan request created",
		zap.String("request_id", lr.RequestID),
		zap.String("customer_id", customerID))
	return lr, nil
}

// Decide records the admin decision and then forces the legacy status to
// "reviewing documents" no matter what the decision was, rejections
// included; the customer timeline is driven by that status alone. The two
// writes are independent and not transactional: a failed status write leaves
// the decision in place and is reported via StatusErr.
func (u *Usecase) Decide(ctx context.Context, requestID string, decision requestDomain.AdminStatus, actor string) (*DecideResult, error) {
	if !decision.Valid() {
		return nil, ErrInvalidAdminStatus
	}
	lr, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	updated, err := u.requests.UpdateAdminStatus(ctx, lr.ID, decision)
	if err != nil {
		return nil, err
	}

	res := &DecideResult{Request: updated}
	forced, err := u.requests.UpdateStatus(ctx, lr.ID, requestDomain.StatusReviewingDocuments)
	if err != nil {
		u.log.Warn("decision saved but status write failed",
			zap.String("request_id", requestID), zap.Error(err))
		res.StatusErr = err
		return res, nil
	}
	res.Request = forced
	res.StatusUpdated = true

	u.appendHistory(ctx, lr.ID, requestDomain.StatusReviewingDocuments,
		fmt.Sprintf("decision: %s", decision), actor)
	return res, nil
}

// SetStatus overwrites the legacy status axis. Any member of the enum is a
// legal target; reachability is not checked.
func (u *Usecase) SetStatus(ctx context.Context, requestID string, s requestDomain.Status, actor string) (*requestDomain.LoanRequest, error) {
	if !s.Valid() {
		return nil, ErrInvalidStatus
	}
	lr, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	updated, err := u.requests.UpdateStatus(ctx, lr.ID, s)
	if err != nil {
		return nil, err
	}
	u.appendHistory(ctx, lr.ID, s, "", actor)
	return updated, nil
}

// SetStage overwrites the pipeline stage. Same rules as SetStatus; stage
// moves carry no history row.
func (u *Usecase) SetStage(ctx context.Context, requestID string, s requestDomain.Stage) (*requestDomain.LoanRequest, error) {
	if !s.Valid() {
		return nil, ErrInvalidStage
	}
	lr, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return u.requests.UpdateStage(ctx, lr.ID, s)
}

// appendHistory writes the audit row for a status change. Best effort: the
// status write has already landed, so a history failure is logged, not
// returned.
func (u *Usecase) appendHistory(ctx context.Context, loanRequestID uint64, s requestDomain.Status, notes, actor string) {
	h := &requestDomain.StatusHistory{
		LoanRequestID: loanRequestID,
		Status:        s,
		Notes:         notes,
		CreatedBy:     actor,
	}
	if err := u.history.Append(ctx, h); err != nil {
		u.log.Warn("status history append failed",
			zap.Uint64("loan_request_id", loanRequestID), zap.Error(err))
	}
}

// AddDocument records uploaded-file metadata against a request.
func (u *Usecase) AddDocument(ctx context.Context, requestID, documentType, fileName, filePath, uploadedBy string) (*requestDomain.Document, error) {
	lr, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	d := &requestDomain.Document{
		DocumentID:    id.NewID32(),
		LoanRequestID: lr.ID,
		DocumentType:  documentType,
		FileName:      fileName,
		FilePath:      filePath,
		UploadedBy:    uploadedBy,
	}
	if err := u.documents.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ListDocuments returns the uploaded-file metadata for a request.
func (u *Usecase) ListDocuments(ctx context.Context, requestID string) ([]requestDomain.Document, error) {
	lr, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return u.documents.ListByLoanRequestID(ctx, lr.ID)
}

// List returns the admin requests table, optionally filtered by decision
// status, newest first, with the loan package and customer joined per row.
func (u *Usecase) List(ctx context.Context, adminStatus requestDomain.AdminStatus) ([]AdminListItem, error) {
	var (
		rows []requestDomain.LoanRequest
		err  error
	)
	if adminStatus != "" {
		if !adminStatus.Valid() {
			return nil, ErrInvalidAdminStatus
		}
		rows, err = u.requests.ListByAdminStatus(ctx, adminStatus)
	} else {
		rows, err = u.requests.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]AdminListItem, 0, len(rows))
	for _, lr := range rows {
		item := AdminListItem{
			RequestID:    lr.RequestID,
			RequestDate:  lr.RequestDate,
			PayFrequency: lookup.PayFrequencyName(lr.PayFrequency),
			AdminStatus:  lr.AdminStatus,
			Status:       lr.Status,
			Stage:        lr.Stage,
		}
		if pkg, err := u.loans.GetByID(ctx, lr.LoanID); err == nil {
			item.LoanPackage = LoanPackage{Amount: pkg.Amount, Duration: pkg.Duration}
		}
		if cust, err := u.customers.GetByID(ctx, lr.CustomerID); err == nil {
			item.CustomerName = cust.FirstName + " " + cust.LastName
		}
		out = append(out, item)
	}
	return out, nil
}

// ListForCustomer returns the customer's own requests with the first
// reference name (or "N/A") on each row.
func (u *Usecase) ListForCustomer(ctx context.Context, customerID string) ([]CustomerListItem, error) {
	cust, err := u.customers.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	rows, err := u.requests.ListByCustomerID(ctx, cust.ID)
	if err != nil {
		return nil, err
	}

	out := make([]CustomerListItem, 0, len(rows))
	for _, lr := range rows {
		item := CustomerListItem{
			RequestID:    lr.RequestID,
			RequestDate:  lr.RequestDate,
			PayFrequency: lookup.PayFrequencyName(lr.PayFrequency),
			Reference:    "N/A",
			Status:       lr.Status,
			NextPayDate:  lr.NextPayDate,
			AdminStatus:  lr.AdminStatus,
		}
		if pkg, err := u.loans.GetByID(ctx, lr.LoanID); err == nil {
			item.LoanPackage = LoanPackage{Amount: pkg.Amount, Duration: pkg.Duration}
		}
		if refs, err := u.refs.ListByLoanRequestID(ctx, lr.ID); err == nil {
			for _, ref := range refs {
				if ref.ReferenceOrder == 1 {
					item.Reference = ref.Name
					break
				}
			}
		}
		out = append(out, item)
	}
	return out, nil
}

// Detail assembles the full read model: request, references, joined loan and
// customer, history timeline, documents, and both steppers, with every coded
// field mapped through the label tables.
func (u *Usecase) Detail(ctx context.Context, requestID string) (*DetailDTO, error) {
	lr, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	dto := &DetailDTO{
		RequestID:   lr.RequestID,
		RequestDate: lr.RequestDate,
		AdminStatus: lr.AdminStatus,
		Status:      lr.Status,
		Stage:       lr.Stage,
		StageSteps:  lr.Stage.Steps(),
		StatusSteps: lr.Status.TimelineSteps(),
	}

	dto.PersonalInfo.BirthDate = lr.BirthDate
	dto.PersonalInfo.Gender = lr.Gender
	dto.PersonalInfo.SocialInsuranceNumber = lr.SocialInsuranceNumber

	dto.Address.Line1 = lr.AddressLine1
	dto.Address.Line2 = lr.AddressLine2
	dto.Address.City = lr.City
	dto.Address.Province = lookup.ProvinceName(lr.Province)
	dto.Address.PostalCode = lr.PostalCode

	dto.IncomeSource.Source = lookup.IncomeSourceName(lr.IncomeSource)
	dto.IncomeSource.BankInstitution = lookup.BankName(lr.BankInstitution)
	dto.IncomeSource.PayFrequency = lookup.PayFrequencyName(lr.PayFrequency)
	dto.IncomeSource.NextPayDate = lr.NextPayDate
	dto.IncomeSource.ConsumerProposal = yesNo(lr.ConsumerProposal)
	dto.IncomeSource.Bankruptcy = yesNo(lr.Bankruptcy)

	dto.LoanDetails.FileTreatmentMethod = lr.FileTreatmentMethod
	if pkg, err := u.loans.GetByID(ctx, lr.LoanID); err == nil {
		dto.LoanDetails.LoanID = pkg.LoanID
		dto.LoanDetails.Amount = pkg.Amount
		dto.LoanDetails.Duration = pkg.Duration
		dto.LoanDetails.InterestRate = pkg.InterestRate
	}
	if cust, err := u.customers.GetByID(ctx, lr.CustomerID); err == nil {
		dto.Customer.CustomerID = cust.CustomerID
		dto.Customer.FirstName = cust.FirstName
		dto.Customer.LastName = cust.LastName
		dto.Customer.Email = cust.Email
		dto.Customer.Phone = cust.Phone
	}

	refs, err := u.refs.ListByLoanRequestID(ctx, lr.ID)
	if err != nil {
		return nil, err
	}
	for _, ref := range refs {
		dto.References = append(dto.References, ReferenceDTO{
			Name: ref.Name, Phone: ref.Phone,
			Relationship: ref.Relationship, ReferenceOrder: ref.ReferenceOrder,
		})
	}

	if hist, err := u.history.ListByLoanRequestID(ctx, lr.ID); err == nil {
		for _, h := range hist {
			dto.StatusHistory = append(dto.StatusHistory, HistoryItem{
				Status: h.Status, Notes: h.Notes, Date: h.CreatedAt,
			})
		}
	}
	if docs, err := u.documents.ListByLoanRequestID(ctx, lr.ID); err == nil {
		dto.Documents = docs
	}
	return dto, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
