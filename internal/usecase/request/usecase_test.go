package request

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	customerDomain "loanflow-service/internal/domain/customer"
	loanDomain "loanflow-service/internal/domain/loan"
	requestDomain "loanflow-service/internal/domain/request"
	"loanflow-service/internal/domain/uow"
	"loanflow-service/internal/testutil/customermock"
	"loanflow-service/internal/testutil/loanmock"
	"loanflow-service/internal/testutil/requestmock"
	"loanflow-service/internal/testutil/uowmock"
)

func testCustomer() *customerDomain.Customer {
	return &customerDomain.Customer{
		ID:         7,
		CustomerID: "c1000000000000000000000000000001",
		FirstName:  "Marie",
		LastName:   "Tremblay",
		Email:      "marie@example.com",
		Phone:      "514-555-0101",
	}
}

func testLoan() *loanDomain.Loan {
	return &loanDomain.Loan{
		ID:       3,
		LoanID:   "a1000000000000000000000000000001",
		Amount:   750,
		Duration: "3 months",
	}
}

func testCreateInput() CreateInput {
	return CreateInput{
		LoanID:              "a1000000000000000000000000000001",
		BirthDate:           BirthDateInput{Year: "1990", Month: "3", Day: "5"},
		Gender:              "female",
		AddressLine1:        "12 Rue Principale",
		City:                "Montreal",
		Province:            "QC",
		PostalCode:          "H2X 1Y4",
		Reference1:          ReferenceInput{Name: "Luc", Phone: "514-555-0102", Relationship: "friend"},
		Reference2:          ReferenceInput{Name: "Eva", Phone: "514-555-0103", Relationship: "sibling"},
		IncomeSource:        "employed",
		BankInstitution:     "003",
		PayFrequency:        "2weeks",
		NextPayDate:         "2026-09-15",
		ConsumerProposal:    "no",
		Bankruptcy:          "no",
		FileTreatmentMethod: "priority",
		TermsAccepted:       true,
	}
}

func newTestUsecase(
	requests *requestmock.Repo,
	refs *requestmock.RefRepo,
	history *requestmock.HistoryRepo,
	loans *loanmock.Repo,
	customers *customermock.Repo,
	tx uow.UnitOfWork,
) *Usecase {
	return NewUsecase(requests, refs, history, &requestmock.DocRepo{}, loans, customers, tx, zap.NewNop())
}

func TestCreateInsertsRequestAndOrderedReferences(t *testing.T) {
	var createdRequest *requestDomain.LoanRequest
	var createdRefs []requestDomain.Reference

	requests := &requestmock.Repo{
		CreateFn: func(ctx context.Context, lr *requestDomain.LoanRequest) error {
			lr.ID = 42
			createdRequest = lr
			return nil
		},
	}
	refs := &requestmock.RefRepo{
		CreateFn: func(ctx context.Context, r *requestDomain.Reference) error {
			createdRefs = append(createdRefs, *r)
			return nil
		},
	}
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
			return testLoan(), nil
		},
	}
	customers := &customermock.Repo{
		GetByCustomerIDFn: func(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
			return testCustomer(), nil
		},
	}
	tx := uowmock.New(uow.Repos{Requests: requests, References: refs})

	uc := newTestUsecase(requests, refs, &requestmock.HistoryRepo{}, loans, customers, tx)
	lr, err := uc.Create(context.Background(), "c1000000000000000000000000000001", testCreateInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if createdRequest == nil {
		t.Fatal("request row was not written")
	}
	if lr.CustomerID != 7 || lr.LoanID != 3 {
		t.Fatalf("foreign keys = (%d, %d), want (7, 3)", lr.CustomerID, lr.LoanID)
	}
	if lr.BirthDate != "1990-03-05" {
		t.Fatalf("birth date = %q, want zero-padded 1990-03-05", lr.BirthDate)
	}
	if lr.AdminStatus != requestDomain.AdminPending ||
		lr.Status != requestDomain.StatusPending ||
		lr.Stage != requestDomain.StageApplication {
		t.Fatalf("initial state = (%s, %s, %s)", lr.AdminStatus, lr.Status, lr.Stage)
	}

	if len(createdRefs) != 2 {
		t.Fatalf("got %d references, want 2", len(createdRefs))
	}
	for i, ref := range createdRefs {
		if ref.LoanRequestID != 42 {
			t.Fatalf("reference %d bound to request %d, want 42", i, ref.LoanRequestID)
		}
		if ref.ReferenceOrder != i+1 {
			t.Fatalf("reference %d has order %d, want %d", i, ref.ReferenceOrder, i+1)
		}
	}
	if createdRefs[0].Name != "Luc" || createdRefs[1].Name != "Eva" {
		t.Fatalf("reference names = %q, %q", createdRefs[0].Name, createdRefs[1].Name)
	}
}

func TestCreateRollsIntoSingleTransaction(t *testing.T) {
	refErr := errors.New("reference insert refused")
	requests := &requestmock.Repo{
		CreateFn: func(ctx context.Context, lr *requestDomain.LoanRequest) error {
			lr.ID = 42
			return nil
		},
	}
	refs := &requestmock.RefRepo{
		CreateFn: func(ctx context.Context, r *requestDomain.Reference) error { return refErr },
	}
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
			return testLoan(), nil
		},
	}
	customers := &customermock.Repo{
		GetByCustomerIDFn: func(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
			return testCustomer(), nil
		},
	}
	tx := uowmock.New(uow.Repos{Requests: requests, References: refs})

	uc := newTestUsecase(requests, refs, &requestmock.HistoryRepo{}, loans, customers, tx)
	if _, err := uc.Create(context.Background(), "c1000000000000000000000000000001", testCreateInput()); !errors.Is(err, refErr) {
		t.Fatalf("err = %v, want the reference failure to abort the transaction", err)
	}
}

func TestDecideForcesReviewingDocuments(t *testing.T) {
	for _, decision := range []requestDomain.AdminStatus{requestDomain.AdminAccept, requestDomain.AdminRejected} {
		var gotStatus requestDomain.Status
		var history []requestDomain.StatusHistory

		requests := &requestmock.Repo{
			GetByRequestIDFn: func(ctx context.Context, requestID string) (*requestDomain.LoanRequest, error) {
				return &requestDomain.LoanRequest{ID: 42, RequestID: requestID}, nil
			},
			UpdateAdminStatusFn: func(ctx context.Context, id uint64, s requestDomain.AdminStatus) (*requestDomain.LoanRequest, error) {
				return &requestDomain.LoanRequest{ID: id, AdminStatus: s}, nil
			},
			UpdateStatusFn: func(ctx context.Context, id uint64, s requestDomain.Status) (*requestDomain.LoanRequest, error) {
				gotStatus = s
				return &requestDomain.LoanRequest{ID: id, AdminStatus: decision, Status: s}, nil
			},
		}
		hist := &requestmock.HistoryRepo{
			AppendFn: func(ctx context.Context, h *requestDomain.StatusHistory) error {
				history = append(history, *h)
				return nil
			},
		}

		uc := newTestUsecase(requests, &requestmock.RefRepo{}, hist, &loanmock.Repo{}, &customermock.Repo{}, uowmock.New(uow.Repos{}))
		res, err := uc.Decide(context.Background(), "r1000000000000000000000000000001", decision, "admin@example.com")
		if err != nil {
			t.Fatalf("Decide(%s): %v", decision, err)
		}
		if gotStatus != requestDomain.StatusReviewingDocuments {
			t.Fatalf("Decide(%s) wrote status %q, want %q", decision, gotStatus, requestDomain.StatusReviewingDocuments)
		}
		if !res.StatusUpdated || res.StatusErr != nil {
			t.Fatalf("Decide(%s) result = %+v, want both writes reported", decision, res)
		}
		if res.Request.AdminStatus != decision {
			t.Fatalf("Decide(%s) kept admin status %q", decision, res.Request.AdminStatus)
		}
		if len(history) != 1 || history[0].Status != requestDomain.StatusReviewingDocuments {
			t.Fatalf("Decide(%s) history = %+v", decision, history)
		}
	}
}

func TestDecidePartialFailureKeepsDecision(t *testing.T) {
	statusErr := errors.New("status write refused")
	requests := &requestmock.Repo{
		GetByRequestIDFn: func(ctx context.Context, requestID string) (*requestDomain.LoanRequest, error) {
			return &requestDomain.LoanRequest{ID: 42, RequestID: requestID}, nil
		},
		UpdateAdminStatusFn: func(ctx context.Context, id uint64, s requestDomain.AdminStatus) (*requestDomain.LoanRequest, error) {
			return &requestDomain.LoanRequest{ID: id, AdminStatus: s}, nil
		},
		UpdateStatusFn: func(ctx context.Context, id uint64, s requestDomain.Status) (*requestDomain.LoanRequest, error) {
			return nil, statusErr
		},
	}

	uc := newTestUsecase(requests, &requestmock.RefRepo{}, &requestmock.HistoryRepo{}, &loanmock.Repo{}, &customermock.Repo{}, uowmock.New(uow.Repos{}))
	res, err := uc.Decide(context.Background(), "r1000000000000000000000000000001", requestDomain.AdminAccept, "admin@example.com")
	if err != nil {
		t.Fatalf("Decide: %v (partial failure must not be an error)", err)
	}
	if res.StatusUpdated {
		t.Fatal("StatusUpdated = true after a failed status write")
	}
	if !errors.Is(res.StatusErr, statusErr) {
		t.Fatalf("StatusErr = %v, want %v", res.StatusErr, statusErr)
	}
	if res.Request.AdminStatus != requestDomain.AdminAccept {
		t.Fatalf("decision lost: admin status = %q", res.Request.AdminStatus)
	}
}

func TestDecideRejectsUnknownValue(t *testing.T) {
	uc := newTestUsecase(&requestmock.Repo{}, &requestmock.RefRepo{}, &requestmock.HistoryRepo{}, &loanmock.Repo{}, &customermock.Repo{}, uowmock.New(uow.Repos{}))
	if _, err := uc.Decide(context.Background(), "r1000000000000000000000000000001", "maybe", "admin@example.com"); !errors.Is(err, ErrInvalidAdminStatus) {
		t.Fatalf("err = %v, want ErrInvalidAdminStatus", err)
	}
}

func TestSetStatusValidatesAndWritesHistory(t *testing.T) {
	var history []requestDomain.StatusHistory
	requests := &requestmock.Repo{
		GetByRequestIDFn: func(ctx context.Context, requestID string) (*requestDomain.LoanRequest, error) {
			return &requestDomain.LoanRequest{ID: 42, RequestID: requestID, Status: requestDomain.StatusComplete}, nil
		},
		UpdateStatusFn: func(ctx context.Context, id uint64, s requestDomain.Status) (*requestDomain.LoanRequest, error) {
			return &requestDomain.LoanRequest{ID: id, Status: s}, nil
		},
	}
	hist := &requestmock.HistoryRepo{
		AppendFn: func(ctx context.Context, h *requestDomain.StatusHistory) error {
			history = append(history, *h)
			return nil
		},
	}

	uc := newTestUsecase(requests, &requestmock.RefRepo{}, hist, &loanmock.Repo{}, &customermock.Repo{}, uowmock.New(uow.Repos{}))

	// Backwards move from a terminal status is allowed.
	updated, err := uc.SetStatus(context.Background(), "r1000000000000000000000000000001", requestDomain.StatusPending, "admin@example.com")
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if updated.Status != requestDomain.StatusPending {
		t.Fatalf("status = %q, want pending", updated.Status)
	}
	if len(history) != 1 || history[0].Status != requestDomain.StatusPending || history[0].CreatedBy != "admin@example.com" {
		t.Fatalf("history = %+v", history)
	}

	if _, err := uc.SetStatus(context.Background(), "r1000000000000000000000000000001", "archived", "admin@example.com"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestSetStatusHistoryFailureIsSwallowed(t *testing.T) {
	requests := &requestmock.Repo{
		GetByRequestIDFn: func(ctx context.Context, requestID string) (*requestDomain.LoanRequest, error) {
			return &requestDomain.LoanRequest{ID: 42, RequestID: requestID}, nil
		},
		UpdateStatusFn: func(ctx context.Context, id uint64, s requestDomain.Status) (*requestDomain.LoanRequest, error) {
			return &requestDomain.LoanRequest{ID: id, Status: s}, nil
		},
	}
	hist := &requestmock.HistoryRepo{
		AppendFn: func(ctx context.Context, h *requestDomain.StatusHistory) error {
			return errors.New("history table gone")
		},
	}

	uc := newTestUsecase(requests, &requestmock.RefRepo{}, hist, &loanmock.Repo{}, &customermock.Repo{}, uowmock.New(uow.Repos{}))
	if _, err := uc.SetStatus(context.Background(), "r1000000000000000000000000000001", requestDomain.StatusValidation, "admin@example.com"); err != nil {
		t.Fatalf("SetStatus: %v (history failure must not surface)", err)
	}
}

func TestSetStageValidatesAndSkipsHistory(t *testing.T) {
	appended := 0
	requests := &requestmock.Repo{
		GetByRequestIDFn: func(ctx context.Context, requestID string) (*requestDomain.LoanRequest, error) {
			return &requestDomain.LoanRequest{ID: 42, RequestID: requestID}, nil
		},
		UpdateStageFn: func(ctx context.Context, id uint64, s requestDomain.Stage) (*requestDomain.LoanRequest, error) {
			return &requestDomain.LoanRequest{ID: id, Stage: s}, nil
		},
	}
	hist := &requestmock.HistoryRepo{
		AppendFn: func(ctx context.Context, h *requestDomain.StatusHistory) error {
			appended++
			return nil
		},
	}

	uc := newTestUsecase(requests, &requestmock.RefRepo{}, hist, &loanmock.Repo{}, &customermock.Repo{}, uowmock.New(uow.Repos{}))
	updated, err := uc.SetStage(context.Background(), "r1000000000000000000000000000001", requestDomain.StageError)
	if err != nil {
		t.Fatalf("SetStage: %v", err)
	}
	if updated.Stage != requestDomain.StageError {
		t.Fatalf("stage = %q, want Error", updated.Stage)
	}
	if appended != 0 {
		t.Fatalf("stage move wrote %d history rows, want 0", appended)
	}

	if _, err := uc.SetStage(context.Background(), "r1000000000000000000000000000001", "Unknown"); !errors.Is(err, ErrInvalidStage) {
		t.Fatalf("err = %v, want ErrInvalidStage", err)
	}
}

func TestListFiltersByAdminStatus(t *testing.T) {
	var gotFilter requestDomain.AdminStatus
	requests := &requestmock.Repo{
		ListByAdminStatusFn: func(ctx context.Context, s requestDomain.AdminStatus) ([]requestDomain.LoanRequest, error) {
			gotFilter = s
			return []requestDomain.LoanRequest{{RequestID: "r1", CustomerID: 7, LoanID: 3, AdminStatus: s, PayFrequency: "2weeks"}}, nil
		},
	}
	loans := &loanmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*loanDomain.Loan, error) { return testLoan(), nil },
	}
	customers := &customermock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*customerDomain.Customer, error) { return testCustomer(), nil },
	}

	uc := newTestUsecase(requests, &requestmock.RefRepo{}, &requestmock.HistoryRepo{}, loans, customers, uowmock.New(uow.Repos{}))
	items, err := uc.List(context.Background(), requestDomain.AdminAccept)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotFilter != requestDomain.AdminAccept {
		t.Fatalf("filter = %q", gotFilter)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].CustomerName != "Marie Tremblay" {
		t.Fatalf("customer name = %q", items[0].CustomerName)
	}
	if items[0].LoanPackage.Amount != 750 || items[0].LoanPackage.Duration != "3 months" {
		t.Fatalf("loan package = %+v", items[0].LoanPackage)
	}
	if items[0].PayFrequency != "Every 2 weeks" {
		t.Fatalf("pay frequency label = %q", items[0].PayFrequency)
	}

	if _, err := uc.List(context.Background(), "declined"); !errors.Is(err, ErrInvalidAdminStatus) {
		t.Fatalf("err = %v, want ErrInvalidAdminStatus", err)
	}
}

func TestListForCustomerDefaultsReference(t *testing.T) {
	customers := &customermock.Repo{
		GetByCustomerIDFn: func(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
			return testCustomer(), nil
		},
	}
	requests := &requestmock.Repo{
		ListByCustomerIDFn: func(ctx context.Context, customerID uint64) ([]requestDomain.LoanRequest, error) {
			return []requestDomain.LoanRequest{
				{ID: 1, RequestID: "r1"},
				{ID: 2, RequestID: "r2"},
			}, nil
		},
	}
	refs := &requestmock.RefRepo{
		ListByLoanRequestIDFn: func(ctx context.Context, loanRequestID uint64) ([]requestDomain.Reference, error) {
			if loanRequestID == 1 {
				return []requestDomain.Reference{
					{Name: "Eva", ReferenceOrder: 2},
					{Name: "Luc", ReferenceOrder: 1},
				}, nil
			}
			return nil, nil
		},
	}

	uc := newTestUsecase(requests, refs, &requestmock.HistoryRepo{}, &loanmock.Repo{}, customers, uowmock.New(uow.Repos{}))
	items, err := uc.ListForCustomer(context.Background(), "c1000000000000000000000000000001")
	if err != nil {
		t.Fatalf("ListForCustomer: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Reference != "Luc" {
		t.Fatalf("reference = %q, want the order-1 name", items[0].Reference)
	}
	if items[1].Reference != "N/A" {
		t.Fatalf("reference = %q, want N/A when none exist", items[1].Reference)
	}
}

func TestDetailAppliesLookupsAndSteppers(t *testing.T) {
	requests := &requestmock.Repo{
		GetByRequestIDFn: func(ctx context.Context, requestID string) (*requestDomain.LoanRequest, error) {
			return &requestDomain.LoanRequest{
				ID: 42, RequestID: requestID, CustomerID: 7, LoanID: 3,
				Province:         "QC",
				BankInstitution:  "003",
				IncomeSource:     "saaq",
				PayFrequency:     "1month",
				ConsumerProposal: true,
				Stage:            requestDomain.StageSignature,
				Status:           requestDomain.StatusValidation,
			}, nil
		},
	}
	loans := &loanmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*loanDomain.Loan, error) { return testLoan(), nil },
	}
	customers := &customermock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*customerDomain.Customer, error) { return testCustomer(), nil },
	}
	refs := &requestmock.RefRepo{
		ListByLoanRequestIDFn: func(ctx context.Context, loanRequestID uint64) ([]requestDomain.Reference, error) {
			return []requestDomain.Reference{{Name: "Luc", ReferenceOrder: 1}, {Name: "Eva", ReferenceOrder: 2}}, nil
		},
	}

	uc := newTestUsecase(requests, refs, &requestmock.HistoryRepo{}, loans, customers, uowmock.New(uow.Repos{}))
	dto, err := uc.Detail(context.Background(), "r1000000000000000000000000000001")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}

	if dto.Address.Province != "Quebec" {
		t.Fatalf("province label = %q", dto.Address.Province)
	}
	if dto.IncomeSource.BankInstitution != "RBC Royal Bank" {
		t.Fatalf("bank label = %q", dto.IncomeSource.BankInstitution)
	}
	if dto.IncomeSource.Source != "SAAQ" {
		t.Fatalf("income source label = %q", dto.IncomeSource.Source)
	}
	if dto.IncomeSource.ConsumerProposal != "yes" || dto.IncomeSource.Bankruptcy != "no" {
		t.Fatalf("flags = %q/%q", dto.IncomeSource.ConsumerProposal, dto.IncomeSource.Bankruptcy)
	}
	if dto.Customer.FirstName != "Marie" || dto.LoanDetails.Amount != 750 {
		t.Fatalf("joins missing: %+v %+v", dto.Customer, dto.LoanDetails)
	}
	if len(dto.References) != 2 {
		t.Fatalf("got %d references", len(dto.References))
	}
	if len(dto.StageSteps) != len(requestDomain.StageSequence) {
		t.Fatalf("stage stepper has %d steps", len(dto.StageSteps))
	}
	if len(dto.StatusSteps) != len(requestDomain.StatusSequence) {
		t.Fatalf("status stepper has %d steps", len(dto.StatusSteps))
	}
}
