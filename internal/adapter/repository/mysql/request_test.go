package mysql

import (
	"context"
	"errors"
	"testing"

	requestDomain "loanflow-service/internal/domain/request"
	"loanflow-service/pkg/id"
)

func makeRequest(customerID, loanID uint64) *requestDomain.LoanRequest {
	return &requestDomain.LoanRequest{
		RequestID:           id.NewID32(),
		CustomerID:          customerID,
		LoanID:              loanID,
		BirthDate:           "1990-04-07",
		Gender:              "female",
		AddressLine1:        "12 Rue Principale",
		City:                "Montreal",
		Province:            "QC",
		PostalCode:          "H2X 1Y4",
		IncomeSource:        "employed",
		BankInstitution:     "815",
		PayFrequency:        "2weeks",
		NextPayDate:         "2025-04-18",
		FileTreatmentMethod: "normal",
		TermsAccepted:       true,
		PrivacyPolicyAccepted: true,
		AdminStatus:         requestDomain.AdminPending,
		Status:              requestDomain.StatusPending,
		Stage:               requestDomain.StageApplication,
	}
}

func TestRequestRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	lr := makeRequest(1, 1)
	if err := repo.Create(ctx, lr); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByRequestID(ctx, lr.RequestID)
	if err != nil {
		t.Fatalf("GetByRequestID: %v", err)
	}
	if got.Province != "QC" || got.Stage != requestDomain.StageApplication {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestRequestRepository_GetMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewRequestRepository(db)

	_, err := repo.GetByRequestID(context.Background(), id.NewID32())
	if !errors.Is(err, requestDomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

// Every enum value on each axis must store and read back byte-identical.
func TestRequestRepository_StatusAxesRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	lr := makeRequest(1, 1)
	if err := repo.Create(ctx, lr); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, s := range requestDomain.StageSequence {
		got, err := repo.UpdateStage(ctx, lr.ID, requestDomain.Stage(s))
		if err != nil {
			t.Fatalf("UpdateStage(%q): %v", s, err)
		}
		if string(got.Stage) != s {
			t.Fatalf("stage read back %q, want %q", got.Stage, s)
		}
	}
	for _, s := range requestDomain.StatusSequence {
		got, err := repo.UpdateStatus(ctx, lr.ID, requestDomain.Status(s))
		if err != nil {
			t.Fatalf("UpdateStatus(%q): %v", s, err)
		}
		if string(got.Status) != s {
			t.Fatalf("status read back %q, want %q", got.Status, s)
		}
	}
	for _, s := range []requestDomain.AdminStatus{
		requestDomain.AdminAccept, requestDomain.AdminRejected, requestDomain.AdminPending,
	} {
		got, err := repo.UpdateAdminStatus(ctx, lr.ID, s)
		if err != nil {
			t.Fatalf("UpdateAdminStatus(%q): %v", s, err)
		}
		if got.AdminStatus != s {
			t.Fatalf("admin status read back %q, want %q", got.AdminStatus, s)
		}
	}
}

func TestRequestRepository_ListByAdminStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	a := makeRequest(1, 1)
	b := makeRequest(2, 1)
	b.AdminStatus = requestDomain.AdminAccept
	for _, lr := range []*requestDomain.LoanRequest{a, b} {
		if err := repo.Create(ctx, lr); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	accepted, err := repo.ListByAdminStatus(ctx, requestDomain.AdminAccept)
	if err != nil {
		t.Fatalf("ListByAdminStatus: %v", err)
	}
	if len(accepted) != 1 || accepted[0].RequestID != b.RequestID {
		t.Fatalf("filtered list = %+v", accepted)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("ListAll len = %d", len(all))
	}
}

func TestReferenceRepository_OrderedList(t *testing.T) {
	db := openTestDB(t)
	refs := NewReferenceRepository(db)
	ctx := context.Background()

	for _, o := range []int{2, 1} {
		err := refs.Create(ctx, &requestDomain.Reference{
			ReferenceID:    id.NewID32(),
			LoanRequestID:  7,
			Name:           "Contact",
			Phone:          "514-555-0000",
			Relationship:   "friend",
			ReferenceOrder: o,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := refs.ListByLoanRequestID(ctx, 7)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ReferenceOrder != 1 || got[1].ReferenceOrder != 2 {
		t.Fatalf("references not ordered: %+v", got)
	}
}
