package mysql

import (
	"testing"

	customerDomain "loanflow-service/internal/domain/customer"
	identityDomain "loanflow-service/internal/domain/identity"
	loanDomain "loanflow-service/internal/domain/loan"
	perceptionDomain "loanflow-service/internal/domain/perception"
	requestDomain "loanflow-service/internal/domain/request"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB with the full schema. The domain
// models carry no MySQL-only column types, so they migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&customerDomain.Customer{},
		&identityDomain.AuthUser{},
		&loanDomain.Loan{},
		&requestDomain.LoanRequest{},
		&requestDomain.Reference{},
		&requestDomain.StatusHistory{},
		&requestDomain.Document{},
		&perceptionDomain.Perception{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
