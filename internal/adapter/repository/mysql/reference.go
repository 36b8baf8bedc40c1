package mysql

import (
	"context"

	requestDomain "loanflow-service/internal/domain/request"

	"gorm.io/gorm"
)

type ReferenceRepository struct{ db *gorm.DB }

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository { return &ReferenceRepository{db: db} }

func (r *ReferenceRepository) Create(ctx context.Context, ref *requestDomain.Reference) error {
	return r.db.WithContext(ctx).Create(ref).Error
}

func (r *ReferenceRepository) ListByLoanRequestID(ctx context.Context, loanRequestID uint64) ([]requestDomain.Reference, error) {
	var out []requestDomain.Reference
	res := r.db.WithContext(ctx).
		Where("loan_request_id = ?", loanRequestID).
		Order("reference_order ASC").
		Find(&out)
	return out, res.Error
}

type HistoryRepository struct{ db *gorm.DB }

func NewHistoryRepository(db *gorm.DB) *HistoryRepository { return &HistoryRepository{db: db} }

func (r *HistoryRepository) Append(ctx context.Context, h *requestDomain.StatusHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HistoryRepository) ListByLoanRequestID(ctx context.Context, loanRequestID uint64) ([]requestDomain.StatusHistory, error) {
	var out []requestDomain.StatusHistory
	res := r.db.WithContext(ctx).
		Where("loan_request_id = ?", loanRequestID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) Create(ctx context.Context, d *requestDomain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) ListByLoanRequestID(ctx context.Context, loanRequestID uint64) ([]requestDomain.Document, error) {
	var out []requestDomain.Document
	res := r.db.WithContext(ctx).
		Where("loan_request_id = ?", loanRequestID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
