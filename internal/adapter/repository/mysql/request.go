package mysql

import (
	"context"
	"errors"

	requestDomain "loanflow-service/internal/domain/request"

	"gorm.io/gorm"
)

type RequestRepository struct{ db *gorm.DB }

func NewRequestRepository(db *gorm.DB) *RequestRepository { return &RequestRepository{db: db} }

func (r *RequestRepository) Create(ctx context.Context, lr *requestDomain.LoanRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *RequestRepository) GetByRequestID(ctx context.Context, requestID string) (*requestDomain.LoanRequest, error) {
	var out requestDomain.LoanRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, requestDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *RequestRepository) GetByID(ctx context.Context, id uint64) (*requestDomain.LoanRequest, error) {
	var out requestDomain.LoanRequest
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, requestDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *RequestRepository) ListAll(ctx context.Context) ([]requestDomain.LoanRequest, error) {
	var out []requestDomain.LoanRequest
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *RequestRepository) ListByAdminStatus(ctx context.Context, s requestDomain.AdminStatus) ([]requestDomain.LoanRequest, error) {
	var out []requestDomain.LoanRequest
	res := r.db.WithContext(ctx).
		Where("admin_request_status = ?", s).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *RequestRepository) ListByCustomerID(ctx context.Context, customerID uint64) ([]requestDomain.LoanRequest, error) {
	var out []requestDomain.LoanRequest
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// updateField overwrites one column and returns the refreshed row. The value
// is stored as given; reachability from the current value is not checked.
func (r *RequestRepository) updateField(ctx context.Context, id uint64, column string, value any) (*requestDomain.LoanRequest, error) {
	res := r.db.WithContext(ctx).
		Model(&requestDomain.LoanRequest{}).
		Where("id = ?", id).
		Update(column, value)
	if res.Error != nil {
		return nil, res.Error
	}
	var out requestDomain.LoanRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, requestDomain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *RequestRepository) UpdateAdminStatus(ctx context.Context, id uint64, s requestDomain.AdminStatus) (*requestDomain.LoanRequest, error) {
	return r.updateField(ctx, id, "admin_request_status", s)
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, id uint64, s requestDomain.Status) (*requestDomain.LoanRequest, error) {
	return r.updateField(ctx, id, "status", s)
}

func (r *RequestRepository) UpdateStage(ctx context.Context, id uint64, s requestDomain.Stage) (*requestDomain.LoanRequest, error) {
	return r.updateField(ctx, id, "request_stage", s)
}
