package mysql

import (
	"context"
	"errors"

	perceptionDomain "loanflow-service/internal/domain/perception"

	"gorm.io/gorm"
)

type PerceptionRepository struct{ db *gorm.DB }

func NewPerceptionRepository(db *gorm.DB) *PerceptionRepository {
	return &PerceptionRepository{db: db}
}

func (r *PerceptionRepository) Create(ctx context.Context, p *perceptionDomain.Perception) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PerceptionRepository) GetByPerceptionID(ctx context.Context, perceptionID string) (*perceptionDomain.Perception, error) {
	var out perceptionDomain.Perception
	res := r.db.WithContext(ctx).Where("perception_id = ?", perceptionID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, perceptionDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PerceptionRepository) GetByLoanRequestID(ctx context.Context, loanRequestID uint64) (*perceptionDomain.Perception, error) {
	var out perceptionDomain.Perception
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanRequestID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, perceptionDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PerceptionRepository) ListAll(ctx context.Context) ([]perceptionDomain.Perception, error) {
	var out []perceptionDomain.Perception
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *PerceptionRepository) UpdateStage(ctx context.Context, id uint64, s perceptionDomain.Stage) (*perceptionDomain.Perception, error) {
	res := r.db.WithContext(ctx).
		Model(&perceptionDomain.Perception{}).
		Where("id = ?", id).
		Update("stage", s)
	if res.Error != nil {
		return nil, res.Error
	}
	var out perceptionDomain.Perception
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, perceptionDomain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}
