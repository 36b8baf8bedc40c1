package mysql

import (
	"context"
	"errors"

	identityDomain "loanflow-service/internal/domain/identity"

	"gorm.io/gorm"
)

type IdentityStore struct{ db *gorm.DB }

func NewIdentityStore(db *gorm.DB) *IdentityStore { return &IdentityStore{db: db} }

func (r *IdentityStore) Create(ctx context.Context, u *identityDomain.AuthUser) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *IdentityStore) GetByEmail(ctx context.Context, email string) (*identityDomain.AuthUser, error) {
	var out identityDomain.AuthUser
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, identityDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *IdentityStore) GetByAuthID(ctx context.Context, authID string) (*identityDomain.AuthUser, error) {
	var out identityDomain.AuthUser
	res := r.db.WithContext(ctx).Where("auth_id = ?", authID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, identityDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *IdentityStore) DeleteByAuthID(ctx context.Context, authID string) error {
	res := r.db.WithContext(ctx).Where("auth_id = ?", authID).Delete(&identityDomain.AuthUser{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return identityDomain.ErrNotFound
	}
	return nil
}
