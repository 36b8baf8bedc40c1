package identity

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("auth user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// AuthUser is the authentication identity behind a customer (or an admin).
// The workflow only ever sees its public AuthID.
type AuthUser struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	AuthID       string    `gorm:"column:auth_id;type:char(32);not null;uniqueIndex:ux_auth_users_auth_id" json:"auth_id"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex:ux_auth_users_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:100;not null" json:"-"`
	Role         string    `gorm:"column:role;size:20;not null;default:'customer'" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AuthUser) TableName() string { return "auth_users" }

// Store is the identity collaborator consumed by the auth and customer flows.
// DeleteByAuthID failing after the customer row is gone is the partial-failure
// case the delete operation must surface.
type Store interface {
	Create(ctx context.Context, u *AuthUser) error
	GetByEmail(ctx context.Context, email string) (*AuthUser, error)
	GetByAuthID(ctx context.Context, authID string) (*AuthUser, error)
	DeleteByAuthID(ctx context.Context, authID string) error
}
