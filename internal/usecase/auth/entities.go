package auth

import "time"

type SignUpInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Phone     string `json:"phone"`
}

type SessionDTO struct {
	Token      string    `json:"token"`
	AuthID     string    `json:"auth_id"`
	CustomerID string    `json:"customer_id,omitempty"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	ExpiresAt  time.Time `json:"expires_at"`
}
