package customer

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("customer not found")
)

// Customer is the identity record created at signup and linked to an auth
// identity. Deleting one is a two-step operation (row, then identity) with an
// explicit partial-failure outcome.
type Customer struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	CustomerID string `gorm:"column:customer_id;type:char(32);not null;uniqueIndex:ux_customers_customer_id" json:"customer_id"`
	// Link to the auth identity (identity.AuthUser public id).
	AuthID    string `gorm:"column:auth_id;type:char(32);not null;index" json:"auth_id"`
	FirstName string `gorm:"column:first_name;size:100;not null" json:"first_name"`
	LastName  string `gorm:"column:last_name;size:100;not null" json:"last_name"`
	Email     string `gorm:"column:email;size:255;not null;index" json:"email"`
	Phone     string `gorm:"column:phone;size:20" json:"phone"`

	// Optional profile fields editable from the customer profile page.
	AddressLine1 string `gorm:"column:address_line1;size:255" json:"address_line1,omitempty"`
	AddressLine2 string `gorm:"column:address_line2;size:255" json:"address_line2,omitempty"`
	City         string `gorm:"column:city;size:100" json:"city,omitempty"`
	Province     string `gorm:"column:province;size:2" json:"province,omitempty"`
	PostalCode   string `gorm:"column:postal_code;size:10" json:"postal_code,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }
