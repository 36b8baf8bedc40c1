package customer

// UpdateProfileInput carries the editable fields of the profile page.
type UpdateProfileInput struct {
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	Province     string `json:"province" validate:"omitempty,len=2"`
	PostalCode   string `json:"postal_code"`
}
