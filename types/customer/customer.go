package customer

import (
	"catering-booking/apperrors"
)

// CreateRequest is the payload for POST /customers.
type CreateRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

func (r CreateRequest) Validate() error {
	if r.Name == "" {
		return apperrors.Validation("Missing required field: name")
	}
	if r.Email == "" {
		return apperrors.Validation("Missing required field: email")
	}
	if r.PhoneNumber == "" {
		return apperrors.Validation("Missing required field: phone_number")
	}
	return nil
}

// UpdateRequest is the payload for PUT /customers/:id. Nil means the field
// is left unchanged.
type UpdateRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
}
