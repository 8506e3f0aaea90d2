package user

import (
	"catering-booking/apperrors"
)

// LoginRequest is the payload for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Username == "" {
		return apperrors.Validation("Missing required field: username")
	}
	if r.Password == "" {
		return apperrors.Validation("Missing required field: password")
	}
	return nil
}

// RegisterRequest is the payload for POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (r RegisterRequest) Validate() error {
	if r.Username == "" {
		return apperrors.Validation("Missing required field: username")
	}
	if r.Password == "" {
		return apperrors.Validation("Missing required field: password")
	}
	if r.Email == "" {
		return apperrors.Validation("Missing required field: email")
	}
	if len(r.Password) < 8 {
		return apperrors.Validation("Password must be at least 8 characters")
	}
	return nil
}
