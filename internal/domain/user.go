package domain

import (
	"strings"
	"time"
)

// User is an identity record holding login credentials and a role. At most
// one user exists per employee; email is globally unique.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
}

// LoginRequest holds the credentials presented at authentication.
type LoginRequest struct {
	Email    string
	Password string
}

// Validate checks the shape of the credentials before any lookup happens.
// Malformed input is a ValidationError, never InvalidCredentials, so the
// two failure classes stay distinct for callers.
func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if !validEmail(r.Email) {
		return ErrValidation("a well-formed email is required")
	}
	if r.Password == "" {
		return ErrValidation("password is required")
	}
	return nil
}
