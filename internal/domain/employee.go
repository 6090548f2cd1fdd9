package domain

import (
	"net/mail"
	"strings"
	"time"
)

// Employee is a personnel record in the org graph.
type Employee struct {
	ID        string
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Status    Status
	ManagerID *string
	Manager   *EmployeeRef // populated on reads when a manager is set
	CreatedAt time.Time
}

// EmployeeRef is a lightweight reference to another employee, used when a
// record carries its manager alongside the row itself.
type EmployeeRef struct {
	ID        string
	FirstName string
	LastName  string
}

// CreateEmployeeRequest holds parameters for creating a new employee.
type CreateEmployeeRequest struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	ManagerID *string
	Status    Status // defaults to ACTIVE
}

// Validate checks that the request is well-formed and normalizes it.
// A blank manager id means "no manager" and is normalized to nil.
func (r *CreateEmployeeRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return ErrValidation("first name is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return ErrValidation("last name is required")
	}
	if strings.TrimSpace(r.Phone) == "" {
		return ErrValidation("phone is required")
	}
	if !validEmail(r.Email) {
		return ErrValidation("a well-formed email is required")
	}
	r.ManagerID = normalizeManagerID(r.ManagerID)
	if r.Status == "" {
		r.Status = StatusActive
	}
	if !r.Status.Valid() {
		return ErrValidation("status must be ACTIVE or INACTIVE")
	}
	return nil
}

// UpdateEmployeeRequest holds the full field set for an employee update.
// Which fields take effect depends on the caller's role; see
// DirectoryService.UpdateEmployee.
type UpdateEmployeeRequest struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	ManagerID *string
	Status    Status // empty means ACTIVE for admin writes
}

// Validate checks that the request is well-formed and normalizes it.
func (r *UpdateEmployeeRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return ErrValidation("first name is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return ErrValidation("last name is required")
	}
	if strings.TrimSpace(r.Phone) == "" {
		return ErrValidation("phone is required")
	}
	if !validEmail(r.Email) {
		return ErrValidation("a well-formed email is required")
	}
	r.ManagerID = normalizeManagerID(r.ManagerID)
	if r.Status == "" {
		r.Status = StatusActive
	}
	if !r.Status.Valid() {
		return ErrValidation("status must be ACTIVE or INACTIVE")
	}
	return nil
}

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func normalizeManagerID(id *string) *string {
	if id == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*id)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
