package domain

import (
	"strings"
	"time"
)

// Department is an organizational unit, optionally headed by an employee.
type Department struct {
	ID        string
	Name      string
	Status    Status
	ManagerID *string
	Manager   *EmployeeRef
	CreatedAt time.Time
}

// DepartmentMembership links an employee to a department. An employee may
// belong to any number of departments.
type DepartmentMembership struct {
	DepartmentID string
	EmployeeID   string
}

// CreateDepartmentRequest holds parameters for creating a new department.
type CreateDepartmentRequest struct {
	Name      string
	ManagerID *string
	Status    Status // defaults to ACTIVE
}

// Validate checks that the request is well-formed and normalizes it.
func (r *CreateDepartmentRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrValidation("department name is required")
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

// UpdateDepartmentRequest holds the full field set for a department update.
type UpdateDepartmentRequest struct {
	Name      string
	ManagerID *string
	Status    Status // empty means ACTIVE
}

// Validate checks that the request is well-formed and normalizes it.
func (r *UpdateDepartmentRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrValidation("department name is required")
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
