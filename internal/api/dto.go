package api

import (
	"time"

	"peopled/internal/domain"
)

// === Wire types ===

type employeeRefDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type employeeDTO struct {
	ID        string          `json:"id"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	Status    string          `json:"status"`
	ManagerID *string         `json:"manager_id,omitempty"`
	Manager   *employeeRefDTO `json:"manager,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type departmentDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Status    string          `json:"status"`
	ManagerID *string         `json:"manager_id,omitempty"`
	Manager   *employeeRefDTO `json:"manager,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type membershipDTO struct {
	DepartmentID string `json:"department_id"`
	EmployeeID   string `json:"employee_id"`
}

type principalDTO struct {
	UserID     string  `json:"user_id"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

// === Mapping helpers ===

func employeeRefToAPI(ref *domain.EmployeeRef) *employeeRefDTO {
	if ref == nil {
		return nil
	}
	return &employeeRefDTO{ID: ref.ID, FirstName: ref.FirstName, LastName: ref.LastName}
}

func employeeToAPI(e domain.Employee) employeeDTO {
	return employeeDTO{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Phone:     e.Phone,
		Email:     e.Email,
		Status:    string(e.Status),
		ManagerID: e.ManagerID,
		Manager:   employeeRefToAPI(e.Manager),
		CreatedAt: e.CreatedAt,
	}
}

func departmentToAPI(d domain.Department) departmentDTO {
	return departmentDTO{
		ID:        d.ID,
		Name:      d.Name,
		Status:    string(d.Status),
		ManagerID: d.ManagerID,
		Manager:   employeeRefToAPI(d.Manager),
		CreatedAt: d.CreatedAt,
	}
}

func principalToAPI(p domain.Principal) principalDTO {
	return principalDTO{
		UserID:     p.UserID,
		Role:       string(p.Role),
		EmployeeID: p.EmployeeID,
	}
}
