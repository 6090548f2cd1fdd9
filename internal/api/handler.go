// Package api exposes the directory's guarded operations over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"peopled/internal/domain"
	"peopled/internal/middleware"
	"peopled/internal/service"
	"peopled/internal/token"
)

// authService defines the authentication operations used by the API handler.
type authService interface {
	Login(ctx context.Context, req domain.LoginRequest) (string, *domain.Principal, error)
}

// directoryService defines the directory operations used by the API handler.
type directoryService interface {
	ListEmployees(ctx context.Context, p domain.Principal) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, p domain.Principal, id string) (*domain.Employee, error)
	CreateEmployee(ctx context.Context, p domain.Principal, req domain.CreateEmployeeRequest) (*service.ProvisionedEmployee, error)
	UpdateEmployee(ctx context.Context, p domain.Principal, id string, req domain.UpdateEmployeeRequest) (*domain.Employee, error)
	ListDepartments(ctx context.Context, p domain.Principal) ([]domain.Department, error)
	GetDepartment(ctx context.Context, p domain.Principal, id string) (*domain.Department, error)
	CreateDepartment(ctx context.Context, p domain.Principal, req domain.CreateDepartmentRequest) (*domain.Department, error)
	UpdateDepartment(ctx context.Context, p domain.Principal, id string, req domain.UpdateDepartmentRequest) (*domain.Department, error)
	AddDepartmentMember(ctx context.Context, p domain.Principal, departmentID, employeeID string) error
	RemoveDepartmentMember(ctx context.Context, p domain.Principal, departmentID, employeeID string) error
	ListDepartmentMembers(ctx context.Context, p domain.Principal, departmentID string) ([]domain.DepartmentMembership, error)
}

// Handler wires the HTTP surface to the auth and directory services.
type Handler struct {
	auth      authService
	directory directoryService
}

func NewHandler(auth authService, directory directoryService) *Handler {
	return &Handler{auth: auth, directory: directory}
}

// Routes mounts all endpoints. Login is public; everything else sits behind
// the session token middleware.
func (h *Handler) Routes(tokens *token.Issuer) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/v1/auth/login", h.Login)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Auth(tokens))

		r.Get("/me", h.Me)

		r.Get("/employees", h.ListEmployees)
		r.Post("/employees", h.CreateEmployee)
		r.Get("/employees/{id}", h.GetEmployee)
		r.Put("/employees/{id}", h.UpdateEmployee)

		r.Get("/departments", h.ListDepartments)
		r.Post("/departments", h.CreateDepartment)
		r.Get("/departments/{id}", h.GetDepartment)
		r.Put("/departments/{id}", h.UpdateDepartment)

		r.Get("/departments/{id}/members", h.ListDepartmentMembers)
		r.Post("/departments/{id}/members", h.AddDepartmentMember)
		r.Delete("/departments/{id}/members/{employeeID}", h.RemoveDepartmentMember)
	})

	return r
}

// principal extracts the authenticated principal placed by the middleware.
func principal(r *http.Request) (domain.Principal, bool) {
	return domain.PrincipalFromContext(r.Context())
}
