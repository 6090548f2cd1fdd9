package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"peopled/internal/domain"
)

type employeeBody struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	ManagerID *string `json:"manager_id"`
	Status    string  `json:"status"`
}

type createdEmployeeResponse struct {
	Employee employeeDTO `json:"employee"`
	// InitialPassword is returned exactly once, at provisioning time.
	InitialPassword string `json:"initial_password"`
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		writeError(w, domain.ErrAccessDenied("authentication required"))
		return
	}
	es, err := h.directory.ListEmployees(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]employeeDTO, len(es))
	for i, e := range es {
		out[i] = employeeToAPI(e)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		writeError(w, domain.ErrAccessDenied("authentication required"))
		return
	}
	e, err := h.directory.GetEmployee(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employeeToAPI(*e))
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		writeError(w, domain.ErrAccessDenied("authentication required"))
		return
	}
	var body employeeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.ErrValidation("invalid request body"))
		return
	}

	result, err := h.directory.CreateEmployee(r.Context(), p, domain.CreateEmployeeRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Email:     body.Email,
		ManagerID: body.ManagerID,
		Status:    domain.Status(body.Status),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createdEmployeeResponse{
		Employee:        employeeToAPI(*result.Employee),
		InitialPassword: result.InitialPassword,
	})
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		writeError(w, domain.ErrAccessDenied("authentication required"))
		return
	}
	var body employeeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.ErrValidation("invalid request body"))
		return
	}

	e, err := h.directory.UpdateEmployee(r.Context(), p, chi.URLParam(r, "id"), domain.UpdateEmployeeRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Email:     body.Email,
		ManagerID: body.ManagerID,
		Status:    domain.Status(body.Status),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employeeToAPI(*e))
}
