package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"peopled/internal/domain"
)

type departmentBody struct {
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	ManagerID *string `json:"manager_id"`
}

type memberBody struct {
	EmployeeID string `json:"employee_id"`
}

func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		writeError(w, domain.ErrAccessDenied("authentication required"))
		return
	}
	ds, err := h.directory.ListDepartments(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]departmentDTO, len(ds))
	for i, d := range ds {
		out[i] = departmentToAPI(d)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		writeError(w, domain.ErrAccessDenied("authentication required"))
		return
	}
	d, err := h.directory.GetDepartment(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, departmentToAPI(*d))
}

func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		writeError(w, domain.ErrAccessDenied("authentication required"))
		return
	}
	var body departmentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.ErrValidation("invalid request body"))
		return
	}

	d, err := h.directory.CreateDepartment(r.Context(), p, domain.CreateDepartmentRequest{
		Name:      body.Name,
		Status:    domain.Status(body.Status),
		ManagerID: body.ManagerID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, departmentToAPI(*d))
}

func (h *Handler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		writeError(w, domain.ErrAccessDenied("authentication required"))
		return
	}
	var body departmentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.ErrValidation("invalid request body"))
		return
	}

	d, err := h.directory.UpdateDepartment(r.Context(), p, chi.URLParam(r, "id"), domain.UpdateDepartmentRequest{
		Name:      body.Name,
		Status:    domain.Status(body.Status),
		ManagerID: body.ManagerID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, departmentToAPI(*d))
}

func (h *Handler) ListDepartmentMembers(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		writeError(w, domain.ErrAccessDenied("authentication required"))
		return
	}
	ms, err := h.directory.ListDepartmentMembers(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]membershipDTO, len(ms))
	for i, m := range ms {
		out[i] = membershipDTO{DepartmentID: m.DepartmentID, EmployeeID: m.EmployeeID}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) AddDepartmentMember(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		writeError(w, domain.ErrAccessDenied("authentication required"))
		return
	}
	var body memberBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.ErrValidation("invalid request body"))
		return
	}
	if body.EmployeeID == "" {
		writeError(w, domain.ErrValidation("employee_id is required"))
		return
	}

	if err := h.directory.AddDepartmentMember(r.Context(), p, chi.URLParam(r, "id"), body.EmployeeID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, membershipDTO{
		DepartmentID: chi.URLParam(r, "id"),
		EmployeeID:   body.EmployeeID,
	})
}

func (h *Handler) RemoveDepartmentMember(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		writeError(w, domain.ErrAccessDenied("authentication required"))
		return
	}
	if err := h.directory.RemoveDepartmentMember(r.Context(), p, chi.URLParam(r, "id"), chi.URLParam(r, "employeeID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
