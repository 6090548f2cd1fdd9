package api

import (
	"encoding/json"
	"net/http"

	"peopled/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	Principal principalDTO `json:"principal"`
}

// Login verifies credentials and returns a session token. Every
// authentication failure renders the same 401 body, so the response never
// reveals whether the email exists.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.ErrValidation("invalid request body"))
		return
	}

	tok, p, err := h.auth.Login(r.Context(), domain.LoginRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: tok, Principal: principalToAPI(*p)})
}

// Me echoes the claims of the presented token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(r)
	if !ok {
		writeError(w, domain.ErrAccessDenied("authentication required"))
		return
	}
	writeJSON(w, http.StatusOK, principalToAPI(p))
}
