// Package middleware provides HTTP middleware for session authentication,
// request identification, and rate limiting.
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"peopled/internal/domain"
	"peopled/internal/token"
)

// Auth validates the Bearer session token on every request, reconstructs the
// principal from its claims, and stores it in the request context. Handlers
// pull it out and pass it explicitly to the services. Requests without a
// valid token get 401.
func Auth(tokens *token.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				p, err := tokens.Validate(strings.TrimPrefix(auth, "Bearer "))
				if err == nil {
					ctx := domain.WithPrincipal(r.Context(), p)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"code":    401,
				"message": "unauthorized: provide a valid Bearer token",
			})
		})
	}
}
