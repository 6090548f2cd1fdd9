package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peopled/internal/domain"
	"peopled/internal/token"
)

func newTestIssuer(t *testing.T) *token.Issuer {
	t.Helper()
	iss, err := token.NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	return iss
}

func TestAuth_ValidTokenPassesPrincipal(t *testing.T) {
	iss := newTestIssuer(t)
	empID := "emp-1"
	signed, err := iss.Mint(domain.Principal{UserID: "user-1", Role: domain.RoleManager, EmployeeID: &empID})
	require.NoError(t, err)

	var got domain.Principal
	handler := Auth(iss)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := domain.PrincipalFromContext(r.Context())
		require.True(t, ok)
		got = p
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/employees", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, domain.RoleManager, got.Role)
}

func TestAuth_MissingOrBadTokenRejected(t *testing.T) {
	iss := newTestIssuer(t)
	handler := Auth(iss)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	cases := map[string]string{
		"no header":    "",
		"not bearer":   "Basic abc",
		"garbage":      "Bearer not.a.token",
		"wrong secret": "Bearer " + mustSign(t, "other-secret"),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/employees", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "unauthorized")
		})
	}
}

func mustSign(t *testing.T, secret string) string {
	t.Helper()
	iss, err := token.NewIssuer(secret, time.Hour)
	require.NoError(t, err)
	signed, err := iss.Mint(domain.Principal{UserID: "user-1", Role: domain.RoleEmployee})
	require.NoError(t, err)
	return signed
}
