//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHTTP_FullOnboardingFlow walks the whole lifecycle: bootstrap admin
// logs in, provisions a manager and a report, builds a department, and each
// role sees exactly its slice of the org.
func TestHTTP_FullOnboardingFlow(t *testing.T) {
	env := setupHTTPServer(t)
	base := env.Server.URL

	admin := login(t, base, "admin@example.com", "admin password")

	createEmployee := func(first, last, email string, managerID string) (id, password string) {
		body := map[string]any{
			"first_name": first, "last_name": last, "phone": "555-0100", "email": email,
		}
		if managerID != "" {
			body["manager_id"] = managerID
		}
		resp := doRequest(t, http.MethodPost, base+"/v1/employees", admin, body)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var out struct {
			Employee struct {
				ID string `json:"id"`
			} `json:"employee"`
			InitialPassword string `json:"initial_password"`
		}
		decodeJSON(t, resp, &out)
		require.NotEmpty(t, out.Employee.ID)
		require.NotEmpty(t, out.InitialPassword)
		return out.Employee.ID, out.InitialPassword
	}

	mgrID, mgrPassword := createEmployee("Grace", "Hopper", "grace@example.com", "")
	reportID, reportPassword := createEmployee("Ada", "Lovelace", "ada@example.com", mgrID)
	strangerID, _ := createEmployee("Alan", "Turing", "alan@example.com", "")

	resp := doRequest(t, http.MethodPost, base+"/v1/departments", admin, map[string]any{
		"name": "Engineering", "manager_id": mgrID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var dept struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &dept)

	resp = doRequest(t, http.MethodPost, base+"/v1/departments/"+dept.ID+"/members", admin,
		map[string]string{"employee_id": reportID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Ada sees only herself in the employee list.
	adaTok := login(t, base, "ada@example.com", reportPassword)
	resp = doRequest(t, http.MethodGet, base+"/v1/employees", adaTok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var employees []struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &employees)
	require.Len(t, employees, 1)
	assert.Equal(t, reportID, employees[0].ID)

	// Ada sees the department she belongs to.
	resp = doRequest(t, http.MethodGet, base+"/v1/departments", adaTok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var departments []struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &departments)
	require.Len(t, departments, 1)
	assert.Equal(t, dept.ID, departments[0].ID)

	// Reading a stranger's record is a 404, never a 403.
	resp = doRequest(t, http.MethodGet, base+"/v1/employees/"+strangerID, adaTok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Grace's EMPLOYEE session cannot create departments.
	graceTok := login(t, base, "grace@example.com", mgrPassword)
	resp = doRequest(t, http.MethodPost, base+"/v1/departments", graceTok, map[string]any{
		"name": "Skunkworks",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Admin sees everyone.
	resp = doRequest(t, http.MethodGet, base+"/v1/employees", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &employees)
	assert.Len(t, employees, 3)
}

func TestHTTP_AuthFailuresShareOneShape(t *testing.T) {
	env := setupHTTPServer(t)
	base := env.Server.URL

	read := func(email, password string) (int, map[string]any) {
		resp := doRequest(t, http.MethodPost, base+"/v1/auth/login", "",
			map[string]string{"email": email, "password": password})
		var body map[string]any
		decodeJSON(t, resp, &body)
		return resp.StatusCode, body
	}

	wrongStatus, wrongBody := read("admin@example.com", "not the password")
	unknownStatus, unknownBody := read("ghost@example.com", "not the password")

	assert.Equal(t, http.StatusUnauthorized, wrongStatus)
	assert.Equal(t, http.StatusUnauthorized, unknownStatus)
	assert.Equal(t, wrongBody, unknownBody)
}
