package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIError is an error response returned by the HTTP API.
type APIError struct {
	HTTPStatus int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api error (status %d)", e.HTTPStatus)
}

// Client is a thin HTTP client for the personnel directory API.
type Client struct {
	BaseURL string
	Token   string

	httpClient *http.Client
}

// NewClient creates a Client for the given host.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		apiErr := &APIError{HTTPStatus: resp.StatusCode}
		var envelope struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			apiErr.Code = envelope.Code
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// === Wire types mirrored from the API ===

type EmployeeRef struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Employee struct {
	ID        string       `json:"id"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Phone     string       `json:"phone"`
	Email     string       `json:"email"`
	Status    string       `json:"status"`
	ManagerID *string      `json:"manager_id,omitempty"`
	Manager   *EmployeeRef `json:"manager,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

type Department struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Status    string       `json:"status"`
	ManagerID *string      `json:"manager_id,omitempty"`
	Manager   *EmployeeRef `json:"manager,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

type Membership struct {
	DepartmentID string `json:"department_id"`
	EmployeeID   string `json:"employee_id"`
}

type Principal struct {
	UserID     string  `json:"user_id"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

type CreatedEmployee struct {
	Employee        Employee `json:"employee"`
	InitialPassword string   `json:"initial_password"`
}

type loginResult struct {
	Token     string    `json:"token"`
	Principal Principal `json:"principal"`
}

// === Operations ===

func (c *Client) Login(ctx context.Context, email, password string) (string, *Principal, error) {
	var res loginResult
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		return "", nil, err
	}
	return res.Token, &res.Principal, nil
}

func (c *Client) Me(ctx context.Context) (*Principal, error) {
	var p Principal
	if err := c.do(ctx, http.MethodGet, "/v1/me", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) ListEmployees(ctx context.Context) ([]Employee, error) {
	var out []Employee
	if err := c.do(ctx, http.MethodGet, "/v1/employees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	if err := c.do(ctx, http.MethodGet, "/v1/employees/"+id, nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEmployeeParams mirrors the POST /v1/employees body.
type CreateEmployeeParams struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	ManagerID *string `json:"manager_id,omitempty"`
	Status    string  `json:"status,omitempty"`
}

func (c *Client) CreateEmployee(ctx context.Context, params CreateEmployeeParams) (*CreatedEmployee, error) {
	var out CreatedEmployee
	if err := c.do(ctx, http.MethodPost, "/v1/employees", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListDepartments(ctx context.Context) ([]Department, error) {
	var out []Department
	if err := c.do(ctx, http.MethodGet, "/v1/departments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDepartment(ctx context.Context, id string) (*Department, error) {
	var d Department
	if err := c.do(ctx, http.MethodGet, "/v1/departments/"+id, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) ListDepartmentMembers(ctx context.Context, id string) ([]Membership, error) {
	var out []Membership
	if err := c.do(ctx, http.MethodGet, "/v1/departments/"+id+"/members", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
