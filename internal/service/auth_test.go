package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peopled/internal/domain"
)

func (env *testEnv) createUser(t *testing.T, email, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	u, err := env.users.Create(context.Background(), &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	require.NoError(t, err)
	return u
}

func TestAuthService_Login(t *testing.T) {
	env := setupEnv(t)
	u := env.createUser(t, "admin@example.com", "correct horse", domain.RoleHRAdmin)

	tok, p, err := env.auth.Login(context.Background(), domain.LoginRequest{
		Email: "admin@example.com", Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.Equal(t, u.ID, p.UserID)
	assert.Equal(t, domain.RoleHRAdmin, p.Role)
}

// A wrong password and an unknown email must be indistinguishable, so a
// caller cannot probe which emails have accounts.
func TestAuthService_FailureShapeIsUniform(t *testing.T) {
	env := setupEnv(t)
	env.createUser(t, "admin@example.com", "correct horse", domain.RoleHRAdmin)
	ctx := context.Background()

	_, _, errWrongPassword := env.auth.Login(ctx, domain.LoginRequest{
		Email: "admin@example.com", Password: "battery staple",
	})
	_, _, errUnknownEmail := env.auth.Login(ctx, domain.LoginRequest{
		Email: "ghost@example.com", Password: "battery staple",
	})

	require.Error(t, errWrongPassword)
	require.Error(t, errUnknownEmail)

	var ic1, ic2 *domain.InvalidCredentialsError
	require.ErrorAs(t, errWrongPassword, &ic1)
	require.ErrorAs(t, errUnknownEmail, &ic2)
	assert.Equal(t, ic1.Error(), ic2.Error())
}

func TestAuthService_MalformedInputIsValidationNotCredentials(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	cases := []domain.LoginRequest{
		{Email: "", Password: "x"},
		{Email: "not-an-email", Password: "x"},
		{Email: "a@example.com", Password: ""},
	}
	for _, req := range cases {
		_, err := env.auth.Authenticate(ctx, req)
		require.Error(t, err)
		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation, "req %+v", req)
	}
}

// Provisioning an employee creates a working credential: the returned
// initial password logs in as an EMPLOYEE principal bound to the new record.
func TestAuthService_ProvisionedEmployeeCanLogIn(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	res := env.provision(t, "Jane", "Doe", "jane.doe@example.com", nil)
	require.NotEmpty(t, res.InitialPassword)

	p, err := env.auth.Authenticate(ctx, domain.LoginRequest{
		Email: "jane.doe@example.com", Password: res.InitialPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEmployee, p.Role)
	require.NotNil(t, p.EmployeeID)
	assert.Equal(t, res.Employee.ID, *p.EmployeeID)
}
