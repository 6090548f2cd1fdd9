package service

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	internaldb "peopled/internal/db"
	"peopled/internal/db/repository"
	"peopled/internal/domain"
	"peopled/internal/token"
)

type testEnv struct {
	directory   *DirectoryService
	auth        *AuthService
	employees   *repository.EmployeeRepo
	departments *repository.DepartmentRepo
	memberships *repository.MembershipRepo
	users       *repository.UserRepo
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	writeDB, _ := internaldb.OpenTestSQLite(t)

	employees := repository.NewEmployeeRepo(writeDB)
	departments := repository.NewDepartmentRepo(writeDB)
	memberships := repository.NewMembershipRepo(writeDB)
	users := repository.NewUserRepo(writeDB)

	tokens, err := token.NewIssuer("test-secret", 0)
	require.NoError(t, err)

	return &testEnv{
		directory:   NewDirectoryService(employees, departments, memberships),
		auth:        NewAuthService(users, tokens),
		employees:   employees,
		departments: departments,
		memberships: memberships,
		users:       users,
	}
}

func adminPrincipal() domain.Principal {
	return domain.Principal{UserID: "admin-user", Role: domain.RoleHRAdmin}
}

func managerPrincipal(employeeID string) domain.Principal {
	return domain.Principal{UserID: "mgr-user", Role: domain.RoleManager, EmployeeID: &employeeID}
}

func employeePrincipal(employeeID string) domain.Principal {
	return domain.Principal{UserID: "emp-user", Role: domain.RoleEmployee, EmployeeID: &employeeID}
}

// provision creates an employee through the service as admin, returning the
// record and its one-time password.
func (env *testEnv) provision(t *testing.T, first, last, email string, managerID *string) *ProvisionedEmployee {
	t.Helper()
	res, err := env.directory.CreateEmployee(context.Background(), adminPrincipal(), domain.CreateEmployeeRequest{
		FirstName: first,
		LastName:  last,
		Phone:     "555-0100",
		Email:     email,
		ManagerID: managerID,
	})
	require.NoError(t, err)
	return res
}

// addToDepartment creates a department managed by managerID (when set) and
// assigns the given employees to it.
func (env *testEnv) addToDepartment(t *testing.T, name string, managerID *string, employeeIDs ...string) *domain.Department {
	t.Helper()
	ctx := context.Background()
	d, err := env.directory.CreateDepartment(ctx, adminPrincipal(), domain.CreateDepartmentRequest{
		Name:      name,
		ManagerID: managerID,
	})
	require.NoError(t, err)
	for _, id := range employeeIDs {
		require.NoError(t, env.directory.AddDepartmentMember(ctx, adminPrincipal(), d.ID, id))
	}
	return d
}
