package domain

import "context"

// UserRepository persists identity records.
type UserRepository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Count(ctx context.Context) (int64, error)
}

// EmployeeRepository persists employee records and answers the scope
// queries the directory service needs. Scope-specific queries return rows
// ordered by last name so repeated listings are reproducible; none of them
// apply authorization — that is the service's job.
type EmployeeRepository interface {
	Create(ctx context.Context, e *Employee) (*Employee, error)
	// CreateWithUser inserts the employee and its linked user credential in
	// a single transaction. A failure on either insert persists neither.
	CreateWithUser(ctx context.Context, e *Employee, u *User) (*Employee, error)
	Update(ctx context.Context, e *Employee) (*Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)
	ListAll(ctx context.Context) ([]Employee, error)
	// ListForManager returns the manager's own record plus every employee
	// who is a member of a department that employee manages, traversing
	// employees -> memberships -> departments -> manager.
	ListForManager(ctx context.Context, managerEmployeeID string) ([]Employee, error)
	// GetByIDForManager is ListForManager intersected with an id filter.
	GetByIDForManager(ctx context.Context, id, managerEmployeeID string) (*Employee, error)
}

// DepartmentRepository persists departments and their scope queries.
type DepartmentRepository interface {
	Create(ctx context.Context, d *Department) (*Department, error)
	Update(ctx context.Context, d *Department) (*Department, error)
	GetByID(ctx context.Context, id string) (*Department, error)
	ListAll(ctx context.Context) ([]Department, error)
	ListManagedBy(ctx context.Context, employeeID string) ([]Department, error)
	ListWithMember(ctx context.Context, employeeID string) ([]Department, error)
	GetByIDManagedBy(ctx context.Context, id, employeeID string) (*Department, error)
	GetByIDWithMember(ctx context.Context, id, employeeID string) (*Department, error)
}

// MembershipRepository persists the employee/department join relation.
type MembershipRepository interface {
	Add(ctx context.Context, m *DepartmentMembership) error
	Remove(ctx context.Context, m *DepartmentMembership) error
	ListByDepartment(ctx context.Context, departmentID string) ([]DepartmentMembership, error)
}
