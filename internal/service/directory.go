package service

import (
	"context"
	"errors"

	"peopled/internal/domain"
)

// DirectoryService resolves role-scoped visibility for reads and guards all
// mutations of the org graph. Every method takes the caller's principal as
// an explicit argument; nothing is read from ambient request state.
type DirectoryService struct {
	employees   domain.EmployeeRepository
	departments domain.DepartmentRepository
	memberships domain.MembershipRepository
}

func NewDirectoryService(
	employees domain.EmployeeRepository,
	departments domain.DepartmentRepository,
	memberships domain.MembershipRepository,
) *DirectoryService {
	return &DirectoryService{
		employees:   employees,
		departments: departments,
		memberships: memberships,
	}
}

// ProvisionedEmployee is the result of an employee create: the record plus
// the generated one-time initial password for the linked user credential.
type ProvisionedEmployee struct {
	Employee        *domain.Employee
	InitialPassword string
}

func requireHRAdmin(p domain.Principal) error {
	if p.Role != domain.RoleHRAdmin {
		return domain.ErrAccessDenied("hr admin privileges required")
	}
	return nil
}

// === Employees ===

// ListEmployees returns the employees visible to the principal, ordered by
// last name. HR admins see everyone; managers see themselves plus members
// of the departments they manage; employees see only themselves.
func (s *DirectoryService) ListEmployees(ctx context.Context, p domain.Principal) ([]domain.Employee, error) {
	switch p.Role {
	case domain.RoleHRAdmin:
		return s.employees.ListAll(ctx)
	case domain.RoleManager:
		return s.employees.ListForManager(ctx, p.SelfEmployeeID())
	case domain.RoleEmployee:
		self := p.SelfEmployeeID()
		if self == "" {
			return nil, nil
		}
		e, err := s.employees.GetByID(ctx, self)
		if err != nil {
			var notFound *domain.NotFoundError
			if errors.As(err, &notFound) {
				return nil, nil
			}
			return nil, err
		}
		return []domain.Employee{*e}, nil
	default:
		return nil, domain.ErrAccessDenied("unknown role %q", p.Role)
	}
}

// GetEmployee is the list scope intersected with an id filter: an id outside
// the principal's scope is reported as not found, indistinguishable from an
// id that does not exist.
func (s *DirectoryService) GetEmployee(ctx context.Context, p domain.Principal, id string) (*domain.Employee, error) {
	if id == "" {
		return nil, domain.ErrValidation("employee id is required")
	}
	switch p.Role {
	case domain.RoleHRAdmin:
		return s.employees.GetByID(ctx, id)
	case domain.RoleManager:
		return s.employees.GetByIDForManager(ctx, id, p.SelfEmployeeID())
	case domain.RoleEmployee:
		if id != p.SelfEmployeeID() {
			return nil, domain.ErrNotFound("employee not found")
		}
		return s.employees.GetByID(ctx, id)
	default:
		return nil, domain.ErrAccessDenied("unknown role %q", p.Role)
	}
}

// CreateEmployee creates an employee and its linked user credential in one
// atomic write. HR admin only. The provisioned user gets role EMPLOYEE and a
// random initial password returned once in the result.
func (s *DirectoryService) CreateEmployee(ctx context.Context, p domain.Principal, req domain.CreateEmployeeRequest) (*ProvisionedEmployee, error) {
	if err := requireHRAdmin(p); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	password, err := generateInitialPassword()
	if err != nil {
		return nil, err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	e := &domain.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Status:    req.Status,
		ManagerID: req.ManagerID,
	}
	u := &domain.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
	}

	created, err := s.employees.CreateWithUser(ctx, e, u)
	if err != nil {
		return nil, err
	}
	return &ProvisionedEmployee{Employee: created, InitialPassword: password}, nil
}

// UpdateEmployee applies the update under one of two authorization paths:
// HR admins may change any employee's full field set; any other principal
// may update only their own record, and only the personal fields — status
// and manager changes in the request are dropped, not rejected.
func (s *DirectoryService) UpdateEmployee(ctx context.Context, p domain.Principal, id string, req domain.UpdateEmployeeRequest) (*domain.Employee, error) {
	if id == "" {
		return nil, domain.ErrValidation("employee id is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	isAdmin := p.Role == domain.RoleHRAdmin
	if !isAdmin && p.SelfEmployeeID() != id {
		return nil, domain.ErrAccessDenied("cannot update another employee's record")
	}

	current, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := &domain.Employee{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Status:    current.Status,
		ManagerID: current.ManagerID,
	}
	if isAdmin {
		next.Status = req.Status
		next.ManagerID = req.ManagerID
		if err := s.checkManagerAssignment(ctx, id, req.ManagerID); err != nil {
			return nil, err
		}
	}

	return s.employees.Update(ctx, next)
}

// checkManagerAssignment rejects manager links that would make the reporting
// graph cyclic, walking the proposed manager's chain upward.
func (s *DirectoryService) checkManagerAssignment(ctx context.Context, employeeID string, managerID *string) error {
	if managerID == nil {
		return nil
	}
	if *managerID == employeeID {
		return domain.ErrValidation("an employee cannot be their own manager")
	}

	seen := map[string]bool{}
	cur := *managerID
	for cur != "" {
		if cur == employeeID || seen[cur] {
			return domain.ErrValidation("manager assignment would create a reporting cycle")
		}
		seen[cur] = true

		mgr, err := s.employees.GetByID(ctx, cur)
		if err != nil {
			var notFound *domain.NotFoundError
			if errors.As(err, &notFound) {
				// Nonexistent manager is caught by the foreign key on write.
				return nil
			}
			return err
		}
		if mgr.ManagerID == nil {
			return nil
		}
		cur = *mgr.ManagerID
	}
	return nil
}

// === Departments ===

// ListDepartments returns the departments visible to the principal, ordered
// by name. HR admins see all; managers see the departments they manage;
// employees see the departments they belong to.
func (s *DirectoryService) ListDepartments(ctx context.Context, p domain.Principal) ([]domain.Department, error) {
	switch p.Role {
	case domain.RoleHRAdmin:
		return s.departments.ListAll(ctx)
	case domain.RoleManager:
		return s.departments.ListManagedBy(ctx, p.SelfEmployeeID())
	case domain.RoleEmployee:
		return s.departments.ListWithMember(ctx, p.SelfEmployeeID())
	default:
		return nil, domain.ErrAccessDenied("unknown role %q", p.Role)
	}
}

// GetDepartment is the department list scope intersected with an id filter.
func (s *DirectoryService) GetDepartment(ctx context.Context, p domain.Principal, id string) (*domain.Department, error) {
	if id == "" {
		return nil, domain.ErrValidation("department id is required")
	}
	switch p.Role {
	case domain.RoleHRAdmin:
		return s.departments.GetByID(ctx, id)
	case domain.RoleManager:
		return s.departments.GetByIDManagedBy(ctx, id, p.SelfEmployeeID())
	case domain.RoleEmployee:
		return s.departments.GetByIDWithMember(ctx, id, p.SelfEmployeeID())
	default:
		return nil, domain.ErrAccessDenied("unknown role %q", p.Role)
	}
}

// CreateDepartment creates a department. HR admin only.
func (s *DirectoryService) CreateDepartment(ctx context.Context, p domain.Principal, req domain.CreateDepartmentRequest) (*domain.Department, error) {
	if err := requireHRAdmin(p); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.departments.Create(ctx, &domain.Department{
		Name:      req.Name,
		Status:    req.Status,
		ManagerID: req.ManagerID,
	})
}

// UpdateDepartment updates a department's full field set. HR admin only.
func (s *DirectoryService) UpdateDepartment(ctx context.Context, p domain.Principal, id string, req domain.UpdateDepartmentRequest) (*domain.Department, error) {
	if id == "" {
		return nil, domain.ErrValidation("department id is required")
	}
	if err := requireHRAdmin(p); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.departments.Update(ctx, &domain.Department{
		ID:        id,
		Name:      req.Name,
		Status:    req.Status,
		ManagerID: req.ManagerID,
	})
}

// === Department membership ===

// AddDepartmentMember places an employee in a department. HR admin only.
func (s *DirectoryService) AddDepartmentMember(ctx context.Context, p domain.Principal, departmentID, employeeID string) error {
	if err := requireHRAdmin(p); err != nil {
		return err
	}
	if departmentID == "" || employeeID == "" {
		return domain.ErrValidation("department id and employee id are required")
	}
	return s.memberships.Add(ctx, &domain.DepartmentMembership{
		DepartmentID: departmentID,
		EmployeeID:   employeeID,
	})
}

// RemoveDepartmentMember removes an employee from a department. HR admin only.
func (s *DirectoryService) RemoveDepartmentMember(ctx context.Context, p domain.Principal, departmentID, employeeID string) error {
	if err := requireHRAdmin(p); err != nil {
		return err
	}
	if departmentID == "" || employeeID == "" {
		return domain.ErrValidation("department id and employee id are required")
	}
	return s.memberships.Remove(ctx, &domain.DepartmentMembership{
		DepartmentID: departmentID,
		EmployeeID:   employeeID,
	})
}

// ListDepartmentMembers lists the memberships of a department the principal
// can see; the department itself must be in scope first.
func (s *DirectoryService) ListDepartmentMembers(ctx context.Context, p domain.Principal, departmentID string) ([]domain.DepartmentMembership, error) {
	if _, err := s.GetDepartment(ctx, p, departmentID); err != nil {
		return nil, err
	}
	return s.memberships.ListByDepartment(ctx, departmentID)
}
