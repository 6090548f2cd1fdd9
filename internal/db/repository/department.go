package repository

import (
	"context"
	"database/sql"
	"time"

	"peopled/internal/domain"
)

type DepartmentRepo struct {
	db *sql.DB
}

func NewDepartmentRepo(db *sql.DB) *DepartmentRepo {
	return &DepartmentRepo{db: db}
}

const departmentSelect = `
SELECT d.id, d.name, d.status, d.manager_id, d.created_at,
       m.first_name, m.last_name
FROM departments d
LEFT JOIN employees m ON m.id = d.manager_id`

const departmentOrder = ` ORDER BY d.name, d.id`

// memberScope selects departments the given employee belongs to.
const memberScope = `d.id IN (
    SELECT dm.department_id FROM department_memberships dm WHERE dm.employee_id = ?)`

func (r *DepartmentRepo) Create(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	if d.ID == "" {
		d.ID = domain.NewID()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO departments (id, name, status, manager_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		d.ID, d.Name, string(d.Status), nullStr(d.ManagerID), d.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.GetByID(ctx, d.ID)
}

func (r *DepartmentRepo) Update(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE departments SET name = ?, status = ?, manager_id = ? WHERE id = ?`,
		d.Name, string(d.Status), nullStr(d.ManagerID), d.ID)
	if err != nil {
		return nil, mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNotFound("department not found")
	}
	return r.GetByID(ctx, d.ID)
}

func (r *DepartmentRepo) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	row := r.db.QueryRowContext(ctx, departmentSelect+` WHERE d.id = ?`, id)
	return scanDepartmentRow(row)
}

func (r *DepartmentRepo) ListAll(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.db.QueryContext(ctx, departmentSelect+departmentOrder)
	if err != nil {
		return nil, err
	}
	return collectDepartments(rows)
}

func (r *DepartmentRepo) ListManagedBy(ctx context.Context, employeeID string) ([]domain.Department, error) {
	rows, err := r.db.QueryContext(ctx,
		departmentSelect+` WHERE d.manager_id = ?`+departmentOrder, employeeID)
	if err != nil {
		return nil, err
	}
	return collectDepartments(rows)
}

func (r *DepartmentRepo) ListWithMember(ctx context.Context, employeeID string) ([]domain.Department, error) {
	rows, err := r.db.QueryContext(ctx,
		departmentSelect+` WHERE `+memberScope+departmentOrder, employeeID)
	if err != nil {
		return nil, err
	}
	return collectDepartments(rows)
}

func (r *DepartmentRepo) GetByIDManagedBy(ctx context.Context, id, employeeID string) (*domain.Department, error) {
	row := r.db.QueryRowContext(ctx,
		departmentSelect+` WHERE d.id = ? AND d.manager_id = ?`, id, employeeID)
	return scanDepartmentRow(row)
}

func (r *DepartmentRepo) GetByIDWithMember(ctx context.Context, id, employeeID string) (*domain.Department, error) {
	row := r.db.QueryRowContext(ctx,
		departmentSelect+` WHERE d.id = ? AND `+memberScope, id, employeeID)
	return scanDepartmentRow(row)
}

func scanDepartment(s rowScanner) (*domain.Department, error) {
	var d domain.Department
	var status string
	var managerID, mgrFirst, mgrLast sql.NullString
	err := s.Scan(&d.ID, &d.Name, &status, &managerID, &d.CreatedAt, &mgrFirst, &mgrLast)
	if err != nil {
		return nil, err
	}
	d.Status = domain.Status(status)
	d.ManagerID = strPtr(managerID)
	if managerID.Valid {
		d.Manager = &domain.EmployeeRef{
			ID:        managerID.String,
			FirstName: mgrFirst.String,
			LastName:  mgrLast.String,
		}
	}
	return &d, nil
}

func scanDepartmentRow(row *sql.Row) (*domain.Department, error) {
	d, err := scanDepartment(row)
	if err != nil {
		return nil, mapDBError(err)
	}
	return d, nil
}

func collectDepartments(rows *sql.Rows) ([]domain.Department, error) {
	defer rows.Close()
	var out []domain.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}
