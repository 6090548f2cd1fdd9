package repository

import (
	"context"
	"database/sql"
	"time"

	"peopled/internal/domain"
)

type EmployeeRepo struct {
	db *sql.DB
}

func NewEmployeeRepo(db *sql.DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

// employeeSelect joins each employee row with its manager so reads can carry
// a manager reference without a second round trip.
const employeeSelect = `
SELECT e.id, e.first_name, e.last_name, e.phone, e.email, e.status, e.manager_id, e.created_at,
       m.first_name, m.last_name
FROM employees e
LEFT JOIN employees m ON m.id = e.manager_id`

// employeeOrder keeps listings stable across repeated queries.
const employeeOrder = ` ORDER BY e.last_name, e.first_name, e.id`

// managerScope selects the manager's own row plus every member of a
// department that employee manages: the two-hop traversal
// employees -> department_memberships -> departments -> manager.
const managerScope = `(e.id = ? OR e.id IN (
    SELECT dm.employee_id
    FROM department_memberships dm
    JOIN departments d ON d.id = dm.department_id
    WHERE d.manager_id = ?))`

func (r *EmployeeRepo) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	if e.ID == "" {
		e.ID = domain.NewID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO employees (id, first_name, last_name, phone, email, status, manager_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.FirstName, e.LastName, e.Phone, e.Email, string(e.Status), nullStr(e.ManagerID), e.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.GetByID(ctx, e.ID)
}

// CreateWithUser inserts the employee and its linked user credential inside
// one transaction. A fault after the employee insert rolls both back, so the
// org graph and the credential store can never desynchronize.
func (r *EmployeeRepo) CreateWithUser(ctx context.Context, e *domain.Employee, u *domain.User) (*domain.Employee, error) {
	if e.ID == "" {
		e.ID = domain.NewID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if u.ID == "" {
		u.ID = domain.NewID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = e.CreatedAt
	}
	u.EmployeeID = &e.ID

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO employees (id, first_name, last_name, phone, email, status, manager_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.FirstName, e.LastName, e.Phone, e.Email, string(e.Status), nullStr(e.ManagerID), e.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, role, employee_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.PasswordHash, string(u.Role), nullStr(u.EmployeeID), u.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, mapDBError(err)
	}
	return r.GetByID(ctx, e.ID)
}

func (r *EmployeeRepo) Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE employees SET first_name = ?, last_name = ?, phone = ?, email = ?, status = ?, manager_id = ?
		 WHERE id = ?`,
		e.FirstName, e.LastName, e.Phone, e.Email, string(e.Status), nullStr(e.ManagerID), e.ID)
	if err != nil {
		return nil, mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNotFound("employee not found")
	}
	return r.GetByID(ctx, e.ID)
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	row := r.db.QueryRowContext(ctx, employeeSelect+` WHERE e.id = ?`, id)
	return scanEmployeeRow(row)
}

func (r *EmployeeRepo) ListAll(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, employeeSelect+employeeOrder)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

func (r *EmployeeRepo) ListForManager(ctx context.Context, managerEmployeeID string) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx,
		employeeSelect+` WHERE `+managerScope+employeeOrder,
		managerEmployeeID, managerEmployeeID)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

func (r *EmployeeRepo) GetByIDForManager(ctx context.Context, id, managerEmployeeID string) (*domain.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		employeeSelect+` WHERE e.id = ? AND `+managerScope,
		id, managerEmployeeID, managerEmployeeID)
	return scanEmployeeRow(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(s rowScanner) (*domain.Employee, error) {
	var e domain.Employee
	var status string
	var managerID, mgrFirst, mgrLast sql.NullString
	err := s.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Phone, &e.Email, &status,
		&managerID, &e.CreatedAt, &mgrFirst, &mgrLast)
	if err != nil {
		return nil, err
	}
	e.Status = domain.Status(status)
	e.ManagerID = strPtr(managerID)
	if managerID.Valid {
		e.Manager = &domain.EmployeeRef{
			ID:        managerID.String,
			FirstName: mgrFirst.String,
			LastName:  mgrLast.String,
		}
	}
	return &e, nil
}

func scanEmployeeRow(row *sql.Row) (*domain.Employee, error) {
	e, err := scanEmployee(row)
	if err != nil {
		return nil, mapDBError(err)
	}
	return e, nil
}

func collectEmployees(rows *sql.Rows) ([]domain.Employee, error) {
	defer rows.Close()
	var out []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}
