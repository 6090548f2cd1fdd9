package repository

import (
	"context"
	"database/sql"

	"peopled/internal/domain"
)

type MembershipRepo struct {
	db *sql.DB
}

func NewMembershipRepo(db *sql.DB) *MembershipRepo {
	return &MembershipRepo{db: db}
}

func (r *MembershipRepo) Add(ctx context.Context, m *domain.DepartmentMembership) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO department_memberships (department_id, employee_id) VALUES (?, ?)`,
		m.DepartmentID, m.EmployeeID)
	return mapDBError(err)
}

func (r *MembershipRepo) Remove(ctx context.Context, m *domain.DepartmentMembership) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM department_memberships WHERE department_id = ? AND employee_id = ?`,
		m.DepartmentID, m.EmployeeID)
	if err != nil {
		return mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("membership not found")
	}
	return nil
}

func (r *MembershipRepo) ListByDepartment(ctx context.Context, departmentID string) ([]domain.DepartmentMembership, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT department_id, employee_id FROM department_memberships WHERE department_id = ? ORDER BY employee_id`,
		departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DepartmentMembership
	for rows.Next() {
		var m domain.DepartmentMembership
		if err := rows.Scan(&m.DepartmentID, &m.EmployeeID); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
