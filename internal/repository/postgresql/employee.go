package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/clubops/clubops-backend-go/internal/domain/employee"
	"github.com/clubops/clubops-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (club_id, name, code, hired_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, club_id, name, code, scheme_id, is_active, hired_at, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		e.ClubID, e.Name, e.Code, e.HiredAt,
	).Scan(
		&created.ID, &created.ClubID, &created.Name, &created.Code,
		&created.SchemeID, &created.IsActive, &created.HiredAt, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employees_club_code") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string, clubID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.club_id, e.name, e.code, e.scheme_id, e.is_active, e.hired_at,
			   e.created_at, e.updated_at, s.name
		FROM employees e
		LEFT JOIN compensation_schemes s ON s.id = e.scheme_id
		WHERE e.id = $1 AND e.club_id = $2
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id, clubID).Scan(
		&e.ID, &e.ClubID, &e.Name, &e.Code, &e.SchemeID, &e.IsActive, &e.HiredAt,
		&e.CreatedAt, &e.UpdatedAt, &e.SchemeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) ListByClub(ctx context.Context, clubID string, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.club_id, e.name, e.code, e.scheme_id, e.is_active, e.hired_at,
			   e.created_at, e.updated_at, s.name
		FROM employees e
		LEFT JOIN compensation_schemes s ON s.id = e.scheme_id
		WHERE e.club_id = $1 AND ($2 = false OR e.is_active = true)
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, clubID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.ClubID, &e.Name, &e.Code, &e.SchemeID, &e.IsActive, &e.HiredAt,
			&e.CreatedAt, &e.UpdatedAt, &e.SchemeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, clubID string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			name = COALESCE($3, name),
			is_active = COALESCE($4, is_active),
			updated_at = NOW()
		WHERE id = $1 AND club_id = $2
	`

	tag, err := q.Exec(ctx, query, req.ID, clubID, req.Name, req.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) AssignScheme(ctx context.Context, clubID string, employeeID string, schemeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET scheme_id = $3, updated_at = NOW()
		WHERE id = $1 AND club_id = $2
	`

	tag, err := q.Exec(ctx, query, employeeID, clubID, schemeID)
	if err != nil {
		return fmt.Errorf("failed to assign scheme: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string, clubID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET is_active = false, updated_at = NOW() WHERE id = $1 AND club_id = $2`

	tag, err := q.Exec(ctx, query, id, clubID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
