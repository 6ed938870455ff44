package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/clubops/clubops-backend-go/internal/domain/shift"
	"github.com/clubops/clubops-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `
	sh.id, sh.club_id, sh.employee_id, sh.scheme_id, sh.scheme_version, sh.status,
	sh.started_at, sh.ended_at, sh.hours_worked,
	sh.revenue_total, sh.revenue_cash, sh.revenue_card,
	sh.report_data, sh.salary_total, sh.salary_breakdown, sh.created_at
`

func (r *shiftRepository) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (club_id, employee_id, status, started_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, club_id, employee_id, scheme_id, scheme_version, status,
			started_at, ended_at, hours_worked,
			revenue_total, revenue_cash, revenue_card,
			report_data, salary_total, salary_breakdown, created_at
	`

	created, err := r.scanShift(q.QueryRow(ctx, query, s.ClubID, s.EmployeeID, s.Status, s.StartedAt))
	if err != nil {
		if strings.Contains(err.Error(), "uk_shifts_employee_open") {
			return shift.Shift{}, shift.ErrShiftAlreadyOpen
		}
		return shift.Shift{}, err
	}

	return created, nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id string, clubID string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts sh
		WHERE sh.id = $1 AND sh.club_id = $2
	`

	return r.scanShift(q.QueryRow(ctx, query, id, clubID))
}

func (r *shiftRepository) GetOpenByEmployee(ctx context.Context, employeeID string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts sh
		WHERE sh.employee_id = $1 AND sh.status = 'open'
	`

	return r.scanShift(q.QueryRow(ctx, query, employeeID))
}

func (r *shiftRepository) ListByClub(ctx context.Context, clubID string, limit, offset int) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `, e.name
		FROM shifts sh
		JOIN employees e ON e.id = sh.employee_id
		WHERE sh.club_id = $1
		ORDER BY sh.started_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.listShifts(ctx, q, query, true, clubID, limit, offset)
}

func (r *shiftRepository) ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts sh
		WHERE sh.employee_id = $1
		ORDER BY sh.started_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.listShifts(ctx, q, query, false, employeeID, limit, offset)
}

// Close stores report, revenue, and salary, and flips the shift to closed.
// The status guard makes a concurrent second close a no-op that surfaces as
// ErrShiftAlreadyClosed.
func (r *shiftRepository) Close(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	reportData, err := json.Marshal(s.ReportData)
	if err != nil {
		return fmt.Errorf("failed to marshal report data: %w", err)
	}
	breakdown, err := json.Marshal(s.SalaryBreakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal salary breakdown: %w", err)
	}

	query := `
		UPDATE shifts SET
			status = 'closed',
			scheme_id = $3,
			scheme_version = $4,
			ended_at = $5,
			hours_worked = $6,
			revenue_total = $7,
			revenue_cash = $8,
			revenue_card = $9,
			report_data = $10,
			salary_total = $11,
			salary_breakdown = $12
		WHERE id = $1 AND club_id = $2 AND status = 'open'
	`

	tag, err := q.Exec(ctx, query,
		s.ID, s.ClubID, s.SchemeID, s.SchemeVersion, s.EndedAt, s.HoursWorked,
		s.RevenueTotal, s.RevenueCash, s.RevenueCard,
		reportData, s.SalaryTotal, breakdown,
	)
	if err != nil {
		return fmt.Errorf("failed to close shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftAlreadyClosed
	}

	return nil
}

func (r *shiftRepository) listShifts(ctx context.Context, q database.Querier, query string, withEmployee bool, args ...any) ([]shift.Shift, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := r.scanShiftRow(rows, withEmployee)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}

func (r *shiftRepository) scanShift(row pgx.Row) (shift.Shift, error) {
	return r.scanShiftRow(row, false)
}

func (r *shiftRepository) scanShiftRow(row pgx.Row, withEmployee bool) (shift.Shift, error) {
	var s shift.Shift
	var reportData, breakdown []byte

	targets := []any{
		&s.ID, &s.ClubID, &s.EmployeeID, &s.SchemeID, &s.SchemeVersion, &s.Status,
		&s.StartedAt, &s.EndedAt, &s.HoursWorked,
		&s.RevenueTotal, &s.RevenueCash, &s.RevenueCard,
		&reportData, &s.SalaryTotal, &breakdown, &s.CreatedAt,
	}
	if withEmployee {
		targets = append(targets, &s.EmployeeName)
	}

	if err := row.Scan(targets...); err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to scan shift: %w", err)
	}

	if len(reportData) > 0 {
		if err := json.Unmarshal(reportData, &s.ReportData); err != nil {
			return shift.Shift{}, fmt.Errorf("failed to unmarshal report data: %w", err)
		}
	}
	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &s.SalaryBreakdown); err != nil {
			return shift.Shift{}, fmt.Errorf("failed to unmarshal salary breakdown: %w", err)
		}
	}

	return s, nil
}
