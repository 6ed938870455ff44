package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/clubops/clubops-backend-go/internal/domain/maintenance"
	"github.com/clubops/clubops-backend-go/internal/pkg/database"
)

// ========== TASKS ==========

type maintenanceTaskRepository struct {
	db *database.DB
}

func NewMaintenanceTaskRepository(db *database.DB) maintenance.TaskRepository {
	return &maintenanceTaskRepository{db: db}
}

const taskColumns = `
	t.id, t.club_id, t.employee_id, t.task_type, t.title, t.description, t.status,
	t.due_date, t.completed_at, t.recurrence_days,
	t.kpi_points, t.applied_kpi_multiplier, t.bonus_earned, t.created_at
`

func (r *maintenanceTaskRepository) Create(ctx context.Context, t maintenance.Task) (maintenance.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO maintenance_tasks (club_id, employee_id, task_type, title, description, status, due_date, recurrence_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, club_id, employee_id, task_type, title, description, status,
			due_date, completed_at, recurrence_days,
			kpi_points, applied_kpi_multiplier, bonus_earned, created_at
	`

	return r.scanTask(q.QueryRow(ctx, query,
		t.ClubID, t.EmployeeID, t.TaskType, t.Title, t.Description, t.Status, t.DueDate, t.RecurrenceDays,
	), false)
}

func (r *maintenanceTaskRepository) GetByID(ctx context.Context, id string, clubID string) (maintenance.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `
		FROM maintenance_tasks t
		WHERE t.id = $1 AND t.club_id = $2
	`

	return r.scanTask(q.QueryRow(ctx, query, id, clubID), false)
}

func (r *maintenanceTaskRepository) ListByClub(ctx context.Context, clubID string, status *maintenance.TaskStatus, limit, offset int) ([]maintenance.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `, e.name
		FROM maintenance_tasks t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.club_id = $1 AND ($2::text IS NULL OR t.status = $2)
		ORDER BY t.due_date
		LIMIT $3 OFFSET $4
	`

	rows, err := q.Query(ctx, query, clubID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance tasks: %w", err)
	}
	defer rows.Close()

	var tasks []maintenance.Task
	for rows.Next() {
		t, err := r.scanTask(rows, true)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (r *maintenanceTaskRepository) ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]maintenance.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `
		FROM maintenance_tasks t
		WHERE t.employee_id = $1
		ORDER BY t.due_date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, employeeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance tasks: %w", err)
	}
	defer rows.Close()

	var tasks []maintenance.Task
	for rows.Next() {
		t, err := r.scanTask(rows, false)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Complete stores the completion timestamp and the KPI outcome computed at
// completion time. The status guard keeps a second completion from
// overwriting the stored outcome.
func (r *maintenanceTaskRepository) Complete(ctx context.Context, t maintenance.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE maintenance_tasks SET
			status = 'completed',
			completed_at = $3,
			kpi_points = $4,
			applied_kpi_multiplier = $5,
			bonus_earned = $6
		WHERE id = $1 AND club_id = $2 AND status IN ('pending', 'in_progress')
	`

	tag, err := q.Exec(ctx, query, t.ID, t.ClubID, t.CompletedAt, t.KPIPoints, t.AppliedKPIMultiplier, t.BonusEarned)
	if err != nil {
		return fmt.Errorf("failed to complete maintenance task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return maintenance.ErrTaskAlreadyCompleted
	}

	return nil
}

// Reject is a hard reset: the stored KPI fields go back to zero and the task
// returns to in_progress. Nothing is recomputed.
func (r *maintenanceTaskRepository) Reject(ctx context.Context, id string, clubID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE maintenance_tasks SET
			status = 'in_progress',
			completed_at = NULL,
			kpi_points = 0,
			applied_kpi_multiplier = 0,
			bonus_earned = 0
		WHERE id = $1 AND club_id = $2 AND status = 'completed'
	`

	tag, err := q.Exec(ctx, query, id, clubID)
	if err != nil {
		return fmt.Errorf("failed to reject maintenance task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return maintenance.ErrTaskNotCompleted
	}

	return nil
}

func (r *maintenanceTaskRepository) Approve(ctx context.Context, id string, clubID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE maintenance_tasks SET status = 'approved'
		WHERE id = $1 AND club_id = $2 AND status = 'completed'
	`

	tag, err := q.Exec(ctx, query, id, clubID)
	if err != nil {
		return fmt.Errorf("failed to approve maintenance task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return maintenance.ErrTaskNotCompleted
	}

	return nil
}

func (r *maintenanceTaskRepository) ListCompletedRecurringWithoutSuccessor(ctx context.Context) ([]maintenance.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `
		FROM maintenance_tasks t
		WHERE t.status IN ('completed', 'approved')
		  AND t.recurrence_days > 0
		  AND NOT EXISTS (
			SELECT 1 FROM maintenance_tasks n
			WHERE n.club_id = t.club_id
			  AND n.employee_id = t.employee_id
			  AND n.task_type = t.task_type
			  AND n.title = t.title
			  AND n.due_date > t.due_date
		  )
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring tasks: %w", err)
	}
	defer rows.Close()

	var tasks []maintenance.Task
	for rows.Next() {
		t, err := r.scanTask(rows, false)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (r *maintenanceTaskRepository) MonthlyStats(ctx context.Context, employeeID string, from, to time.Time) (maintenance.MonthlyStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status IN ('completed', 'approved')),
			COALESCE(SUM(bonus_earned) FILTER (WHERE status IN ('completed', 'approved')), 0)
		FROM maintenance_tasks
		WHERE employee_id = $1 AND due_date >= $2 AND due_date < $3
	`

	stats := maintenance.MonthlyStats{EmployeeID: employeeID}
	err := q.QueryRow(ctx, query, employeeID, from, to).Scan(
		&stats.TotalTasks, &stats.CompletedTasks, &stats.RawBonusSum,
	)
	if err != nil {
		return maintenance.MonthlyStats{}, fmt.Errorf("failed to aggregate monthly stats: %w", err)
	}

	return stats, nil
}

func (r *maintenanceTaskRepository) scanTask(row pgx.Row, withEmployee bool) (maintenance.Task, error) {
	var t maintenance.Task

	targets := []any{
		&t.ID, &t.ClubID, &t.EmployeeID, &t.TaskType, &t.Title, &t.Description, &t.Status,
		&t.DueDate, &t.CompletedAt, &t.RecurrenceDays,
		&t.KPIPoints, &t.AppliedKPIMultiplier, &t.BonusEarned, &t.CreatedAt,
	}
	if withEmployee {
		targets = append(targets, &t.EmployeeName)
	}

	if err := row.Scan(targets...); err != nil {
		if err == pgx.ErrNoRows {
			return maintenance.Task{}, maintenance.ErrTaskNotFound
		}
		return maintenance.Task{}, fmt.Errorf("failed to scan maintenance task: %w", err)
	}

	return t, nil
}

// ========== KPI CONFIG ==========

type kpiConfigRepository struct {
	db *database.DB
}

func NewKPIConfigRepository(db *database.DB) maintenance.KPIConfigRepository {
	return &kpiConfigRepository{db: db}
}

// Get returns the club's stored config verbatim, so an explicitly configured
// zero is never replaced with a default. A club that never saved a config
// reads as the disabled default set, which the calculator treats as a neutral
// no-op.
func (r *kpiConfigRepository) Get(ctx context.Context, clubID string) (maintenance.KPIConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT club_id, enabled, points_per_cleaning, points_per_issue_resolved, bonus_per_point,
			   overdue_tolerance_days, min_efficiency_percent, target_efficiency_percent,
			   on_time_multiplier, late_penalty_multiplier, updated_at
		FROM maintenance_kpi_configs
		WHERE club_id = $1
	`

	var c maintenance.KPIConfig
	err := q.QueryRow(ctx, query, clubID).Scan(
		&c.ClubID, &c.Enabled, &c.PointsPerCleaning, &c.PointsPerIssueResolved, &c.BonusPerPoint,
		&c.OverdueToleranceDays, &c.MinEfficiencyPercent, &c.TargetEfficiencyPercent,
		&c.OnTimeMultiplier, &c.LatePenaltyMultiplier, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return maintenance.DefaultKPIConfig(clubID), nil
		}
		return maintenance.KPIConfig{}, fmt.Errorf("failed to get KPI config: %w", err)
	}

	return c, nil
}

func (r *kpiConfigRepository) Upsert(ctx context.Context, c maintenance.KPIConfig) (maintenance.KPIConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO maintenance_kpi_configs (
			club_id, enabled, points_per_cleaning, points_per_issue_resolved, bonus_per_point,
			overdue_tolerance_days, min_efficiency_percent, target_efficiency_percent,
			on_time_multiplier, late_penalty_multiplier
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (club_id) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			points_per_cleaning = EXCLUDED.points_per_cleaning,
			points_per_issue_resolved = EXCLUDED.points_per_issue_resolved,
			bonus_per_point = EXCLUDED.bonus_per_point,
			overdue_tolerance_days = EXCLUDED.overdue_tolerance_days,
			min_efficiency_percent = EXCLUDED.min_efficiency_percent,
			target_efficiency_percent = EXCLUDED.target_efficiency_percent,
			on_time_multiplier = EXCLUDED.on_time_multiplier,
			late_penalty_multiplier = EXCLUDED.late_penalty_multiplier,
			updated_at = NOW()
		RETURNING club_id, enabled, points_per_cleaning, points_per_issue_resolved, bonus_per_point,
			overdue_tolerance_days, min_efficiency_percent, target_efficiency_percent,
			on_time_multiplier, late_penalty_multiplier, updated_at
	`

	var saved maintenance.KPIConfig
	err := q.QueryRow(ctx, query,
		c.ClubID, c.Enabled, c.PointsPerCleaning, c.PointsPerIssueResolved, c.BonusPerPoint,
		c.OverdueToleranceDays, c.MinEfficiencyPercent, c.TargetEfficiencyPercent,
		c.OnTimeMultiplier, c.LatePenaltyMultiplier,
	).Scan(
		&saved.ClubID, &saved.Enabled, &saved.PointsPerCleaning, &saved.PointsPerIssueResolved, &saved.BonusPerPoint,
		&saved.OverdueToleranceDays, &saved.MinEfficiencyPercent, &saved.TargetEfficiencyPercent,
		&saved.OnTimeMultiplier, &saved.LatePenaltyMultiplier, &saved.UpdatedAt,
	)
	if err != nil {
		return maintenance.KPIConfig{}, fmt.Errorf("failed to upsert KPI config: %w", err)
	}

	return saved, nil
}
