package maintenance

import (
	"context"
	"time"
)

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string, clubID string) (Task, error)
	ListByClub(ctx context.Context, clubID string, status *TaskStatus, limit, offset int) ([]Task, error)
	ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]Task, error)
	// Complete stores the completion timestamp and KPI outcome. Only pending
	// or in-progress tasks transition; zero rows means the task already
	// completed.
	Complete(ctx context.Context, t Task) error
	// Reject resets the stored KPI fields to zero and returns the task to
	// in_progress for rework.
	Reject(ctx context.Context, id string, clubID string) error
	Approve(ctx context.Context, id string, clubID string) error
	// ListCompletedRecurringWithoutSuccessor returns completed recurring tasks
	// that have no later open occurrence, for the roll-forward job.
	ListCompletedRecurringWithoutSuccessor(ctx context.Context) ([]Task, error)
	// MonthlyStats aggregates an employee's tasks whose due date falls in the
	// given month.
	MonthlyStats(ctx context.Context, employeeID string, from, to time.Time) (MonthlyStats, error)
}

type KPIConfigRepository interface {
	// Get returns the club's config with defaults applied; a missing row
	// yields a disabled config rather than an error.
	Get(ctx context.Context, clubID string) (KPIConfig, error)
	Upsert(ctx context.Context, c KPIConfig) (KPIConfig, error)
}
