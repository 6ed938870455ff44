package maintenance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubops/clubops-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	EmployeeID     string `json:"employee_id"`
	TaskType       string `json:"task_type"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	DueDate        string `json:"due_date"`
	RecurrenceDays int    `json:"recurrence_days,omitempty"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid UUID"})
	}
	if !TaskType(r.TaskType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "task_type", Message: "task_type must be CLEANING or REPAIR"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if validator.IsEmpty(r.DueDate) {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "due_date is required"})
	} else if _, ok := r.ParseDueDate(); !ok {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "due_date must be an RFC3339 timestamp or YYYY-MM-DD date"})
	}
	if r.RecurrenceDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "recurrence_days", Message: "recurrence_days must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParseDueDate accepts either a full RFC3339 timestamp or a bare date, which
// reads as midnight UTC.
func (r *CreateTaskRequest) ParseDueDate() (time.Time, bool) {
	if t, ok := validator.IsValidDateTime(r.DueDate); ok {
		return t, true
	}
	return validator.IsValidDate(r.DueDate)
}

type CompleteTaskRequest struct {
	CompletedAt string `json:"completed_at,omitempty"`
}

func (r *CompleteTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CompletedAt != "" {
		if _, ok := validator.IsValidDateTime(r.CompletedAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "completed_at", Message: "completed_at must be a valid RFC3339 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateKPIConfigRequest struct {
	Enabled                 *bool            `json:"enabled,omitempty"`
	PointsPerCleaning       *int             `json:"points_per_cleaning,omitempty"`
	PointsPerIssueResolved  *int             `json:"points_per_issue_resolved,omitempty"`
	BonusPerPoint           *decimal.Decimal `json:"bonus_per_point,omitempty"`
	OverdueToleranceDays    *int             `json:"overdue_tolerance_days,omitempty"`
	MinEfficiencyPercent    *decimal.Decimal `json:"min_efficiency_percent,omitempty"`
	TargetEfficiencyPercent *decimal.Decimal `json:"target_efficiency_percent,omitempty"`
	OnTimeMultiplier        *decimal.Decimal `json:"on_time_multiplier,omitempty"`
	LatePenaltyMultiplier   *decimal.Decimal `json:"late_penalty_multiplier,omitempty"`
}

func (r *UpdateKPIConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PointsPerCleaning != nil && *r.PointsPerCleaning < 0 {
		errs = append(errs, validator.ValidationError{Field: "points_per_cleaning", Message: "points_per_cleaning must not be negative"})
	}
	if r.PointsPerIssueResolved != nil && *r.PointsPerIssueResolved < 0 {
		errs = append(errs, validator.ValidationError{Field: "points_per_issue_resolved", Message: "points_per_issue_resolved must not be negative"})
	}
	if r.BonusPerPoint != nil && r.BonusPerPoint.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonus_per_point", Message: "bonus_per_point must not be negative"})
	}
	if r.OverdueToleranceDays != nil && *r.OverdueToleranceDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "overdue_tolerance_days", Message: "overdue_tolerance_days must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TaskBonusResult is the stored KPI outcome of one completed task.
type TaskBonusResult struct {
	BonusEarned       decimal.Decimal `json:"bonus_earned"`
	KPIPoints         int             `json:"kpi_points"`
	AppliedMultiplier decimal.Decimal `json:"applied_multiplier"`
}

// MonthlyRating is the efficiency-based rating over a month of tasks.
type MonthlyRating struct {
	EfficiencyPercent decimal.Decimal `json:"efficiency_percent"`
	RatingMultiplier  decimal.Decimal `json:"rating_multiplier"`
	ProjectedBonus    decimal.Decimal `json:"projected_bonus"`
}

type MonthlySummaryResponse struct {
	EmployeeID     string          `json:"employee_id"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	TotalTasks     int             `json:"total_tasks"`
	CompletedTasks int             `json:"completed_tasks"`
	RawBonusSum    decimal.Decimal `json:"raw_bonus_sum"`
	MonthlyRating
}
