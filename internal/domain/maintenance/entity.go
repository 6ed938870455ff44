package maintenance

import (
	"time"

	"github.com/shopspring/decimal"
)

type TaskType string

const (
	TaskCleaning TaskType = "CLEANING"
	TaskRepair   TaskType = "REPAIR"
)

func (t TaskType) Valid() bool {
	return t == TaskCleaning || t == TaskRepair
}

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusApproved   TaskStatus = "approved"
)

// KPI defaults for a club that has never saved a config. Stored configs are
// read back verbatim, so an explicit zero (no grace period, forfeited late
// bonuses) survives the round trip instead of being re-defaulted.
const (
	DefaultPointsPerCleaning      = 1
	DefaultPointsPerIssueResolved = 3
	DefaultOverdueToleranceDays   = 3
	DefaultMinEfficiencyPercent   = 50
	DefaultTargetEfficiencyPct    = 90
)

var (
	DefaultOnTimeMultiplier      = decimal.NewFromInt(1)
	DefaultLatePenaltyMultiplier = decimal.NewFromFloat(0.5)
)

// KPIConfig is the per-club knob set for maintenance bonuses. Every field is
// persisted in full on upsert; DefaultKPIConfig supplies the values for clubs
// without a stored row, and the calculators never re-derive defaults.
type KPIConfig struct {
	ClubID                  string          `json:"club_id"`
	Enabled                 bool            `json:"enabled"`
	PointsPerCleaning       int             `json:"points_per_cleaning"`
	PointsPerIssueResolved  int             `json:"points_per_issue_resolved"`
	BonusPerPoint           decimal.Decimal `json:"bonus_per_point"`
	OverdueToleranceDays    int             `json:"overdue_tolerance_days"`
	MinEfficiencyPercent    decimal.Decimal `json:"min_efficiency_percent"`
	TargetEfficiencyPercent decimal.Decimal `json:"target_efficiency_percent"`
	OnTimeMultiplier        decimal.Decimal `json:"on_time_multiplier"`
	LatePenaltyMultiplier   decimal.Decimal `json:"late_penalty_multiplier"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

// DefaultKPIConfig is the config of a club that never saved one: disabled,
// with the documented defaults filled in. BonusPerPoint stays zero; no rate
// means no money.
func DefaultKPIConfig(clubID string) KPIConfig {
	return KPIConfig{
		ClubID:                  clubID,
		Enabled:                 false,
		PointsPerCleaning:       DefaultPointsPerCleaning,
		PointsPerIssueResolved:  DefaultPointsPerIssueResolved,
		OverdueToleranceDays:    DefaultOverdueToleranceDays,
		MinEfficiencyPercent:    decimal.NewFromInt(DefaultMinEfficiencyPercent),
		TargetEfficiencyPercent: decimal.NewFromInt(DefaultTargetEfficiencyPct),
		OnTimeMultiplier:        DefaultOnTimeMultiplier,
		LatePenaltyMultiplier:   DefaultLatePenaltyMultiplier,
	}
}

// Task is one maintenance assignment. Its KPI outcome is computed once at
// completion and stored immutably; rejection resets the stored fields to
// zero and returns the task to in_progress without recomputing anything.
type Task struct {
	ID                   string          `json:"id"`
	ClubID               string          `json:"club_id"`
	EmployeeID           string          `json:"employee_id"`
	TaskType             TaskType        `json:"task_type"`
	Title                string          `json:"title"`
	Description          string          `json:"description,omitempty"`
	Status               TaskStatus      `json:"status"`
	DueDate              time.Time       `json:"due_date"`
	CompletedAt          *time.Time      `json:"completed_at,omitempty"`
	RecurrenceDays       int             `json:"recurrence_days,omitempty"`
	KPIPoints            int             `json:"kpi_points"`
	AppliedKPIMultiplier decimal.Decimal `json:"applied_kpi_multiplier"`
	BonusEarned          decimal.Decimal `json:"bonus_earned"`
	CreatedAt            time.Time       `json:"created_at"`

	EmployeeName string `json:"employee_name,omitempty"`
}

// MonthlyStats aggregates one employee's maintenance month for the rating
// multiplier.
type MonthlyStats struct {
	EmployeeID     string          `json:"employee_id"`
	TotalTasks     int             `json:"total_tasks"`
	CompletedTasks int             `json:"completed_tasks"`
	RawBonusSum    decimal.Decimal `json:"raw_bonus_sum"`
}
