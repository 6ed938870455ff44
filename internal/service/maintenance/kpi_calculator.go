package maintenance

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubops/clubops-backend-go/internal/domain/maintenance"
)

var (
	oneHundred      = decimal.NewFromInt(100)
	eightyPercent   = decimal.NewFromInt(80)
	superMultiplier = decimal.NewFromFloat(1.2)
	goodMultiplier  = decimal.NewFromInt(1)
	lowMultiplier   = decimal.NewFromFloat(0.8)
)

// KPICalculator computes maintenance bonuses from a club's KPI config and
// task timing. Like the salary evaluator it is pure: no storage, no clock,
// no failure mode beyond defaulting.
type KPICalculator struct{}

func NewKPICalculator() *KPICalculator {
	return &KPICalculator{}
}

// ComputeTaskBonus scores one task at completion time. With KPI disabled the
// result is a neutral no-op: zero bonus, one point, multiplier 1.0.
func (c *KPICalculator) ComputeTaskBonus(taskType maintenance.TaskType, dueDate, completedAt time.Time, config maintenance.KPIConfig) maintenance.TaskBonusResult {
	if !config.Enabled {
		return maintenance.TaskBonusResult{
			BonusEarned:       decimal.Zero,
			KPIPoints:         1,
			AppliedMultiplier: decimal.NewFromInt(1),
		}
	}

	points := config.PointsPerCleaning
	if taskType == maintenance.TaskRepair {
		points = config.PointsPerIssueResolved
	}

	baseValue := decimal.NewFromInt(int64(points)).Mul(config.BonusPerPoint)

	multiplier := config.OnTimeMultiplier
	if diffDays(dueDate, completedAt) > config.OverdueToleranceDays {
		multiplier = config.LatePenaltyMultiplier
	}

	return maintenance.TaskBonusResult{
		BonusEarned:       baseValue.Mul(multiplier),
		KPIPoints:         points,
		AppliedMultiplier: multiplier,
	}
}

// diffDays is the calendar-day ceiling of the elapsed time from due date to
// completion. Negative when completed early; only values strictly above the
// tolerance count as late.
func diffDays(dueDate, completedAt time.Time) int {
	elapsed := completedAt.Sub(dueDate)
	return int(math.Ceil(elapsed.Hours() / 24))
}

// ComputeMonthlyRating turns a month of task stats into an efficiency-based
// multiplier over the raw bonus sum. No assigned tasks reads as perfect
// efficiency so an idle month is never penalized.
func (c *KPICalculator) ComputeMonthlyRating(stats maintenance.MonthlyStats, config maintenance.KPIConfig) maintenance.MonthlyRating {
	efficiency := oneHundred
	if stats.TotalTasks > 0 {
		efficiency = decimal.NewFromInt(int64(stats.CompletedTasks)).
			Mul(oneHundred).
			Div(decimal.NewFromInt(int64(stats.TotalTasks)))
	}

	var multiplier decimal.Decimal
	switch {
	case efficiency.GreaterThanOrEqual(config.TargetEfficiencyPercent):
		multiplier = superMultiplier
	case efficiency.LessThan(config.MinEfficiencyPercent):
		multiplier = decimal.Zero
	case efficiency.LessThan(eightyPercent):
		multiplier = lowMultiplier
	default:
		multiplier = goodMultiplier
	}

	return maintenance.MonthlyRating{
		EfficiencyPercent: efficiency,
		RatingMultiplier:  multiplier,
		ProjectedBonus:    stats.RawBonusSum.Mul(multiplier),
	}
}
