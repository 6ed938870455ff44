package maintenance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/clubops/clubops-backend-go/internal/domain/maintenance"
)

func enabledConfig() maintenance.KPIConfig {
	config := maintenance.DefaultKPIConfig("club-1")
	config.Enabled = true
	config.BonusPerPoint = decimal.NewFromInt(100)
	return config
}

func TestComputeTaskBonus_DisabledConfigIsNeutral(t *testing.T) {
	calc := NewKPICalculator()
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	result := calc.ComputeTaskBonus(maintenance.TaskRepair, due, due.AddDate(0, 0, 10), maintenance.KPIConfig{Enabled: false})

	assert.True(t, result.BonusEarned.IsZero())
	assert.Equal(t, 1, result.KPIPoints)
	assert.True(t, result.AppliedMultiplier.Equal(decimal.NewFromInt(1)))
}

func TestComputeTaskBonus_PointsPerTaskType(t *testing.T) {
	calc := NewKPICalculator()
	config := enabledConfig()
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	cleaning := calc.ComputeTaskBonus(maintenance.TaskCleaning, due, due, config)
	repair := calc.ComputeTaskBonus(maintenance.TaskRepair, due, due, config)

	assert.Equal(t, 1, cleaning.KPIPoints)
	assert.True(t, cleaning.BonusEarned.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 3, repair.KPIPoints)
	assert.True(t, repair.BonusEarned.Equal(decimal.NewFromInt(300)))
}

func TestComputeTaskBonus_OnTimeVersusLate(t *testing.T) {
	calc := NewKPICalculator()
	config := enabledConfig()
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("within tolerance keeps on-time multiplier", func(t *testing.T) {
		result := calc.ComputeTaskBonus(maintenance.TaskCleaning, due, due.AddDate(0, 0, 2), config)
		assert.True(t, result.AppliedMultiplier.Equal(config.OnTimeMultiplier))
		assert.True(t, result.BonusEarned.Equal(decimal.NewFromInt(100)))
	})

	t.Run("past tolerance applies late penalty", func(t *testing.T) {
		result := calc.ComputeTaskBonus(maintenance.TaskCleaning, due, due.AddDate(0, 0, 5), config)
		assert.True(t, result.AppliedMultiplier.Equal(config.LatePenaltyMultiplier))
		assert.True(t, result.BonusEarned.Equal(decimal.NewFromInt(50)))
	})

	t.Run("completed early counts as on time", func(t *testing.T) {
		result := calc.ComputeTaskBonus(maintenance.TaskCleaning, due, due.AddDate(0, 0, -4), config)
		assert.True(t, result.AppliedMultiplier.Equal(config.OnTimeMultiplier))
	})
}

func TestComputeTaskBonus_ToleranceBoundary(t *testing.T) {
	calc := NewKPICalculator()
	config := enabledConfig() // tolerance 3 days
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("exactly tolerance days late is on time", func(t *testing.T) {
		result := calc.ComputeTaskBonus(maintenance.TaskCleaning, due, due.AddDate(0, 0, 3), config)
		assert.True(t, result.AppliedMultiplier.Equal(config.OnTimeMultiplier))
	})

	t.Run("an hour past tolerance rounds up to late", func(t *testing.T) {
		completed := due.AddDate(0, 0, 3).Add(time.Hour)
		result := calc.ComputeTaskBonus(maintenance.TaskCleaning, due, completed, config)
		assert.True(t, result.AppliedMultiplier.Equal(config.LatePenaltyMultiplier))
	})
}

func TestComputeTaskBonus_ZeroRateYieldsZeroBonus(t *testing.T) {
	calc := NewKPICalculator()
	config := maintenance.DefaultKPIConfig("club-1") // bonus_per_point stays 0
	config.Enabled = true
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	result := calc.ComputeTaskBonus(maintenance.TaskRepair, due, due, config)

	assert.True(t, result.BonusEarned.IsZero())
	assert.Equal(t, 3, result.KPIPoints)
}

func TestComputeTaskBonus_ZeroLatePenaltyForfeitsLateBonus(t *testing.T) {
	calc := NewKPICalculator()
	config := enabledConfig()
	config.LatePenaltyMultiplier = decimal.Zero
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	result := calc.ComputeTaskBonus(maintenance.TaskCleaning, due, due.AddDate(0, 0, 5), config)

	assert.True(t, result.BonusEarned.IsZero())
	assert.True(t, result.AppliedMultiplier.IsZero())
	assert.Equal(t, 1, result.KPIPoints, "points accrue even when the bonus is forfeited")
}

func TestComputeTaskBonus_ZeroToleranceMakesNextDayLate(t *testing.T) {
	calc := NewKPICalculator()
	config := enabledConfig()
	config.OverdueToleranceDays = 0
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("on the due date is on time", func(t *testing.T) {
		result := calc.ComputeTaskBonus(maintenance.TaskCleaning, due, due, config)
		assert.True(t, result.AppliedMultiplier.Equal(config.OnTimeMultiplier))
	})

	t.Run("an hour past due is late", func(t *testing.T) {
		result := calc.ComputeTaskBonus(maintenance.TaskCleaning, due, due.Add(time.Hour), config)
		assert.True(t, result.AppliedMultiplier.Equal(config.LatePenaltyMultiplier))
	})
}

func TestComputeMonthlyRating_EfficiencyFloor(t *testing.T) {
	calc := NewKPICalculator()
	config := enabledConfig()

	result := calc.ComputeMonthlyRating(maintenance.MonthlyStats{TotalTasks: 0, CompletedTasks: 0}, config)

	assert.True(t, result.EfficiencyPercent.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.RatingMultiplier.Equal(decimal.NewFromFloat(1.2)))
}

func TestComputeMonthlyRating_Tiers(t *testing.T) {
	calc := NewKPICalculator()
	config := enabledConfig() // min 50, target 90
	bonus := decimal.NewFromInt(1000)

	cases := []struct {
		name       string
		total      int
		completed  int
		multiplier decimal.Decimal
	}{
		{"at or above target earns super bonus", 10, 9, decimal.NewFromFloat(1.2)},
		{"between 80 and target keeps full bonus", 10, 8, decimal.NewFromInt(1)},
		{"between min and 80 is reduced", 10, 6, decimal.NewFromFloat(0.8)},
		{"at min is reduced, not forfeited", 10, 5, decimal.NewFromFloat(0.8)},
		{"below min forfeits everything", 10, 4, decimal.Zero},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stats := maintenance.MonthlyStats{TotalTasks: tc.total, CompletedTasks: tc.completed, RawBonusSum: bonus}
			result := calc.ComputeMonthlyRating(stats, config)
			assert.True(t, result.RatingMultiplier.Equal(tc.multiplier), "multiplier = %s", result.RatingMultiplier)
			assert.True(t, result.ProjectedBonus.Equal(bonus.Mul(tc.multiplier)), "projected = %s", result.ProjectedBonus)
		})
	}
}

func TestComputeMonthlyRating_ForfeitureIgnoresRawSum(t *testing.T) {
	calc := NewKPICalculator()
	config := enabledConfig()
	stats := maintenance.MonthlyStats{
		TotalTasks:     10,
		CompletedTasks: 2,
		RawBonusSum:    decimal.NewFromInt(999999),
	}

	result := calc.ComputeMonthlyRating(stats, config)

	assert.True(t, result.RatingMultiplier.IsZero())
	assert.True(t, result.ProjectedBonus.IsZero())
}
