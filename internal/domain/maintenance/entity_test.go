package maintenance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKPIConfig(t *testing.T) {
	config := DefaultKPIConfig("club-1")

	assert.Equal(t, "club-1", config.ClubID)
	assert.False(t, config.Enabled)
	assert.Equal(t, 1, config.PointsPerCleaning)
	assert.Equal(t, 3, config.PointsPerIssueResolved)
	assert.Equal(t, 3, config.OverdueToleranceDays)
	assert.True(t, config.BonusPerPoint.IsZero(), "no rate means no money")
	assert.True(t, config.MinEfficiencyPercent.Equal(decimal.NewFromInt(50)))
	assert.True(t, config.TargetEfficiencyPercent.Equal(decimal.NewFromInt(90)))
	assert.True(t, config.OnTimeMultiplier.Equal(decimal.NewFromInt(1)))
	assert.True(t, config.LatePenaltyMultiplier.Equal(decimal.NewFromFloat(0.5)))
}

func TestTaskType_Valid(t *testing.T) {
	assert.True(t, TaskCleaning.Valid())
	assert.True(t, TaskRepair.Valid())
	assert.False(t, TaskType("INSPECTION").Valid())
}
