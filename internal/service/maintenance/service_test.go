package maintenance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/clubops/clubops-backend-go/internal/domain/maintenance"
)

func TestApplyConfigPatch_ExplicitZeroSurvives(t *testing.T) {
	config := maintenance.DefaultKPIConfig("club-1")
	zero := decimal.Zero
	noGrace := 0

	applyConfigPatch(&config, maintenance.UpdateKPIConfigRequest{
		OverdueToleranceDays:  &noGrace,
		OnTimeMultiplier:      &zero,
		LatePenaltyMultiplier: &zero,
	})

	assert.Equal(t, 0, config.OverdueToleranceDays, "zero grace period must not revert to the default")
	assert.True(t, config.OnTimeMultiplier.IsZero())
	assert.True(t, config.LatePenaltyMultiplier.IsZero())
}

func TestApplyConfigPatch_OmittedFieldsKeepStoredValues(t *testing.T) {
	config := maintenance.DefaultKPIConfig("club-1")
	config.Enabled = true
	config.BonusPerPoint = decimal.NewFromInt(100)

	enabled := false
	applyConfigPatch(&config, maintenance.UpdateKPIConfigRequest{Enabled: &enabled})

	assert.False(t, config.Enabled)
	assert.True(t, config.BonusPerPoint.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 3, config.OverdueToleranceDays)
}
