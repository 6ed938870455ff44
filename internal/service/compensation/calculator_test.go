package compensation

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubops/clubops-backend-go/internal/domain/compensation"
)

func strPtr(s string) *string { return &s }

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func hourlyDoc(amount float64) compensation.SchemeDocument {
	return compensation.SchemeDocument{
		Base: &compensation.RawBase{Type: strPtr("hourly"), Amount: decPtr(amount)},
	}
}

func TestComputeSalary_HourlyBase(t *testing.T) {
	calc := NewSalaryCalculator()

	result := calc.ComputeSalary(dec(8), hourlyDoc(150), nil)

	assert.True(t, result.Breakdown.Base.Equal(dec(1200)), "base = %s", result.Breakdown.Base)
	assert.True(t, result.Total.Equal(dec(1200)), "total = %s", result.Total)
}

func TestComputeSalary_FixedProration(t *testing.T) {
	calc := NewSalaryCalculator()
	doc := compensation.SchemeDocument{
		Base: &compensation.RawBase{Type: strPtr("fixed"), Amount: decPtr(2400), FullShiftHours: decPtr(12)},
	}

	t.Run("partial shift prorates linearly", func(t *testing.T) {
		result := calc.ComputeSalary(dec(6), doc, nil)
		assert.True(t, result.Breakdown.Base.Equal(dec(1200)), "base = %s", result.Breakdown.Base)
	})

	t.Run("full shift pays full amount", func(t *testing.T) {
		result := calc.ComputeSalary(dec(12), doc, nil)
		assert.True(t, result.Breakdown.Base.Equal(dec(2400)), "base = %s", result.Breakdown.Base)
	})

	t.Run("overtime does not exceed full amount", func(t *testing.T) {
		result := calc.ComputeSalary(dec(15), doc, nil)
		assert.True(t, result.Breakdown.Base.Equal(dec(2400)), "base = %s", result.Breakdown.Base)
	})
}

func TestComputeSalary_ZeroFullShiftHoursPaysFullAmount(t *testing.T) {
	calc := NewSalaryCalculator()
	doc := compensation.SchemeDocument{
		Base: &compensation.RawBase{Type: strPtr("per_shift"), Amount: decPtr(2000), FullShiftHours: decPtr(0)},
	}

	result := calc.ComputeSalary(dec(3), doc, nil)

	assert.True(t, result.Breakdown.Base.Equal(dec(2000)), "base = %s", result.Breakdown.Base)
}

func TestComputeSalary_PercentRevenueBase(t *testing.T) {
	calc := NewSalaryCalculator()
	doc := compensation.SchemeDocument{
		Base: &compensation.RawBase{Type: strPtr("percent_revenue"), Percent: decPtr(5)},
	}
	metrics := compensation.PeriodMetrics{compensation.MetricTotalRevenue: dec(100000)}

	result := calc.ComputeSalary(decimal.Zero, doc, metrics)

	assert.True(t, result.Breakdown.Base.Equal(dec(5000)), "base = %s", result.Breakdown.Base)
}

func TestComputeSalary_UnknownBaseTypePaysZero(t *testing.T) {
	calc := NewSalaryCalculator()
	doc := compensation.SchemeDocument{
		Base: &compensation.RawBase{Type: strPtr("commission_v2"), Amount: decPtr(9999)},
	}

	result := calc.ComputeSalary(dec(8), doc, nil)

	assert.True(t, result.Total.IsZero(), "total = %s", result.Total)
}

func TestComputeSalary_NestedBaseWinsOverFlatFields(t *testing.T) {
	calc := NewSalaryCalculator()
	doc := compensation.SchemeDocument{
		Base:   &compensation.RawBase{Type: strPtr("hourly"), Amount: decPtr(200)},
		Type:   strPtr("fixed"),
		Amount: decPtr(5000),
	}

	result := calc.ComputeSalary(dec(4), doc, nil)

	assert.True(t, result.Breakdown.Base.Equal(dec(800)), "base = %s", result.Breakdown.Base)
}

func TestComputeSalary_FlatFieldsServeAsFallback(t *testing.T) {
	calc := NewSalaryCalculator()
	doc := compensation.SchemeDocument{
		Type:   strPtr("fixed"),
		Amount: decPtr(2400),
	}

	// full_shift_hours unset on both shapes, defaults to 12
	result := calc.ComputeSalary(dec(6), doc, nil)

	assert.True(t, result.Breakdown.Base.Equal(dec(1200)), "base = %s", result.Breakdown.Base)
}

func TestComputeSalary_TieredBonusSelection(t *testing.T) {
	calc := NewSalaryCalculator()

	var rule compensation.BonusRule
	err := json.Unmarshal([]byte(`{
		"name": "revenue tier",
		"source": "total",
		"type": "tiered",
		"tiers": [
			{"from": 0, "to": 50000, "bonus": 0},
			{"from": 50000, "to": "∞", "bonus": 3000}
		]
	}`), &rule)
	require.NoError(t, err)

	doc := hourlyDoc(0)
	doc.Bonuses = []compensation.BonusRule{rule}

	t.Run("above threshold", func(t *testing.T) {
		metrics := compensation.PeriodMetrics{compensation.MetricTotalRevenue: dec(60000)}
		result := calc.ComputeSalary(decimal.Zero, doc, metrics)
		require.Len(t, result.Breakdown.Bonuses, 1)
		assert.True(t, result.Breakdown.Bonuses[0].Amount.Equal(dec(3000)))
		assert.True(t, result.Total.Equal(dec(3000)))
	})

	t.Run("below threshold hits the zero tier", func(t *testing.T) {
		metrics := compensation.PeriodMetrics{compensation.MetricTotalRevenue: dec(40000)}
		result := calc.ComputeSalary(decimal.Zero, doc, metrics)
		require.Len(t, result.Breakdown.Bonuses, 1)
		assert.True(t, result.Breakdown.Bonuses[0].Amount.IsZero())
	})

	t.Run("first matching tier wins on shared boundary", func(t *testing.T) {
		metrics := compensation.PeriodMetrics{compensation.MetricTotalRevenue: dec(50000)}
		result := calc.ComputeSalary(decimal.Zero, doc, metrics)
		require.Len(t, result.Breakdown.Bonuses, 1)
		assert.True(t, result.Breakdown.Bonuses[0].Amount.IsZero())
	})
}

func TestComputeSalary_ProgressivePercentHighestThresholdWins(t *testing.T) {
	calc := NewSalaryCalculator()
	doc := hourlyDoc(0)
	doc.Bonuses = []compensation.BonusRule{{
		Name:   "progressive",
		Source: "total",
		Type:   "progressive_percent",
		Thresholds: []compensation.Threshold{
			{From: dec(0), Percent: dec(2)},
			{From: dec(100000), Percent: dec(5)},
		},
	}}
	metrics := compensation.PeriodMetrics{compensation.MetricTotalRevenue: dec(150000)}

	result := calc.ComputeSalary(decimal.Zero, doc, metrics)

	require.Len(t, result.Breakdown.Bonuses, 1)
	assert.True(t, result.Breakdown.Bonuses[0].Amount.Equal(dec(7500)), "bonus = %s", result.Breakdown.Bonuses[0].Amount)
}

func TestComputeSalary_PenaltyAlwaysNegative(t *testing.T) {
	calc := NewSalaryCalculator()
	doc := hourlyDoc(100)
	doc.Bonuses = []compensation.BonusRule{{
		Name:   "till shortage",
		Type:   "penalty",
		Amount: decPtr(500),
	}}

	result := calc.ComputeSalary(dec(10), doc, compensation.PeriodMetrics{compensation.MetricTotalRevenue: dec(999999)})

	require.Len(t, result.Breakdown.Bonuses, 1)
	assert.True(t, result.Breakdown.Bonuses[0].Amount.Equal(dec(-500)))
	assert.True(t, result.Total.Equal(dec(500)), "total = %s", result.Total)
}

func TestComputeSalary_PercentRevenueBonusOnCashSource(t *testing.T) {
	calc := NewSalaryCalculator()
	doc := hourlyDoc(0)
	doc.Bonuses = []compensation.BonusRule{{
		Name:    "cash incentive",
		Source:  "cash",
		Type:    "percent_revenue",
		Percent: decPtr(2),
	}}
	metrics := compensation.PeriodMetrics{
		compensation.MetricRevenueCash: dec(30000),
		compensation.MetricRevenueCard: dec(70000),
	}

	result := calc.ComputeSalary(decimal.Zero, doc, metrics)

	require.Len(t, result.Breakdown.Bonuses, 1)
	assert.Equal(t, compensation.MetricRevenueCash, result.Breakdown.Bonuses[0].SourceKey)
	assert.True(t, result.Breakdown.Bonuses[0].Amount.Equal(dec(600)))
}

func TestComputeSalary_UnknownBonusTypeStaysInBreakdown(t *testing.T) {
	calc := NewSalaryCalculator()
	doc := hourlyDoc(150)
	doc.Bonuses = []compensation.BonusRule{
		{Name: "mystery", Source: "total", Type: "loyalty_points", Amount: decPtr(1000)},
		{Name: "fixed", Type: "fixed", Amount: decPtr(200)},
	}
	metrics := compensation.PeriodMetrics{compensation.MetricTotalRevenue: dec(50000)}

	result := calc.ComputeSalary(dec(8), doc, metrics)

	require.Len(t, result.Breakdown.Bonuses, 2)
	assert.Equal(t, "mystery", result.Breakdown.Bonuses[0].Name)
	assert.True(t, result.Breakdown.Bonuses[0].Amount.IsZero())
	assert.True(t, result.Breakdown.Bonuses[0].SourceValue.Equal(dec(50000)))
	assert.True(t, result.Breakdown.Bonuses[1].Amount.Equal(dec(200)))
	assert.True(t, result.Total.Equal(dec(1400)), "total = %s", result.Total)
}

func TestComputeSalary_AbsentMetricReadsAsZero(t *testing.T) {
	calc := NewSalaryCalculator()
	doc := hourlyDoc(0)
	doc.Bonuses = []compensation.BonusRule{{
		Name:    "drinks upsell",
		Source:  "drinks_sold",
		Type:    "percent_revenue",
		Percent: decPtr(10),
	}}

	result := calc.ComputeSalary(decimal.Zero, doc, compensation.PeriodMetrics{})

	require.Len(t, result.Breakdown.Bonuses, 1)
	assert.Equal(t, "drinks_sold", result.Breakdown.Bonuses[0].SourceKey)
	assert.True(t, result.Breakdown.Bonuses[0].Amount.IsZero())
	assert.True(t, result.Breakdown.Bonuses[0].SourceValue.IsZero())
}

func TestComputeSalary_StringMetricsAreCoerced(t *testing.T) {
	calc := NewSalaryCalculator()
	metrics := compensation.ParseMetrics(map[string]interface{}{
		"drinks_sold": "1500.50",
		"note":        "night shift",
		"visitors":    float64(42),
	})

	assert.True(t, metrics.Value("drinks_sold").Equal(dec(1500.50)))
	assert.True(t, metrics.Value("visitors").Equal(dec(42)))
	assert.True(t, metrics.Value("note").IsZero())

	doc := hourlyDoc(0)
	doc.Bonuses = []compensation.BonusRule{{
		Name:    "drinks",
		Source:  "drinks_sold",
		Type:    "percent_revenue",
		Percent: decPtr(10),
	}}
	result := calc.ComputeSalary(decimal.Zero, doc, metrics)
	require.Len(t, result.Breakdown.Bonuses, 1)
	assert.True(t, result.Breakdown.Bonuses[0].Amount.Equal(dec(150.05)))
}

func TestComputeSalary_Idempotent(t *testing.T) {
	calc := NewSalaryCalculator()
	doc := compensation.SchemeDocument{
		Base: &compensation.RawBase{Type: strPtr("percent_revenue"), Percent: decPtr(7.5)},
		Bonuses: []compensation.BonusRule{
			{Name: "fixed", Type: "fixed", Amount: decPtr(333.33)},
			{Name: "card", Source: "card", Type: "percent_revenue", Percent: decPtr(1.25)},
			{Name: "fine", Type: "penalty", Amount: decPtr(120)},
		},
	}
	metrics := compensation.PeriodMetrics{
		compensation.MetricTotalRevenue: dec(123456.78),
		compensation.MetricRevenueCard:  dec(98765.43),
	}

	first := calc.ComputeSalary(dec(11.5), doc, metrics)
	second := calc.ComputeSalary(dec(11.5), doc, metrics)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestComputeSalary_TotalRoundedOnce(t *testing.T) {
	calc := NewSalaryCalculator()
	doc := hourlyDoc(0)
	doc.Bonuses = []compensation.BonusRule{
		{Name: "a", Source: "total", Type: "percent_revenue", Percent: decPtr(0.333)},
		{Name: "b", Source: "total", Type: "percent_revenue", Percent: decPtr(0.333)},
	}
	metrics := compensation.PeriodMetrics{compensation.MetricTotalRevenue: dec(1001)}

	result := calc.ComputeSalary(decimal.Zero, doc, metrics)

	// Each bonus is 3.33333; rounded per-line that is 3.33, but the total
	// sums full precision first: 6.66666 -> 6.67.
	assert.True(t, result.Breakdown.Bonuses[0].Amount.Equal(dec(3.33)))
	assert.True(t, result.Total.Equal(dec(6.67)), "total = %s", result.Total)
}

func TestSchemeDocument_UnmarshalLegacyFlatShape(t *testing.T) {
	var doc compensation.SchemeDocument
	err := json.Unmarshal([]byte(`{
		"type": "hourly",
		"amount": "175",
		"bonuses": [{"name": "fixed", "type": "fixed", "amount": 100}]
	}`), &doc)
	require.NoError(t, err)

	base := doc.NormalizeBase()
	assert.Equal(t, compensation.BaseHourly, base.Type)
	assert.True(t, base.Amount.Equal(dec(175)))
	assert.True(t, base.FullShiftHours.Equal(dec(12)))
}
