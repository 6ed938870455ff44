package compensation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/clubops/clubops-backend-go/internal/domain/compensation"
)

var oneHundred = decimal.NewFromInt(100)

// SalaryCalculator evaluates a compensation scheme over one period's metrics.
// It is stateless and side-effect free; callers persist the result. Malformed
// configuration never aborts the computation: a bad base type or bonus rule
// contributes zero so the rest of the salary is still payable.
type SalaryCalculator struct{}

func NewSalaryCalculator() *SalaryCalculator {
	return &SalaryCalculator{}
}

// ComputeSalary returns total pay and an itemized breakdown for the period.
// Base and per-bonus amounts are rounded to 2 decimal places in the breakdown;
// the total is the full-precision sum rounded once at the end.
func (c *SalaryCalculator) ComputeSalary(hoursWorked decimal.Decimal, doc compensation.SchemeDocument, metrics compensation.PeriodMetrics) compensation.SalaryResult {
	base := c.computeBase(hoursWorked, doc.NormalizeBase(), metrics)
	total := base

	bonuses := make([]compensation.BonusResult, 0, len(doc.Bonuses))
	for _, rule := range doc.Bonuses {
		sourceKey := compensation.ResolveSource(rule.Source)
		sourceValue := metrics.Value(sourceKey)
		amount := c.computeBonus(rule, sourceValue)

		bonuses = append(bonuses, compensation.BonusResult{
			Name:        rule.Name,
			Amount:      amount.Round(2),
			SourceKey:   sourceKey,
			SourceValue: sourceValue,
		})
		total = total.Add(amount)
	}

	return compensation.SalaryResult{
		Total: total.Round(2),
		Breakdown: compensation.Breakdown{
			Base:    base.Round(2),
			Bonuses: bonuses,
			Total:   total.Round(2),
		},
	}
}

func (c *SalaryCalculator) computeBase(hoursWorked decimal.Decimal, base compensation.BaseRule, metrics compensation.PeriodMetrics) decimal.Decimal {
	switch base.Type {
	case compensation.BaseHourly:
		return base.Amount.Mul(hoursWorked)
	case compensation.BaseFixed, compensation.BasePerShift:
		// A zero full-shift setting means the threshold is unreachable; pay
		// the full amount instead of dividing by zero.
		if base.FullShiftHours.IsZero() || hoursWorked.GreaterThanOrEqual(base.FullShiftHours) {
			return base.Amount
		}
		return base.Amount.Mul(hoursWorked).Div(base.FullShiftHours)
	case compensation.BasePercentRevenue:
		return metrics.Value(compensation.MetricTotalRevenue).Mul(base.Percent).Div(oneHundred)
	default:
		return decimal.Zero
	}
}

func (c *SalaryCalculator) computeBonus(rule compensation.BonusRule, sourceValue decimal.Decimal) decimal.Decimal {
	switch compensation.BonusType(rule.Type) {
	case compensation.BonusFixed:
		return rule.AmountOrZero()
	case compensation.BonusPercentRevenue:
		return sourceValue.Mul(rule.PercentOrZero()).Div(oneHundred)
	case compensation.BonusTiered:
		return c.tieredBonus(rule.Tiers, sourceValue)
	case compensation.BonusProgressivePercent:
		return c.progressiveBonus(rule.Thresholds, sourceValue)
	case compensation.BonusPenalty:
		return rule.AmountOrZero().Neg()
	default:
		return decimal.Zero
	}
}

// tieredBonus pays the first tier, in list order, whose interval contains the
// source value.
func (c *SalaryCalculator) tieredBonus(tiers []compensation.Tier, sourceValue decimal.Decimal) decimal.Decimal {
	for _, tier := range tiers {
		if tier.Contains(sourceValue) {
			return tier.Bonus
		}
	}
	return decimal.Zero
}

// progressiveBonus applies the percent of the highest threshold the source
// value has reached. Thresholds are re-sorted descending so a stored list in
// any order still resolves to the highest qualifying step.
func (c *SalaryCalculator) progressiveBonus(thresholds []compensation.Threshold, sourceValue decimal.Decimal) decimal.Decimal {
	sorted := make([]compensation.Threshold, len(thresholds))
	copy(sorted, thresholds)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].From.GreaterThan(sorted[j].From)
	})

	for _, threshold := range sorted {
		if threshold.From.LessThanOrEqual(sourceValue) {
			return sourceValue.Mul(threshold.Percent).Div(oneHundred)
		}
	}
	return decimal.Zero
}
