package compensation

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Well-known metric keys
const (
	MetricTotalRevenue = "total_revenue"
	MetricRevenueCash  = "revenue_cash"
	MetricRevenueCard  = "revenue_card"
)

// PeriodMetrics maps metric keys to numeric values for one shift or pay
// period. Absent keys read as zero.
type PeriodMetrics map[string]decimal.Decimal

// Value returns the metric for key, zero when absent.
func (m PeriodMetrics) Value(key string) decimal.Decimal {
	if v, ok := m[key]; ok {
		return v
	}
	return decimal.Zero
}

// ResolveSource maps a bonus rule's source to a metric key. The total/cash/card
// aliases map to the revenue metrics; anything else is looked up directly.
func ResolveSource(source string) string {
	switch source {
	case "total":
		return MetricTotalRevenue
	case "cash":
		return MetricRevenueCash
	case "card":
		return MetricRevenueCard
	default:
		return source
	}
}

// ParseMetrics coerces free-form report data into PeriodMetrics. Values may
// arrive as JSON numbers or numeric strings; non-numeric values are dropped,
// which reads back as zero.
func ParseMetrics(raw map[string]interface{}) PeriodMetrics {
	metrics := make(PeriodMetrics, len(raw))
	for key, value := range raw {
		if d, ok := coerceDecimal(value); ok {
			metrics[key] = d
		}
	}
	return metrics
}

func coerceDecimal(value interface{}) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(v)
		return d, err == nil
	case decimal.Decimal:
		return v, true
	default:
		return decimal.Zero, false
	}
}
