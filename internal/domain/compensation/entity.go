package compensation

import (
	"time"

	"github.com/shopspring/decimal"
)

// BaseType enum for the normalized base-pay rule
type BaseType string

const (
	BaseHourly         BaseType = "hourly"
	BaseFixed          BaseType = "fixed"
	BasePerShift       BaseType = "per_shift"
	BasePercentRevenue BaseType = "percent_revenue"
	BaseUnknown        BaseType = "unknown"
)

// DefaultFullShiftHours applies when neither the nested base nor the legacy
// flat fields specify full_shift_hours.
const DefaultFullShiftHours = 12

// CompensationScheme is a versioned pay-rule configuration. Rows are immutable
// once written: editing a scheme inserts the next version, so a shift closed
// against version N always reproduces the same salary.
type CompensationScheme struct {
	ID        string
	ClubID    string
	Name      string
	Version   int
	Document  SchemeDocument
	CreatedAt time.Time
}

// RawBase is the nested base shape of a scheme document.
type RawBase struct {
	Type           *string          `json:"type,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	Percent        *decimal.Decimal `json:"percent,omitempty"`
	FullShiftHours *decimal.Decimal `json:"full_shift_hours,omitempty"`
}

// SchemeDocument is the stored JSON shape of a scheme. Older documents carry
// type/amount/percent/full_shift_hours directly on the root; newer ones nest
// them under base. NormalizeBase resolves the two shapes.
type SchemeDocument struct {
	Base *RawBase `json:"base,omitempty"`

	// Legacy flat fields, superseded by Base when both are present.
	Type           *string          `json:"type,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	Percent        *decimal.Decimal `json:"percent,omitempty"`
	FullShiftHours *decimal.Decimal `json:"full_shift_hours,omitempty"`

	Bonuses []BonusRule `json:"bonuses,omitempty"`
}

// BaseRule is the normalized, tagged base-pay rule the evaluator works with.
type BaseRule struct {
	Type           BaseType
	Amount         decimal.Decimal
	Percent        decimal.Decimal
	FullShiftHours decimal.Decimal
}

// NormalizeBase resolves the document's base-pay fields into a BaseRule,
// preferring nested base.* and falling back to the legacy flat fields.
// Unrecognized type strings yield BaseUnknown, which pays a zero base.
func (d SchemeDocument) NormalizeBase() BaseRule {
	typ := pickString(d.nestedType(), d.Type)

	rule := BaseRule{
		Type:           parseBaseType(typ),
		Amount:         pickDecimal(d.nestedAmount(), d.Amount),
		Percent:        pickDecimal(d.nestedPercent(), d.Percent),
		FullShiftHours: decimal.NewFromInt(DefaultFullShiftHours),
	}

	if hours := pickDecimalPtr(d.nestedFullShiftHours(), d.FullShiftHours); hours != nil {
		rule.FullShiftHours = *hours
	}

	return rule
}

func (d SchemeDocument) nestedType() *string {
	if d.Base == nil {
		return nil
	}
	return d.Base.Type
}

func (d SchemeDocument) nestedAmount() *decimal.Decimal {
	if d.Base == nil {
		return nil
	}
	return d.Base.Amount
}

func (d SchemeDocument) nestedPercent() *decimal.Decimal {
	if d.Base == nil {
		return nil
	}
	return d.Base.Percent
}

func (d SchemeDocument) nestedFullShiftHours() *decimal.Decimal {
	if d.Base == nil {
		return nil
	}
	return d.Base.FullShiftHours
}

func parseBaseType(s string) BaseType {
	switch BaseType(s) {
	case BaseHourly, BaseFixed, BasePerShift, BasePercentRevenue:
		return BaseType(s)
	default:
		return BaseUnknown
	}
}

func pickString(nested, flat *string) string {
	if nested != nil {
		return *nested
	}
	if flat != nil {
		return *flat
	}
	return ""
}

func pickDecimal(nested, flat *decimal.Decimal) decimal.Decimal {
	if v := pickDecimalPtr(nested, flat); v != nil {
		return *v
	}
	return decimal.Zero
}

func pickDecimalPtr(nested, flat *decimal.Decimal) *decimal.Decimal {
	if nested != nil {
		return nested
	}
	return flat
}
