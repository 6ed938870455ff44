package compensation

import "github.com/shopspring/decimal"

// BonusResult is one bonus rule's line in the breakdown. Rules that did not
// fire still appear with a zero amount so the record shows the bonus was
// configured but produced nothing.
type BonusResult struct {
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	SourceKey   string          `json:"source_key"`
	SourceValue decimal.Decimal `json:"source_value"`
}

// Breakdown itemizes a computed salary. Base and the bonus amounts are
// rounded to 2 decimal places; Total is the full-precision sum rounded once.
type Breakdown struct {
	Base    decimal.Decimal `json:"base"`
	Bonuses []BonusResult   `json:"bonuses"`
	Total   decimal.Decimal `json:"total"`
}

// SalaryResult is the evaluator's output: a plain numeric amount plus the
// audit breakdown. Callers persist it verbatim.
type SalaryResult struct {
	Total     decimal.Decimal `json:"total"`
	Breakdown Breakdown       `json:"breakdown"`
}
