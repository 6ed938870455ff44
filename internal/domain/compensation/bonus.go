package compensation

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// BonusType enum. Unknown types are kept as-is and score zero.
type BonusType string

const (
	BonusFixed              BonusType = "fixed"
	BonusPercentRevenue     BonusType = "percent_revenue"
	BonusTiered             BonusType = "tiered"
	BonusProgressivePercent BonusType = "progressive_percent"
	BonusPenalty            BonusType = "penalty"
)

// BonusRule is one entry of a scheme's bonus list. Missing numeric fields
// default to zero; an unrecognized Type contributes zero but still shows up
// in the breakdown.
type BonusRule struct {
	Name       string           `json:"name"`
	Source     string           `json:"source,omitempty"`
	Type       string           `json:"type"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Percent    *decimal.Decimal `json:"percent,omitempty"`
	Tiers      []Tier           `json:"tiers,omitempty"`
	Thresholds []Threshold      `json:"thresholds,omitempty"`
}

// AmountOrZero returns the rule's fixed amount, zero when unset.
func (b BonusRule) AmountOrZero() decimal.Decimal {
	if b.Amount == nil {
		return decimal.Zero
	}
	return *b.Amount
}

// PercentOrZero returns the rule's percent, zero when unset.
func (b BonusRule) PercentOrZero() decimal.Decimal {
	if b.Percent == nil {
		return decimal.Zero
	}
	return *b.Percent
}

// Tier is one [from, to] interval of a tiered bonus, inclusive on both ends.
// A nil To is unbounded; the stored form may spell that as null or "∞".
// The payout may appear under either "bonus" or "amount".
type Tier struct {
	From  decimal.Decimal
	To    *decimal.Decimal
	Bonus decimal.Decimal
}

func (t *Tier) UnmarshalJSON(data []byte) error {
	var raw struct {
		From   json.RawMessage  `json:"from"`
		To     json.RawMessage  `json:"to"`
		Bonus  *decimal.Decimal `json:"bonus"`
		Amount *decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	t.From = parseBoundOrZero(raw.From)
	t.To = parseUpperBound(raw.To)

	switch {
	case raw.Bonus != nil:
		t.Bonus = *raw.Bonus
	case raw.Amount != nil:
		t.Bonus = *raw.Amount
	default:
		t.Bonus = decimal.Zero
	}
	return nil
}

func (t Tier) MarshalJSON() ([]byte, error) {
	out := struct {
		From  decimal.Decimal  `json:"from"`
		To    *decimal.Decimal `json:"to"`
		Bonus decimal.Decimal  `json:"bonus"`
	}{From: t.From, To: t.To, Bonus: t.Bonus}
	return json.Marshal(out)
}

// Contains reports whether v falls inside the tier, inclusive on both ends.
func (t Tier) Contains(v decimal.Decimal) bool {
	if v.LessThan(t.From) {
		return false
	}
	if t.To == nil {
		return true
	}
	return v.LessThanOrEqual(*t.To)
}

// Threshold is one step of a progressive_percent bonus: the percent applies
// once the source value reaches From.
type Threshold struct {
	From    decimal.Decimal `json:"from"`
	Percent decimal.Decimal `json:"percent"`
}

// parseBoundOrZero reads a tier bound that may be a JSON number or a numeric
// string; anything else degrades to zero.
func parseBoundOrZero(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err != nil {
		return decimal.Zero
	}
	return d
}

// parseUpperBound reads a tier's upper bound; null, "∞", and anything
// non-numeric all mean unbounded.
func parseUpperBound(raw json.RawMessage) *decimal.Decimal {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil
	}
	return &d
}
