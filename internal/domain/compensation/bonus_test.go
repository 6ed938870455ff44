package compensation

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTier_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name      string
		payload   string
		from      string
		unbounded bool
		bonus     string
	}{
		{"numeric bounds with bonus", `{"from": 0, "to": 50000, "bonus": 1000}`, "0", false, "1000"},
		{"infinity symbol upper bound", `{"from": 50000, "to": "∞", "bonus": 3000}`, "50000", true, "3000"},
		{"null upper bound", `{"from": 50000, "to": null, "bonus": 3000}`, "50000", true, "3000"},
		{"missing upper bound", `{"from": 50000, "bonus": 3000}`, "50000", true, "3000"},
		{"amount instead of bonus", `{"from": 0, "to": 100, "amount": 250}`, "0", false, "250"},
		{"string numeric bounds", `{"from": "1000.5", "to": "2000", "bonus": "10"}`, "1000.5", false, "10"},
		{"missing payout defaults to zero", `{"from": 0, "to": 100}`, "0", false, "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var tier Tier
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &tier))

			from, _ := decimal.NewFromString(tc.from)
			bonus, _ := decimal.NewFromString(tc.bonus)
			assert.True(t, tier.From.Equal(from), "from = %s", tier.From)
			assert.Equal(t, tc.unbounded, tier.To == nil)
			assert.True(t, tier.Bonus.Equal(bonus), "bonus = %s", tier.Bonus)
		})
	}
}

func TestTier_ContainsInclusiveBounds(t *testing.T) {
	to := decimal.NewFromInt(50000)
	tier := Tier{From: decimal.NewFromInt(10000), To: &to}

	assert.True(t, tier.Contains(decimal.NewFromInt(10000)))
	assert.True(t, tier.Contains(decimal.NewFromInt(50000)))
	assert.True(t, tier.Contains(decimal.NewFromInt(30000)))
	assert.False(t, tier.Contains(decimal.NewFromInt(9999)))
	assert.False(t, tier.Contains(decimal.NewFromInt(50001)))
}

func TestTier_ContainsUnbounded(t *testing.T) {
	tier := Tier{From: decimal.NewFromInt(50000)}

	assert.True(t, tier.Contains(decimal.NewFromInt(50000)))
	assert.True(t, tier.Contains(decimal.NewFromInt(10000000)))
	assert.False(t, tier.Contains(decimal.NewFromInt(49999)))
}

func TestBonusRule_MissingNumericFieldsDefaultToZero(t *testing.T) {
	var rule BonusRule
	require.NoError(t, json.Unmarshal([]byte(`{"name": "bare", "type": "fixed"}`), &rule))

	assert.True(t, rule.AmountOrZero().IsZero())
	assert.True(t, rule.PercentOrZero().IsZero())
}
