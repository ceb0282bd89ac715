package nlp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"plain integer", "spent 500 on lunch", 500},
		{"currency symbol", "₹250 for auto", 250},
		{"rs prefix", "rs 120 coffee", 120},
		{"rs with dot", "Rs. 99 recharge", 99},
		{"rupees word", "paid 45 rupees", 45},
		{"grouped thousands", "bought a phone for 12,500.00", 12500},
		{"grouped without decimals", "rent 15,000", 15000},
		{"decimal amount", "snacks 99.50", 99.5},
		{"no number", "had lunch with family", 0},
		{"zero is not an amount", "0 spent", 0},
		{"malayalam currency word", "500 രൂപ ഭക്ഷണം", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractAmount(tt.text))
		})
	}
}

// European-formatted input is parsed by the grouped-thousands pattern first,
// which stops at the decimal group. This matches the documented pattern order.
func TestExtractAmountEuropeanFormatQuirk(t *testing.T) {
	assert.Equal(t, 1.23, ExtractAmount("paid 1.234,56 for the sofa"))
}

func TestSimpleAmount(t *testing.T) {
	assert.Equal(t, 99.5, simpleAmount("coffee 99.5"))
	// The comma is stripped as a thousands separator, so "15,5" reads as 155.
	assert.Equal(t, float64(155), simpleAmount("15,5 groceries"))
	assert.Equal(t, float64(0), simpleAmount("no digits here"))
}

func TestExtractDateRelativeWords(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

	got, ok := ExtractDate("spent 100 today", now)
	require.True(t, ok)
	assert.Equal(t, now, got)

	got, ok = ExtractDate("bought groceries yesterday", now)
	require.True(t, ok)
	assert.Equal(t, now.AddDate(0, 0, -1), got)

	got, ok = ExtractDate("ഇന്നലെ 200 ചെലവായി", now)
	require.True(t, ok)
	assert.Equal(t, now.AddDate(0, 0, -1), got)
}

func TestExtractDateNumeric(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

	got, ok := ExtractDate("paid rent on 5/3/2025", now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), got)

	got, ok = ExtractDate("bill 12-01-24", now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC), got)
}

func TestExtractDateRejectsImpossible(t *testing.T) {
	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	_, ok := ExtractDate("paid on 32/1/2025", now)
	assert.False(t, ok)

	_, ok = ExtractDate("paid on 10/13/2025", now)
	assert.False(t, ok)

	_, ok = ExtractDate("paid on 30/2/2025", now)
	assert.False(t, ok)

	_, ok = ExtractDate("no date mentioned", now)
	assert.False(t, ok)
}
