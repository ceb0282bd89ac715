package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExpenseEntry(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"spent verb", "spent 500 on groceries", true},
		{"paid verb", "paid the plumber", true},
		{"currency symbol", "₹200 chai", true},
		{"bare digits", "450 lunch", true},
		{"question word", "what did I buy yesterday", false},
		{"question mark", "groceries 500?", false},
		{"show is a question marker", "show my expenses", false},
		{"no signal at all", "hello there", false},
		{"malayalam question", "എത്ര ചെലവായി", false},
		{"hindi question", "कितना खर्च हुआ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExpenseEntry(tt.text))
		})
	}
}

// Question markers win even when the text carries digits and expense verbs.
func TestIsExpenseEntryQuestionShortCircuit(t *testing.T) {
	assert.False(t, IsExpenseEntry("how much did I spend on 5 items"))
	assert.False(t, IsExpenseEntry("tell me if I paid 300"))
}
