package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"english food", "lunch at the restaurant", CategoryFood},
		{"english transport", "uber to the airport", CategoryTransport},
		{"english bills", "paid the electricity bill", CategoryBills},
		{"english health", "medicine from the pharmacy", CategoryHealth},
		{"english education", "bought a book for the exam", CategoryEducation},
		{"hindi food", "खाना 200", CategoryFood},
		{"malayalam food", "ഭക്ഷണത്തിന് 500", CategoryFood},
		{"tamil transport", "பயணம் 150", CategoryTransport},
		{"no keywords", "xyz 10", CategoryOther},
		{"empty", "", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.text))
		})
	}
}

// Matching is substring containment, so "bus" inside "bustling" still votes
// for Transport. Callers live with this tradeoff for multilingual coverage.
func TestCategorizeSubstringMatching(t *testing.T) {
	assert.Equal(t, CategoryTransport, Categorize("the bustling market"))
}

func TestCategorizeMajorityWins(t *testing.T) {
	// Two food hits beat one transport hit.
	assert.Equal(t, CategoryFood, Categorize("coffee and snacks after the bus"))
}

func TestCategorizeTieKeepsEarlierCategory(t *testing.T) {
	// One food hit and one transport hit. Food is earlier in table order.
	assert.Equal(t, CategoryFood, Categorize("pizza then taxi"))
}

func TestIsValidCategory(t *testing.T) {
	for _, category := range categories() {
		assert.True(t, IsValidCategory(category), category)
	}
	assert.False(t, IsValidCategory("food"))
	assert.False(t, IsValidCategory("Groceries"))
}
