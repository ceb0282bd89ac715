package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeIntentTypes(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    IntentType
	}{
		{"today", "what did we spend today", IntentViewTodayExpenses},
		{"recent", "show recent expenses", IntentViewRecentExpenses},
		{"breakdown", "give me the category breakdown", IntentCategoryBreakdown},
		{"total", "total spending this month", IntentTotalSpending},
		{"budget status", "what is my budget status", IntentBudgetStatus},
		{"prediction", "predict my spending", IntentBudgetPrediction},
		{"trends", "show spending trends", IntentSpendingTrends},
		{"top", "top expenses this week", IntentTopExpenses},
		{"average", "average daily spending", IntentAverageSpending},
		{"compare", "compare this month vs last month", IntentComparePeriods},
		{"category word", "food expenses", IntentCategorySpecific},
		{"add expense", "spent 300 on groceries", IntentAddExpense},
		{"unknown", "hello", IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyzeIntent(tt.message).Type)
		})
	}
}

func TestAnalyzeIntentRecentDays(t *testing.T) {
	assert.Equal(t, 14, AnalyzeIntent("expenses for the last 14 days").Days)
	assert.Equal(t, 14, AnalyzeIntent("expenses for the last 2 weeks").Days)
	assert.Equal(t, 7, AnalyzeIntent("recent expenses").Days)
	assert.Equal(t, 3, AnalyzeIntent("past 3 days").Days)
}

func TestAnalyzeIntentCategorySpecific(t *testing.T) {
	intent := AnalyzeIntent("how much on Transport this week")
	require.Equal(t, IntentCategorySpecific, intent.Type)
	assert.Equal(t, "transport", intent.Category)
	assert.Equal(t, "week", intent.Period)
}

// A category name anywhere in the message wins over the trailing add-expense
// rule, so "500 for food" reads as a category query. The add-expense rule only
// fires for non-category words.
func TestAnalyzeIntentCategoryBeatsAddExpense(t *testing.T) {
	intent := AnalyzeIntent("500 for food")
	assert.Equal(t, IntentCategorySpecific, intent.Type)
	assert.Equal(t, "food", intent.Category)
}

func TestAnalyzeIntentAddExpense(t *testing.T) {
	intent := AnalyzeIntent("spent 300 on groceries")
	require.Equal(t, IntentAddExpense, intent.Type)
	require.NotNil(t, intent.Data)
	assert.Equal(t, float64(300), intent.Data.Amount)
	assert.Equal(t, "groceries", intent.Data.Category)
	assert.Equal(t, "spent 300 on groceries", intent.Data.Description)
}

func TestAnalyzeIntentOrderIsStable(t *testing.T) {
	// "food breakdown" carries both a category name and a breakdown marker.
	// The breakdown rule sits earlier, so it wins.
	assert.Equal(t, IntentCategoryBreakdown, AnalyzeIntent("food breakdown please").Type)

	// "today" beats everything, including recency markers.
	assert.Equal(t, IntentViewTodayExpenses, AnalyzeIntent("recent expenses today").Type)
}

func TestExtractPeriod(t *testing.T) {
	assert.Equal(t, "today", ExtractPeriod("spent today"))
	assert.Equal(t, "week", ExtractPeriod("this week"))
	assert.Equal(t, "week", ExtractPeriod("last 7 days"))
	assert.Equal(t, "month", ExtractPeriod("this month"))
	assert.Equal(t, "year", ExtractPeriod("this year"))
	assert.Equal(t, "month", ExtractPeriod("overall"))
}
