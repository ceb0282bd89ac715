package expenseService

import (
	"testing"

	"parivar/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestAdviceForHighFoodSpending(t *testing.T) {
	expenses := []entity.Expense{
		{Category: "Food", Amount: 3000},
		{Category: "Food", Amount: 2500},
		{Category: "Transport", Amount: 10000},
	}

	assert.Equal(t, "Consider reducing dining expenses this month.", adviceFor(expenses))
}

func TestAdviceForBalancedSpending(t *testing.T) {
	expenses := []entity.Expense{
		{Category: "Food", Amount: 5000},
		{Category: "Shopping", Amount: 8000},
	}

	assert.Equal(t, "Spending looks balanced.", adviceFor(expenses))
}

func TestForecastForNoData(t *testing.T) {
	assert.Equal(t, "No data to forecast.", forecastFor(nil))
}

func TestForecastForAveragesAndRounds(t *testing.T) {
	expenses := []entity.Expense{
		{Amount: 100},
		{Amount: 200},
		{Amount: 350},
	}

	// avg 216.67, times 7 rounds to 1517
	assert.Equal(t, "Expected spending next week: ₹1517", forecastFor(expenses))
}
