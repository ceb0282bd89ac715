package expenseService

import (
	"fmt"
	"math"

	"parivar/internal/entity"
	"parivar/pkg/nlp"
)

// adviceFor looks at total food spending and nudges the family when it
// crosses 5000.
func adviceFor(expenses []entity.Expense) string {
	var foodTotal float64
	for _, exp := range expenses {
		if exp.Category == nlp.CategoryFood {
			foodTotal += exp.Amount
		}
	}

	if foodTotal > 5000 {
		return "Consider reducing dining expenses this month."
	}
	return "Spending looks balanced."
}

// forecastFor projects next week's spending from the average expense amount.
func forecastFor(expenses []entity.Expense) string {
	if len(expenses) == 0 {
		return "No data to forecast."
	}

	var total float64
	for _, exp := range expenses {
		total += exp.Amount
	}
	avg := total / float64(len(expenses))

	return fmt.Sprintf("Expected spending next week: ₹%d", int64(math.Round(avg*7)))
}
