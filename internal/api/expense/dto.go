package expense

import "time"

type CreateExpenseRequest struct {
	Description string  `json:"description" validate:"required,min=1,max=500"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"omitempty"`
	Lang        string  `json:"lang" validate:"omitempty,min=2,max=5"`
}

type UpdateExpenseRequest struct {
	Description string  `json:"description" validate:"omitempty,min=1,max=500"`
	Amount      float64 `json:"amount" validate:"omitempty,gt=0"`
	Category    string  `json:"category" validate:"omitempty"`
}

type AddExpenseResponse struct {
	Expense  interface{} `json:"expense"`
	Total    float64     `json:"total"`
	Advice   string      `json:"advice"`
	Forecast string      `json:"forecast"`
	Message  string      `json:"message"`
}

// Aggregate summarizes a window of family spending.
type Aggregate struct {
	Total   float64
	Count   int
	Average float64
}

// CategoryTotal is one row of a per-category spending breakdown.
type CategoryTotal struct {
	Category string
	Total    float64
	Count    int
}

// DailyTotal is family spending for a single calendar day.
type DailyTotal struct {
	Day   time.Time
	Total float64
}
