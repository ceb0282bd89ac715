package entity

import (
	"time"

	"parivar/internal/api/budget"
)

type BudgetPeriod string

const (
	BudgetPeriodDaily   BudgetPeriod = "daily"
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
)

func IsValidBudgetPeriod(period string) bool {
	switch BudgetPeriod(period) {
	case BudgetPeriodDaily, BudgetPeriodWeekly, BudgetPeriodMonthly:
		return true
	default:
		return false
	}
}

type Budget struct {
	ID          string    `json:"id"`
	FamilyID    string    `json:"family_id"`
	LimitAmount float64   `json:"limit_amount"`
	Period      string    `json:"period"`
	CreatedAt   time.Time `json:"created_at"`
}

func (b *Budget) Validate() error {
	if b.LimitAmount <= 0 {
		return budget.ErrInvalidLimit
	}

	if !IsValidBudgetPeriod(b.Period) {
		return budget.ErrInvalidPeriod
	}

	return nil
}
