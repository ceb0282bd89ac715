package entity

import (
	"time"

	"parivar/internal/api/expense"
	"parivar/pkg/nlp"
)

type Expense struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	FamilyID    string    `json:"family_id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	UserName    string    `json:"user_name,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e *Expense) Validate() error {
	if e.Amount <= 0 {
		return expense.ErrInvalidAmount
	}

	if !nlp.IsValidCategory(e.Category) {
		return expense.ErrInvalidCategory
	}

	return nil
}
