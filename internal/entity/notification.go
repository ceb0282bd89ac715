package entity

import "time"

type Notification struct {
	ID          string    `json:"id"`
	FamilyID    string    `json:"family_id"`
	UserID      string    `json:"user_id"`
	RecipientID string    `json:"recipient_id"`
	UserName    string    `json:"user_name,omitempty"`
	UserEmail   string    `json:"user_email,omitempty"`
	Message     string    `json:"message"`
	ExpenseID   string    `json:"expense_id,omitempty"`
	Date        time.Time `json:"date"`
	Seen        bool      `json:"seen"`
}
