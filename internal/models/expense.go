package models

import (
	"time"
)

// Payment modes accepted for an expense.
const (
	PaymentCash       = "Cash"
	PaymentUPI        = "UPI"
	PaymentCard       = "Card"
	PaymentNetBanking = "NetBanking"
)

// DefaultExpenseCategory is applied when a draft carries no category.
const DefaultExpenseCategory = "General"

// DefaultPaymentMode is applied when a draft carries no payment mode.
const DefaultPaymentMode = PaymentUPI

type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index" json:"user_id"`
	Title       string    `json:"title"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	PaymentMode string    `json:"payment_mode"`
	IsRecurring bool      `json:"is_recurring"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidPaymentMode reports whether s is one of the accepted payment modes.
func ValidPaymentMode(s string) bool {
	switch s {
	case PaymentCash, PaymentUPI, PaymentCard, PaymentNetBanking:
		return true
	}
	return false
}
