package ledger

import (
	"context"
	"time"

	"expense-tracko-api/internal/models"
)

// Store is the record-store surface the ledger needs. Every query is scoped to
// a single owning user; implementations must never return another user's rows.
type Store interface {
	IncomesBetween(ctx context.Context, userID uint, start, end time.Time) ([]models.Income, error)
	ExpensesBetween(ctx context.Context, userID uint, start, end time.Time) ([]models.Expense, error)
	IncomesAll(ctx context.Context, userID uint) ([]models.Income, error)
	ExpensesAll(ctx context.Context, userID uint) ([]models.Expense, error)
	IncomeByID(ctx context.Context, userID, id uint) (*models.Income, error)
	CreateExpense(ctx context.Context, e *models.Expense) error
	DeleteIncome(ctx context.Context, userID, id uint) error
}

// SumIncomes returns the sum of the records' amounts.
func SumIncomes(incomes []models.Income) float64 {
	var total float64
	for _, inc := range incomes {
		total += inc.Amount
	}
	return total
}

// SumExpenses returns the sum of the records' amounts.
func SumExpenses(expenses []models.Expense) float64 {
	var total float64
	for _, exp := range expenses {
		total += exp.Amount
	}
	return total
}
