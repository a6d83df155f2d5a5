package ledger

import (
	"context"
	"fmt"
)

// FinanceProfile is the all-time digest of a user's records, used as grounding
// context for the chat endpoint.
type FinanceProfile struct {
	TotalIncome    float64            `json:"total_income"`
	TotalExpense   float64            `json:"total_expense"`
	Remaining      float64            `json:"remaining"`
	CategoryTotals map[string]float64 `json:"category_totals"`
	ExpenseCount   int                `json:"expense_count"`
	RecurringCount int                `json:"recurring_count"`
}

// Profile aggregates every record the user owns, unscoped by window.
func (a *Aggregator) Profile(ctx context.Context, userID uint) (*FinanceProfile, error) {
	incomes, err := a.store.IncomesAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch incomes: %w", err)
	}
	expenses, err := a.store.ExpensesAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch expenses: %w", err)
	}

	p := &FinanceProfile{
		TotalIncome:    SumIncomes(incomes),
		TotalExpense:   SumExpenses(expenses),
		CategoryTotals: make(map[string]float64),
		ExpenseCount:   len(expenses),
	}
	p.Remaining = p.TotalIncome - p.TotalExpense
	for _, e := range expenses {
		p.CategoryTotals[e.Category] += e.Amount
		if e.IsRecurring {
			p.RecurringCount++
		}
	}
	return p, nil
}
