package ledger

import (
	"context"
	"math"
	"strings"
	"time"

	"expense-tracko-api/internal/models"
)

// ExpenseDraft is a validated-at-the-boundary request to create an expense.
type ExpenseDraft struct {
	Title       string
	Amount      float64
	Category    string
	PaymentMode string
	IsRecurring bool
}

// Guard enforces the balance rules around expense creation and income
// deletion. Both operations hold the owner's lock across the read-check-write
// sequence.
type Guard struct {
	store Store
	locks *userLocks
	now   func() time.Time
}

func NewGuard(store Store) *Guard {
	return &Guard{store: store, locks: newUserLocks(), now: time.Now}
}

// AddExpense creates an expense unless it would drive the current month's
// remaining balance negative. The remaining value here is unclamped, unlike
// the dashboard's; the guard must see real deficits.
func (g *Guard) AddExpense(ctx context.Context, userID uint, draft ExpenseDraft) (*models.Expense, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	if draft.Title == "" {
		return nil, &ValidationError{Msg: "Title and amount are required"}
	}
	if math.IsNaN(draft.Amount) || draft.Amount <= 0 {
		return nil, &ValidationError{Msg: "Amount must be a positive number"}
	}
	if draft.PaymentMode == "" {
		draft.PaymentMode = models.DefaultPaymentMode
	}
	if !models.ValidPaymentMode(draft.PaymentMode) {
		return nil, &ValidationError{Msg: "Invalid payment mode"}
	}
	if draft.Category == "" {
		draft.Category = models.DefaultExpenseCategory
	}

	lock := g.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	now := g.now()
	w := CurrentMonth(now)

	incomes, err := g.store.IncomesBetween(ctx, userID, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	expenses, err := g.store.ExpensesBetween(ctx, userID, w.Start, w.End)
	if err != nil {
		return nil, err
	}

	remaining := SumIncomes(incomes) - SumExpenses(expenses)
	if draft.Amount > remaining {
		return nil, &InsufficientBalanceError{Remaining: remaining}
	}

	expense := &models.Expense{
		UserID:      userID,
		Title:       draft.Title,
		Amount:      draft.Amount,
		Category:    draft.Category,
		PaymentMode: draft.PaymentMode,
		IsRecurring: draft.IsRecurring,
		Date:        now,
	}
	if err := g.store.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteIncome removes an income record unless doing so would leave the
// current month's recorded expenses above its recorded income.
func (g *Guard) DeleteIncome(ctx context.Context, userID, incomeID uint) error {
	income, err := g.store.IncomeByID(ctx, userID, incomeID)
	if err != nil {
		return err
	}
	if income == nil {
		return &NotFoundError{Resource: "Income"}
	}

	lock := g.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	w := CurrentMonth(g.now())

	incomes, err := g.store.IncomesBetween(ctx, userID, w.Start, w.End)
	if err != nil {
		return err
	}
	expenses, err := g.store.ExpensesBetween(ctx, userID, w.Start, w.End)
	if err != nil {
		return err
	}

	totalIncome := SumIncomes(incomes)
	if w.Contains(income.Date) {
		totalIncome -= income.Amount
	}
	if totalIncome < SumExpenses(expenses) {
		return &ConflictError{Msg: "Deleting this income would make income less than expense"}
	}

	return g.store.DeleteIncome(ctx, userID, incomeID)
}
