package ledger

import (
	"context"
	"time"

	"expense-tracko-api/internal/models"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	incomes  []models.Income
	expenses []models.Expense
	nextID   uint

	incomeErr  error
	expenseErr error
}

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func (m *memStore) addIncome(userID uint, amount float64, category string, date time.Time) models.Income {
	inc := models.Income{ID: m.nextID, UserID: userID, Title: "income", Amount: amount, Category: category, Date: date}
	m.nextID++
	m.incomes = append(m.incomes, inc)
	return inc
}

func (m *memStore) addExpense(userID uint, amount float64, category string, date time.Time) models.Expense {
	exp := models.Expense{ID: m.nextID, UserID: userID, Title: "expense", Amount: amount, Category: category, PaymentMode: models.PaymentUPI, Date: date}
	m.nextID++
	m.expenses = append(m.expenses, exp)
	return exp
}

func (m *memStore) IncomesBetween(_ context.Context, userID uint, start, end time.Time) ([]models.Income, error) {
	if m.incomeErr != nil {
		return nil, m.incomeErr
	}
	var out []models.Income
	for _, inc := range m.incomes {
		if inc.UserID == userID && !inc.Date.Before(start) && inc.Date.Before(end) {
			out = append(out, inc)
		}
	}
	return out, nil
}

func (m *memStore) ExpensesBetween(_ context.Context, userID uint, start, end time.Time) ([]models.Expense, error) {
	if m.expenseErr != nil {
		return nil, m.expenseErr
	}
	var out []models.Expense
	for _, exp := range m.expenses {
		if exp.UserID == userID && !exp.Date.Before(start) && exp.Date.Before(end) {
			out = append(out, exp)
		}
	}
	return out, nil
}

func (m *memStore) IncomesAll(_ context.Context, userID uint) ([]models.Income, error) {
	var out []models.Income
	for _, inc := range m.incomes {
		if inc.UserID == userID {
			out = append(out, inc)
		}
	}
	return out, nil
}

func (m *memStore) ExpensesAll(_ context.Context, userID uint) ([]models.Expense, error) {
	var out []models.Expense
	for _, exp := range m.expenses {
		if exp.UserID == userID {
			out = append(out, exp)
		}
	}
	return out, nil
}

func (m *memStore) IncomeByID(_ context.Context, userID, id uint) (*models.Income, error) {
	for _, inc := range m.incomes {
		if inc.ID == id && inc.UserID == userID {
			found := inc
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memStore) CreateExpense(_ context.Context, e *models.Expense) error {
	e.ID = m.nextID
	m.nextID++
	m.expenses = append(m.expenses, *e)
	return nil
}

func (m *memStore) DeleteIncome(_ context.Context, userID, id uint) error {
	for i, inc := range m.incomes {
		if inc.ID == id && inc.UserID == userID {
			m.incomes = append(m.incomes[:i], m.incomes[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Resource: "Income"}
}

// fixedGen is an InsightGenerator returning canned output or a canned error.
type fixedGen struct {
	text string
	err  error
}

func (g *fixedGen) Summary(context.Context, SnapshotData) (string, error) {
	return g.text, g.err
}
