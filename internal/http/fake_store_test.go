package http

import (
	"context"
	"time"

	"expense-tracko-api/internal/ledger"
	"expense-tracko-api/internal/models"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	users    []models.User
	sessions []models.Session
	incomes  []models.Income
	expenses []models.Expense
	visits   []models.Visit
	nextID   uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1}
}

func (f *fakeStore) id() uint {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeStore) IncomesBetween(_ context.Context, userID uint, start, end time.Time) ([]models.Income, error) {
	out := []models.Income{}
	for _, inc := range f.incomes {
		if inc.UserID == userID && !inc.Date.Before(start) && inc.Date.Before(end) {
			out = append(out, inc)
		}
	}
	return out, nil
}

func (f *fakeStore) ExpensesBetween(_ context.Context, userID uint, start, end time.Time) ([]models.Expense, error) {
	out := []models.Expense{}
	for _, exp := range f.expenses {
		if exp.UserID == userID && !exp.Date.Before(start) && exp.Date.Before(end) {
			out = append(out, exp)
		}
	}
	return out, nil
}

func (f *fakeStore) IncomesAll(_ context.Context, userID uint) ([]models.Income, error) {
	out := []models.Income{}
	for _, inc := range f.incomes {
		if inc.UserID == userID {
			out = append(out, inc)
		}
	}
	return out, nil
}

func (f *fakeStore) ExpensesAll(_ context.Context, userID uint) ([]models.Expense, error) {
	out := []models.Expense{}
	for _, exp := range f.expenses {
		if exp.UserID == userID {
			out = append(out, exp)
		}
	}
	return out, nil
}

func (f *fakeStore) ExpensesFiltered(_ context.Context, userID uint, filter ledger.ExpenseFilter, loc *time.Location) ([]models.Expense, error) {
	out := []models.Expense{}
	for _, exp := range f.expenses {
		if exp.UserID == userID && filter.Matches(exp, loc) {
			out = append(out, exp)
		}
	}
	return out, nil
}

func (f *fakeStore) IncomeByID(_ context.Context, userID, id uint) (*models.Income, error) {
	for _, inc := range f.incomes {
		if inc.ID == id && inc.UserID == userID {
			found := inc
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ExpenseByID(_ context.Context, userID, id uint) (*models.Expense, error) {
	for _, exp := range f.expenses {
		if exp.ID == id && exp.UserID == userID {
			found := exp
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateIncome(_ context.Context, income *models.Income) error {
	income.ID = f.id()
	f.incomes = append(f.incomes, *income)
	return nil
}

func (f *fakeStore) CreateExpense(_ context.Context, expense *models.Expense) error {
	expense.ID = f.id()
	f.expenses = append(f.expenses, *expense)
	return nil
}

func (f *fakeStore) SaveIncome(_ context.Context, income *models.Income) error {
	for i := range f.incomes {
		if f.incomes[i].ID == income.ID {
			f.incomes[i] = *income
		}
	}
	return nil
}

func (f *fakeStore) SaveExpense(_ context.Context, expense *models.Expense) error {
	for i := range f.expenses {
		if f.expenses[i].ID == expense.ID {
			f.expenses[i] = *expense
		}
	}
	return nil
}

func (f *fakeStore) DeleteIncome(_ context.Context, userID, id uint) error {
	for i, inc := range f.incomes {
		if inc.ID == id && inc.UserID == userID {
			f.incomes = append(f.incomes[:i], f.incomes[i+1:]...)
			return nil
		}
	}
	return &ledger.NotFoundError{Resource: "Income"}
}

func (f *fakeStore) DeleteExpense(_ context.Context, userID, id uint) error {
	for i, exp := range f.expenses {
		if exp.ID == id && exp.UserID == userID {
			f.expenses = append(f.expenses[:i], f.expenses[i+1:]...)
			return nil
		}
	}
	return &ledger.NotFoundError{Resource: "Expense"}
}

func (f *fakeStore) CreateUser(_ context.Context, user *models.User) error {
	user.ID = f.id()
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UserByID(_ context.Context, id uint) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateSession(_ context.Context, session *models.Session) error {
	session.ID = f.id()
	f.sessions = append(f.sessions, *session)
	return nil
}

func (f *fakeStore) SessionByToken(_ context.Context, token string) (*models.Session, error) {
	for _, s := range f.sessions {
		if s.Token == token {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) DeleteSession(_ context.Context, token string) error {
	for i, s := range f.sessions {
		if s.Token == token {
			f.sessions = append(f.sessions[:i], f.sessions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) CreateVisit(_ context.Context, visit *models.Visit) error {
	visit.ID = f.id()
	f.visits = append(f.visits, *visit)
	return nil
}

func (f *fakeStore) CountUsers(context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeStore) CountVisits(context.Context) (int64, error) {
	return int64(len(f.visits)), nil
}

func (f *fakeStore) CountExpenses(context.Context) (int64, error) {
	return int64(len(f.expenses)), nil
}

// fakeAI stands in for the Groq client.
type fakeAI struct {
	summary string
	reply   string
	err     error
}

func (f *fakeAI) Summary(context.Context, ledger.SnapshotData) (string, error) {
	return f.summary, f.err
}

func (f *fakeAI) ChatReply(context.Context, string, ledger.FinanceProfile) (string, error) {
	return f.reply, f.err
}
