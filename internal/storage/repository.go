package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"expense-tracko-api/internal/ledger"
	"expense-tracko-api/internal/models"
)

// Repository is the gorm-backed record store. Every multi-record read is
// scoped by the owning user id; cross-user reads never happen here.
type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the schema for every persisted entity.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(
		&models.User{},
		&models.Income{},
		&models.Expense{},
		&models.Visit{},
		&models.Session{},
	)
}

func (r *Repository) IncomesBetween(ctx context.Context, userID uint, start, end time.Time) ([]models.Income, error) {
	var incomes []models.Income
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date desc").
		Find(&incomes).Error
	return incomes, err
}

func (r *Repository) ExpensesBetween(ctx context.Context, userID uint, start, end time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date desc").
		Find(&expenses).Error
	return expenses, err
}

func (r *Repository) IncomesAll(ctx context.Context, userID uint) ([]models.Income, error) {
	var incomes []models.Income
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&incomes).Error
	return incomes, err
}

func (r *Repository) ExpensesAll(ctx context.Context, userID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&expenses).Error
	return expenses, err
}

// ExpensesFiltered applies the filter's active predicates in SQL, newest
// first.
func (r *Repository) ExpensesFiltered(ctx context.Context, userID uint, f ledger.ExpenseFilter, loc *time.Location) ([]models.Expense, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date desc")
	if f.FiltersCategory() {
		query = query.Where("category = ?", f.Category)
	}
	if f.Recurring != nil {
		query = query.Where("is_recurring = ?", *f.Recurring)
	}
	if w, ok := f.DateWindow(loc); ok {
		query = query.Where("date >= ? AND date < ?", w.Start, w.End)
	}

	var expenses []models.Expense
	err := query.Find(&expenses).Error
	return expenses, err
}

func (r *Repository) IncomeByID(ctx context.Context, userID, id uint) (*models.Income, error) {
	var income models.Income
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&income).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &income, nil
}

func (r *Repository) ExpenseByID(ctx context.Context, userID, id uint) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&expense).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *Repository) CreateIncome(ctx context.Context, income *models.Income) error {
	return r.db.WithContext(ctx).Create(income).Error
}

func (r *Repository) CreateExpense(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *Repository) SaveIncome(ctx context.Context, income *models.Income) error {
	return r.db.WithContext(ctx).Save(income).Error
}

func (r *Repository) SaveExpense(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *Repository) DeleteIncome(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Income{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &ledger.NotFoundError{Resource: "Income"}
	}
	return nil
}

func (r *Repository) DeleteExpense(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Expense{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &ledger.NotFoundError{Resource: "Expense"}
	}
	return nil
}

func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) CreateSession(ctx context.Context, session *models.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *Repository) SessionByToken(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *Repository) DeleteSession(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&models.Session{}).Error
}

func (r *Repository) CreateVisit(ctx context.Context, visit *models.Visit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}

func (r *Repository) CountVisits(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Visit{}).Count(&n).Error
	return n, err
}

func (r *Repository) CountExpenses(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Expense{}).Count(&n).Error
	return n, err
}
