package ledger

import (
	"time"

	"expense-tracko-api/internal/models"
)

// ExpenseFilter is a conjunction of independently optional predicates over a
// user's expenses. Category "" or "all" disables the category predicate;
// Recurring nil leaves the flag unconstrained; the date range only applies
// when both Month and Year are set.
type ExpenseFilter struct {
	Category  string
	Recurring *bool
	Month     time.Month
	Year      int
}

// DateWindow returns the month window the filter selects, if any.
func (f ExpenseFilter) DateWindow(loc *time.Location) (Window, bool) {
	if f.Year == 0 || f.Month == 0 {
		return Window{}, false
	}
	return MonthWindow(f.Year, f.Month, loc), true
}

// FiltersCategory reports whether the category predicate is active.
func (f ExpenseFilter) FiltersCategory() bool {
	return f.Category != "" && f.Category != "all"
}

// Matches reports whether the expense passes every active predicate.
func (f ExpenseFilter) Matches(e models.Expense, loc *time.Location) bool {
	if f.FiltersCategory() && e.Category != f.Category {
		return false
	}
	if f.Recurring != nil && e.IsRecurring != *f.Recurring {
		return false
	}
	if w, ok := f.DateWindow(loc); ok && !w.Contains(e.Date) {
		return false
	}
	return true
}
