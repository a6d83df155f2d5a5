package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"expense-tracko-api/internal/ledger"
	"expense-tracko-api/internal/models"
)

// GET /expense?category=&month=&year=&recurring=
//
// Filters are a conjunction of independently optional predicates; the date
// range only applies when both month and year are supplied. The filtered
// total is distinct from the current month's grand totals.
func (s *Server) listExpenses(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	filter := ledger.ExpenseFilter{Category: c.Query("category")}
	if v := c.Query("recurring"); v != "" {
		recurring := v == "true"
		filter.Recurring = &recurring
	}
	if monthStr, yearStr := c.Query("month"), c.Query("year"); monthStr != "" && yearStr != "" {
		month, merr := strconv.Atoi(monthStr)
		year, yerr := strconv.Atoi(yearStr)
		if merr != nil || yerr != nil || month < 1 || month > 12 {
			c.JSON(422, gin.H{"success": false, "message": "Invalid month or year"})
			return
		}
		filter.Month = time.Month(month)
		filter.Year = year
	}

	expenses, err := s.store.ExpensesFiltered(c.Request.Context(), userID, filter, s.loc)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	w := ledger.CurrentMonth(time.Now().In(s.loc))
	monthIncomes, err := s.store.IncomesBetween(c.Request.Context(), userID, w.Start, w.End)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	monthExpenses, err := s.store.ExpensesBetween(c.Request.Context(), userID, w.Start, w.End)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	totalIncome := ledger.SumIncomes(monthIncomes)
	totalExpense := ledger.SumExpenses(monthExpenses)

	c.JSON(200, gin.H{
		"success":       true,
		"expenses":      expenses,
		"filteredTotal": ledger.SumExpenses(expenses),
		"totalIncome":   totalIncome,
		"totalExpense":  totalExpense,
		"remaining":     totalIncome - totalExpense,
	})
}

// POST /expense/add
func (s *Server) addExpense(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input struct {
		Title       string   `json:"title"`
		Amount      float64  `json:"amount"`
		Category    string   `json:"category"`
		PaymentMode string   `json:"paymentMode"`
		IsRecurring flexBool `json:"isRecurring"`
	}
	if !bindValidated(c, s.schemas.expenseAdd, &input) {
		return
	}

	expense, err := s.guard.AddExpense(c.Request.Context(), userID, ledger.ExpenseDraft{
		Title:       input.Title,
		Amount:      input.Amount,
		Category:    input.Category,
		PaymentMode: input.PaymentMode,
		IsRecurring: bool(input.IsRecurring),
	})
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Expense added successfully",
		"expense": expense,
	})
}

// GET /expense/:id
func (s *Server) getExpense(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	id, ok := parseID(c)
	if !ok {
		return
	}

	expense, err := s.store.ExpenseByID(c.Request.Context(), userID, id)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	if expense == nil {
		c.JSON(404, gin.H{"success": false, "message": "Expense not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "expense": expense})
}

// PUT /expense/:id — partial update of the mutable fields.
func (s *Server) updateExpense(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	id, ok := parseID(c)
	if !ok {
		return
	}

	expense, err := s.store.ExpenseByID(c.Request.Context(), userID, id)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	if expense == nil {
		c.JSON(404, gin.H{"success": false, "message": "Expense not found"})
		return
	}

	var input map[string]any
	if !bindValidated(c, s.schemas.expenseUpdate, &input) {
		return
	}

	if v, ok := input["title"].(string); ok {
		expense.Title = v
	}
	if v, ok := input["amount"].(float64); ok {
		if v <= 0 {
			c.JSON(422, gin.H{"success": false, "message": "Amount must be a positive number"})
			return
		}
		expense.Amount = v
	}
	if v, ok := input["category"].(string); ok {
		expense.Category = v
	}
	if v, ok := input["paymentMode"].(string); ok {
		if !models.ValidPaymentMode(v) {
			c.JSON(422, gin.H{"success": false, "message": "Invalid payment mode"})
			return
		}
		expense.PaymentMode = v
	}
	if v, present := input["isRecurring"]; present {
		switch t := v.(type) {
		case bool:
			expense.IsRecurring = t
		case string:
			expense.IsRecurring = t == "true"
		}
	}
	if v, ok := input["date"].(string); ok {
		date, err := parseDate(v, s.loc)
		if err != nil {
			c.JSON(422, gin.H{"success": false, "message": "Invalid date"})
			return
		}
		expense.Date = date
	}

	if err := s.store.SaveExpense(c.Request.Context(), expense); err != nil {
		writeLedgerError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success":        true,
		"message":        "Expense updated successfully",
		"updatedExpense": expense,
	})
}

// DELETE /expense/:id — unlike income, expense deletion is unconditional.
func (s *Server) deleteExpense(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := s.store.DeleteExpense(c.Request.Context(), userID, id); err != nil {
		writeLedgerError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Expense deleted successfully"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Record not found"})
		return 0, false
	}
	return uint(id), true
}

func parseDate(v string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", v, loc)
}
