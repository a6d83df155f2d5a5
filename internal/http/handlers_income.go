package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"expense-tracko-api/internal/ledger"
	"expense-tracko-api/internal/models"
)

// GET /income — current-month income entries plus their total.
func (s *Server) listIncome(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	w := ledger.CurrentMonth(time.Now().In(s.loc))
	incomes, err := s.store.IncomesBetween(c.Request.Context(), userID, w.Start, w.End)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success":     true,
		"incomes":     incomes,
		"totalIncome": ledger.SumIncomes(incomes),
	})
}

// POST /income/add
func (s *Server) addIncome(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input struct {
		Title    string  `json:"title"`
		Amount   float64 `json:"amount"`
		Category string  `json:"category"`
	}
	if !bindValidated(c, s.schemas.incomeAdd, &input) {
		return
	}
	if input.Amount <= 0 {
		c.JSON(422, gin.H{"success": false, "message": "Amount must be a positive number"})
		return
	}
	if input.Category == "" {
		input.Category = models.DefaultIncomeCategory
	}

	income := &models.Income{
		UserID:   userID,
		Title:    input.Title,
		Amount:   input.Amount,
		Category: input.Category,
		Date:     time.Now(),
	}
	if err := s.store.CreateIncome(c.Request.Context(), income); err != nil {
		writeLedgerError(c, err)
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Income added successfully",
		"income":  income,
	})
}

// GET /income/:id
func (s *Server) getIncome(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	id, ok := parseID(c)
	if !ok {
		return
	}

	income, err := s.store.IncomeByID(c.Request.Context(), userID, id)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	if income == nil {
		c.JSON(404, gin.H{"success": false, "message": "Income not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "income": income})
}

// PUT /income/:id — full replace of the mutable fields.
func (s *Server) updateIncome(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	id, ok := parseID(c)
	if !ok {
		return
	}

	income, err := s.store.IncomeByID(c.Request.Context(), userID, id)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	if income == nil {
		c.JSON(404, gin.H{"success": false, "message": "Income not found"})
		return
	}

	var input struct {
		Title    string  `json:"title"`
		Amount   float64 `json:"amount"`
		Category string  `json:"category"`
		Date     string  `json:"date"`
	}
	if !bindValidated(c, s.schemas.incomeUpdate, &input) {
		return
	}
	if input.Amount <= 0 {
		c.JSON(422, gin.H{"success": false, "message": "Amount must be a positive number"})
		return
	}

	income.Title = input.Title
	income.Amount = input.Amount
	if input.Category != "" {
		income.Category = input.Category
	}
	if input.Date != "" {
		date, err := parseDate(input.Date, s.loc)
		if err != nil {
			c.JSON(422, gin.H{"success": false, "message": "Invalid date"})
			return
		}
		income.Date = date
	}

	if err := s.store.SaveIncome(c.Request.Context(), income); err != nil {
		writeLedgerError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success":       true,
		"message":       "Income updated successfully",
		"updatedIncome": income,
	})
}

// DELETE /income/:id — guarded: deletion must not retroactively push the
// month's expenses above its income.
func (s *Server) deleteIncome(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := s.guard.DeleteIncome(c.Request.Context(), userID, id); err != nil {
		writeLedgerError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Income deleted successfully"})
}
