package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"expense-tracko-api/internal/ledger"
)

// GET /dashboard?month=&year=
//
// The window defaults to the current calendar month; explicit month/year
// query parameters select another one.
func (s *Server) showDashboard(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	username := c.MustGet("username").(string)

	w := ledger.CurrentMonth(time.Now().In(s.loc))
	if monthStr, yearStr := c.Query("month"), c.Query("year"); monthStr != "" && yearStr != "" {
		month, merr := strconv.Atoi(monthStr)
		year, yerr := strconv.Atoi(yearStr)
		if merr != nil || yerr != nil || month < 1 || month > 12 {
			c.JSON(422, gin.H{"success": false, "message": "Invalid month or year"})
			return
		}
		w = ledger.MonthWindow(year, time.Month(month), s.loc)
	}

	snap, err := s.aggregator.MonthlySnapshot(c.Request.Context(), userID, w)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success":         true,
		"username":        username,
		"monthlyIncome":   snap.Incomes,
		"monthlyExpenses": snap.Expenses,
		"totalIncome":     snap.TotalIncome,
		"totalExpense":    snap.TotalExpense,
		"remaining":       snap.Remaining,
		"net":             snap.Net,
		"categories":      snap.Categories,
		"overspendAlerts": snap.OverspendAlerts,
		"alerts":          snap.Alerts,
		"aiInsight":       snap.Insight,
	})
}
