package ledger

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"

	"expense-tracko-api/internal/logger"
	"expense-tracko-api/internal/models"
)

// OverspendThresholdPercent is the fixed share of income above which a
// category triggers an overspend alert.
const OverspendThresholdPercent = 30

// FallbackInsight replaces the AI summary whenever the generator fails.
const FallbackInsight = "AI insight is currently unavailable."

// Fixed dashboard alert texts.
const (
	AlertNoIncome       = "No income added for this month."
	AlertExpensesExceed = "Expenses exceeded income"
	AlertNinetyPercent  = "Warning: 90% of income used"
)

// SnapshotData is the numeric digest handed to the insight generator.
type SnapshotData struct {
	TotalIncome    float64            `json:"total_income"`
	TotalExpense   float64            `json:"total_expense"`
	Remaining      float64            `json:"remaining"`
	CategoryTotals map[string]float64 `json:"category_totals"`
}

// InsightGenerator produces a free-text summary of a snapshot. Failures are
// degraded to a fallback string, never surfaced to the caller.
type InsightGenerator interface {
	Summary(ctx context.Context, data SnapshotData) (string, error)
}

// Insight is the generator outcome carried inside a snapshot.
type Insight struct {
	Text     string `json:"text"`
	Degraded bool   `json:"degraded"`
}

// CategoryBreakdown is one expense category's monthly total and its share of
// total income, rounded to two decimals.
type CategoryBreakdown struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Percent  float64 `json:"percent"`
}

// Snapshot is the complete monthly financial position of one user.
//
// Remaining is clamped at zero, which is what the dashboard renders; Net keeps
// the signed value so deficits stay visible. The expense guard checks Net.
type Snapshot struct {
	Window          Window              `json:"window"`
	TotalIncome     float64             `json:"total_income"`
	TotalExpense    float64             `json:"total_expense"`
	Net             float64             `json:"net"`
	Remaining       float64             `json:"remaining"`
	Categories      []CategoryBreakdown `json:"categories"`
	OverspendAlerts []string            `json:"overspend_alerts"`
	Alerts          []string            `json:"alerts"`
	Incomes         []models.Income     `json:"incomes"`
	Expenses        []models.Expense    `json:"expenses"`
	Insight         Insight             `json:"insight"`
}

// Aggregator computes monthly snapshots from the record store.
type Aggregator struct {
	store    Store
	insights InsightGenerator
}

func NewAggregator(store Store, insights InsightGenerator) *Aggregator {
	return &Aggregator{store: store, insights: insights}
}

// MonthlySnapshot computes the user's position for the window. An empty record
// set is valid output; only store failures are returned as errors.
func (a *Aggregator) MonthlySnapshot(ctx context.Context, userID uint, w Window) (*Snapshot, error) {
	incomes, err := a.store.IncomesBetween(ctx, userID, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("fetch incomes: %w", err)
	}
	expenses, err := a.store.ExpensesBetween(ctx, userID, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("fetch expenses: %w", err)
	}

	snap := &Snapshot{
		Window:          w,
		TotalIncome:     SumIncomes(incomes),
		TotalExpense:    SumExpenses(expenses),
		Categories:      []CategoryBreakdown{},
		OverspendAlerts: []string{},
		Alerts:          []string{},
		Incomes:         incomes,
		Expenses:        expenses,
	}
	snap.Net = snap.TotalIncome - snap.TotalExpense
	snap.Remaining = math.Max(snap.Net, 0)

	// Categories keep the order of first occurrence so output is stable.
	index := make(map[string]int)
	for _, exp := range expenses {
		cat := exp.Category
		if cat == "" {
			cat = "Other"
		}
		i, ok := index[cat]
		if !ok {
			i = len(snap.Categories)
			index[cat] = i
			snap.Categories = append(snap.Categories, CategoryBreakdown{Category: cat})
		}
		snap.Categories[i].Total += exp.Amount
	}

	for i := range snap.Categories {
		c := &snap.Categories[i]
		if snap.TotalIncome > 0 {
			c.Percent = round2(c.Total / snap.TotalIncome * 100)
		}
		if c.Percent > OverspendThresholdPercent {
			snap.OverspendAlerts = append(snap.OverspendAlerts,
				fmt.Sprintf("You are overspending on %s (%s%%)", c.Category, formatAmount(c.Percent)))
		}
	}

	if snap.TotalIncome == 0 {
		snap.Alerts = append(snap.Alerts, AlertNoIncome)
	}
	if snap.TotalExpense > snap.TotalIncome {
		snap.Alerts = append(snap.Alerts, AlertExpensesExceed)
	}
	if snap.TotalIncome > 0 && snap.TotalExpense/snap.TotalIncome >= 0.9 {
		snap.Alerts = append(snap.Alerts, AlertNinetyPercent)
	}

	snap.Insight = a.generateInsight(ctx, snap)
	return snap, nil
}

func (a *Aggregator) generateInsight(ctx context.Context, snap *Snapshot) Insight {
	if a.insights == nil {
		return Insight{Text: FallbackInsight, Degraded: true}
	}
	data := SnapshotData{
		TotalIncome:    snap.TotalIncome,
		TotalExpense:   snap.TotalExpense,
		Remaining:      snap.Net,
		CategoryTotals: make(map[string]float64, len(snap.Categories)),
	}
	for _, c := range snap.Categories {
		data.CategoryTotals[c.Category] = c.Total
	}
	text, err := a.insights.Summary(ctx, data)
	if err != nil {
		logger.Get().Warn("insight generator failed", zap.Error(err))
		return Insight{Text: FallbackInsight, Degraded: true}
	}
	return Insight{Text: text}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatAmount renders a float without trailing zeros, so 40 prints as "40"
// and 33.33 as "33.33".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
