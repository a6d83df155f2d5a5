package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = time.UTC

func midMonth(day int) time.Time {
	return time.Date(2025, time.March, day, 12, 0, 0, 0, testLoc)
}

func marchWindow() Window {
	return MonthWindow(2025, time.March, testLoc)
}

func TestMonthlySnapshotBasicScenario(t *testing.T) {
	store := newMemStore()
	store.addIncome(1, 5000, "General", midMonth(1))
	store.addExpense(1, 2000, "Food", midMonth(2))

	agg := NewAggregator(store, &fixedGen{text: "looks fine"})
	snap, err := agg.MonthlySnapshot(context.Background(), 1, marchWindow())
	require.NoError(t, err)

	assert.Equal(t, 5000.0, snap.TotalIncome)
	assert.Equal(t, 2000.0, snap.TotalExpense)
	assert.Equal(t, 3000.0, snap.Remaining)
	assert.Equal(t, 3000.0, snap.Net)
	assert.Empty(t, snap.Alerts)

	require.Len(t, snap.Categories, 1)
	assert.Equal(t, "Food", snap.Categories[0].Category)
	assert.Equal(t, 2000.0, snap.Categories[0].Total)
	assert.Equal(t, 40.0, snap.Categories[0].Percent)

	// 40% of income in one category is past the 30% threshold.
	require.Len(t, snap.OverspendAlerts, 1)
	assert.Equal(t, "You are overspending on Food (40%)", snap.OverspendAlerts[0])

	assert.Equal(t, "looks fine", snap.Insight.Text)
	assert.False(t, snap.Insight.Degraded)
}

func TestMonthlySnapshotZeroIncome(t *testing.T) {
	store := newMemStore()
	store.addExpense(1, 100, "Travel", midMonth(5))

	agg := NewAggregator(store, &fixedGen{text: "x"})
	snap, err := agg.MonthlySnapshot(context.Background(), 1, marchWindow())
	require.NoError(t, err)

	assert.Equal(t, 0.0, snap.TotalIncome)
	assert.Contains(t, snap.Alerts, "No income added for this month.")
	assert.Contains(t, snap.Alerts, "Expenses exceeded income")

	// No division by zero: the percentage is defined as 0.
	require.Len(t, snap.Categories, 1)
	assert.Equal(t, 0.0, snap.Categories[0].Percent)
	assert.Empty(t, snap.OverspendAlerts)

	// Deficit is visible in Net, clamped away in Remaining.
	assert.Equal(t, -100.0, snap.Net)
	assert.Equal(t, 0.0, snap.Remaining)
}

func TestMonthlySnapshotNinetyPercentWarning(t *testing.T) {
	store := newMemStore()
	store.addIncome(1, 1000, "General", midMonth(1))
	store.addExpense(1, 900, "Rent", midMonth(2))

	agg := NewAggregator(store, &fixedGen{text: "x"})
	snap, err := agg.MonthlySnapshot(context.Background(), 1, marchWindow())
	require.NoError(t, err)

	assert.Contains(t, snap.Alerts, "Warning: 90% of income used")
	assert.NotContains(t, snap.Alerts, "Expenses exceeded income")
}

func TestMonthlySnapshotCategoryOrderAndRounding(t *testing.T) {
	store := newMemStore()
	store.addIncome(1, 3000, "General", midMonth(1))
	store.addExpense(1, 500, "Food", midMonth(2))
	store.addExpense(1, 200, "Travel", midMonth(3))
	store.addExpense(1, 300, "Food", midMonth(4))

	agg := NewAggregator(store, &fixedGen{text: "x"})
	snap, err := agg.MonthlySnapshot(context.Background(), 1, marchWindow())
	require.NoError(t, err)

	// First occurrence order, each category exactly once.
	require.Len(t, snap.Categories, 2)
	assert.Equal(t, "Food", snap.Categories[0].Category)
	assert.Equal(t, 800.0, snap.Categories[0].Total)
	assert.Equal(t, "Travel", snap.Categories[1].Category)
	assert.Equal(t, 200.0, snap.Categories[1].Total)

	// 800/3000*100 = 26.666... rounds to 26.67; below the 30% threshold.
	assert.Equal(t, 26.67, snap.Categories[0].Percent)
	assert.Equal(t, 6.67, snap.Categories[1].Percent)
	assert.Empty(t, snap.OverspendAlerts)
}

func TestMonthlySnapshotBlankCategoryBucket(t *testing.T) {
	store := newMemStore()
	store.addIncome(1, 1000, "General", midMonth(1))
	store.addExpense(1, 50, "", midMonth(2))

	agg := NewAggregator(store, &fixedGen{text: "x"})
	snap, err := agg.MonthlySnapshot(context.Background(), 1, marchWindow())
	require.NoError(t, err)

	require.Len(t, snap.Categories, 1)
	assert.Equal(t, "Other", snap.Categories[0].Category)
}

func TestMonthlySnapshotWindowBoundaries(t *testing.T) {
	w := marchWindow()
	store := newMemStore()
	store.addIncome(1, 100, "General", w.Start)                // exactly at start: included
	store.addIncome(1, 200, "General", w.End)                  // exactly at end: excluded
	store.addIncome(1, 400, "General", w.End.Add(-time.Nanosecond))
	store.addIncome(1, 800, "General", w.Start.Add(-time.Nanosecond))

	agg := NewAggregator(store, &fixedGen{text: "x"})
	snap, err := agg.MonthlySnapshot(context.Background(), 1, w)
	require.NoError(t, err)

	assert.Equal(t, 500.0, snap.TotalIncome)
}

func TestMonthlySnapshotScopedToUser(t *testing.T) {
	store := newMemStore()
	store.addIncome(1, 1000, "General", midMonth(1))
	store.addIncome(2, 9999, "General", midMonth(1))
	store.addExpense(2, 9999, "Food", midMonth(2))

	agg := NewAggregator(store, &fixedGen{text: "x"})
	snap, err := agg.MonthlySnapshot(context.Background(), 1, marchWindow())
	require.NoError(t, err)

	assert.Equal(t, 1000.0, snap.TotalIncome)
	assert.Equal(t, 0.0, snap.TotalExpense)
	assert.Empty(t, snap.Expenses)
}

func TestMonthlySnapshotInsightFallback(t *testing.T) {
	store := newMemStore()
	store.addIncome(1, 1000, "General", midMonth(1))

	agg := NewAggregator(store, &fixedGen{err: errors.New("groq down")})
	snap, err := agg.MonthlySnapshot(context.Background(), 1, marchWindow())

	// Generator failure never fails the snapshot.
	require.NoError(t, err)
	assert.Equal(t, FallbackInsight, snap.Insight.Text)
	assert.True(t, snap.Insight.Degraded)
}

func TestMonthlySnapshotStoreError(t *testing.T) {
	store := newMemStore()
	store.incomeErr = errors.New("db gone")

	agg := NewAggregator(store, &fixedGen{text: "x"})
	_, err := agg.MonthlySnapshot(context.Background(), 1, marchWindow())
	require.Error(t, err)
}

func TestProfileAllTime(t *testing.T) {
	store := newMemStore()
	store.addIncome(1, 1000, "General", midMonth(1))
	store.addIncome(1, 2000, "General", midMonth(1).AddDate(-1, 0, 0)) // previous year counts too
	store.addExpense(1, 300, "Food", midMonth(2))
	store.expenses[len(store.expenses)-1].IsRecurring = true

	agg := NewAggregator(store, &fixedGen{text: "x"})
	profile, err := agg.Profile(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 3000.0, profile.TotalIncome)
	assert.Equal(t, 300.0, profile.TotalExpense)
	assert.Equal(t, 2700.0, profile.Remaining)
	assert.Equal(t, 300.0, profile.CategoryTotals["Food"])
	assert.Equal(t, 1, profile.ExpenseCount)
	assert.Equal(t, 1, profile.RecurringCount)
}
