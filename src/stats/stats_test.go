package stats

import (
	"testing"
	"time"

	"fintrack-server/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func budget(amount float64) models.Budget {
	return models.Budget{Amount: amount}
}

func expense(category string, amount float64) models.Expense {
	return models.Expense{Category: category, Amount: amount}
}

func txn(id int, typ string, amount float64, date models.Date) models.Transaction {
	return models.Transaction{ID: id, Type: typ, Amount: amount, Category: "General", Date: date}
}

func TestUtilization(t *testing.T) {
	assert.Equal(t, 0.0, Utilization(600, 0), "zero budget must never divide")
	assert.Equal(t, 0.0, Utilization(0, 0))
	assert.InDelta(t, 1.2, Utilization(600, 500), 1e-9)
}

func TestBuildDashboardTotals(t *testing.T) {
	budgets := []models.Budget{budget(500)}
	expenses := []models.Expense{expense("Food", 600)}

	d := BuildDashboard(budgets, expenses, nil, time.Now())

	assert.Equal(t, 500.0, d.TotalBudget)
	assert.Equal(t, 600.0, d.TotalSpent)
	assert.InDelta(t, 1.2, d.BudgetUtilization, 1e-9)
	assert.Equal(t, 0.0, d.TotalIncome)
	assert.NotNil(t, d.MonthlyTrend)
	assert.NotNil(t, d.CategoryBreakdown)
	assert.NotNil(t, d.RecentTransactions)
}

func TestTotalIncome(t *testing.T) {
	now := models.NewDate(2026, time.August, 15)
	txns := []models.Transaction{
		txn(1, models.TransactionTypeIncome, 1000, now),
		txn(2, models.TransactionTypeIncome, 500, now),
		txn(3, models.TransactionTypeExpense, 300, now),
	}
	assert.Equal(t, 1500.0, TotalIncome(txns))
}

func TestCategoryBreakdown(t *testing.T) {
	expenses := []models.Expense{
		expense("Food", 100),
		expense("Food", 50),
		expense("Rent", 900),
	}

	breakdown := CategoryBreakdown(expenses)

	require.Len(t, breakdown, 2)
	assert.Equal(t, CategorySpend{Category: "Rent", Spent: 900}, breakdown[0])
	assert.Equal(t, CategorySpend{Category: "Food", Spent: 150}, breakdown[1])
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	breakdown := CategoryBreakdown(nil)
	assert.NotNil(t, breakdown)
	assert.Empty(t, breakdown)
}

func TestMonthlyTrendWindow(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	txns := []models.Transaction{
		// Inside the window: March through August 2026
		txn(1, "income", 1000, models.NewDate(2026, time.March, 1)),
		txn(2, "expense", 200, models.NewDate(2026, time.August, 10)),
		txn(3, "expense", 300, models.NewDate(2026, time.August, 20)),
		// Outside: February 2026 is the seventh month back
		txn(4, "income", 9999, models.NewDate(2026, time.February, 28)),
	}

	trend := MonthlyTrend(txns, now)

	require.Len(t, trend, 2)
	assert.Equal(t, TrendPoint{Year: 2026, Month: 3, Type: "income", Total: 1000}, trend[0])
	assert.Equal(t, TrendPoint{Year: 2026, Month: 8, Type: "expense", Total: 500}, trend[1])
}

func TestMonthlyTrendSortedAscending(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	txns := []models.Transaction{
		txn(1, "expense", 50, models.NewDate(2026, time.February, 5)),
		txn(2, "expense", 70, models.NewDate(2025, time.December, 5)),
		txn(3, "income", 90, models.NewDate(2026, time.January, 5)),
	}

	trend := MonthlyTrend(txns, now)

	require.Len(t, trend, 3)
	assert.Equal(t, 2025, trend[0].Year)
	assert.Equal(t, 12, trend[0].Month)
	assert.Equal(t, 2026, trend[1].Year)
	assert.Equal(t, 1, trend[1].Month)
	assert.Equal(t, 2, trend[2].Month)
}

func TestMonthlyTrendSkipsZeroSums(t *testing.T) {
	now := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	txns := []models.Transaction{
		txn(1, "expense", 0, models.NewDate(2026, time.July, 1)),
		txn(2, "income", 100, models.NewDate(2026, time.July, 2)),
	}

	trend := MonthlyTrend(txns, now)

	require.Len(t, trend, 1)
	assert.Equal(t, "income", trend[0].Type)
}

func TestRecentTransactionsLimit(t *testing.T) {
	var txns []models.Transaction
	for i := 1; i <= 8; i++ {
		txns = append(txns, txn(i, "expense", float64(i), models.NewDate(2026, time.January, i)))
	}

	recent := RecentTransactions(txns, 5)

	require.Len(t, recent, 5)
	// Most recently dated first
	assert.Equal(t, 8, recent[0].ID)
	assert.Equal(t, 4, recent[4].ID)
}

func TestRecentTransactionsFewerThanLimit(t *testing.T) {
	txns := []models.Transaction{
		txn(1, "income", 10, models.NewDate(2026, time.May, 1)),
	}
	recent := RecentTransactions(txns, 5)
	assert.Len(t, recent, 1)
}

func TestTotalsByType(t *testing.T) {
	d := models.NewDate(2026, time.June, 1)
	txns := []models.Transaction{
		txn(1, "income", 1000, d),
		txn(2, "expense", 400, d),
		txn(3, "expense", 100, d),
	}

	totals := TotalsByType(txns)

	require.Len(t, totals, 2)
	assert.Equal(t, TypeTotal{Type: "expense", Total: 500}, totals[0])
	assert.Equal(t, TypeTotal{Type: "income", Total: 1000}, totals[1])
}

func TestByCategoryType(t *testing.T) {
	d := models.NewDate(2026, time.June, 1)
	txns := []models.Transaction{
		{ID: 1, Type: "expense", Amount: 100, Category: "Food", Date: d},
		{ID: 2, Type: "expense", Amount: 50, Category: "Food", Date: d},
		{ID: 3, Type: "income", Amount: 2000, Category: "Salary", Date: d},
	}

	byCategory := ByCategoryType(txns)

	require.Len(t, byCategory, 2)
	assert.Equal(t, CategoryTypeTotal{Category: "Salary", Type: "income", Total: 2000}, byCategory[0])
	assert.Equal(t, CategoryTypeTotal{Category: "Food", Type: "expense", Total: 150}, byCategory[1])
}

func TestBuildReportAllTime(t *testing.T) {
	txns := []models.Transaction{
		txn(1, "income", 100, models.NewDate(2020, time.January, 1)),
		txn(2, "income", 200, models.NewDate(2026, time.July, 1)),
	}

	report := BuildReport(txns)

	// No six-month window on reports
	require.Len(t, report.ByMonth, 2)
	assert.Equal(t, 2020, report.ByMonth[0].Year)
	assert.Equal(t, 2026, report.ByMonth[1].Year)
	require.Len(t, report.Totals, 1)
	assert.Equal(t, 300.0, report.Totals[0].Total)
}
