// Package stats computes the dashboard and report aggregates from a
// user's budgets, expenses and transactions.
package stats

import (
	"sort"
	"time"

	"fintrack-server/src/models"
)

// TrendPoint is one (year, month, type) bucket of summed transaction
// amounts. Buckets with a zero sum are never emitted.
type TrendPoint struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Type  string  `json:"type"`
	Total float64 `json:"total"`
}

// CategorySpend is the summed expense amount for one category.
type CategorySpend struct {
	Category string  `json:"category"`
	Spent    float64 `json:"spent"`
}

// TypeTotal is the all-time summed transaction amount for one type.
type TypeTotal struct {
	Type  string  `json:"type"`
	Total float64 `json:"total"`
}

// CategoryTypeTotal is the summed transaction amount for one
// (category, type) pair.
type CategoryTypeTotal struct {
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Total    float64 `json:"total"`
}

// Dashboard is the payload of GET /api/dashboard/stats.
type Dashboard struct {
	TotalBudget        float64              `json:"totalBudget"`
	TotalSpent         float64              `json:"totalSpent"`
	TotalIncome        float64              `json:"totalIncome"`
	BudgetUtilization  float64              `json:"budgetUtilization"`
	MonthlyTrend       []TrendPoint         `json:"monthlyTrend"`
	CategoryBreakdown  []CategorySpend      `json:"categoryBreakdown"`
	RecentTransactions []models.Transaction `json:"recentTransactions"`
}

// Report is the payload of GET /api/reports.
type Report struct {
	Totals     []TypeTotal         `json:"totals"`
	ByMonth    []TrendPoint        `json:"byMonth"`
	ByCategory []CategoryTypeTotal `json:"byCategory"`
}

// recentLimit caps the recent-transactions widget on the dashboard.
const recentLimit = 5

// BuildDashboard assembles the full dashboard payload. The trend
// window covers the six calendar months up to and including now's
// month.
func BuildDashboard(budgets []models.Budget, expenses []models.Expense, txns []models.Transaction, now time.Time) Dashboard {
	totalBudget := SumBudgets(budgets)
	totalSpent := SumExpenses(expenses)

	return Dashboard{
		TotalBudget:        totalBudget,
		TotalSpent:         totalSpent,
		TotalIncome:        TotalIncome(txns),
		BudgetUtilization:  Utilization(totalSpent, totalBudget),
		MonthlyTrend:       MonthlyTrend(txns, now),
		CategoryBreakdown:  CategoryBreakdown(expenses),
		RecentTransactions: RecentTransactions(txns, recentLimit),
	}
}

// BuildReport assembles the full-history report payload.
func BuildReport(txns []models.Transaction) Report {
	return Report{
		Totals:     TotalsByType(txns),
		ByMonth:    groupByMonth(txns, time.Time{}),
		ByCategory: ByCategoryType(txns),
	}
}

// SumBudgets totals budget amounts.
func SumBudgets(budgets []models.Budget) float64 {
	var total float64
	for _, b := range budgets {
		total += b.Amount
	}
	return total
}

// SumExpenses totals expense amounts.
func SumExpenses(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// TotalIncome totals income-type transaction amounts across all time.
func TotalIncome(txns []models.Transaction) float64 {
	var total float64
	for _, t := range txns {
		if t.Type == models.TransactionTypeIncome {
			total += t.Amount
		}
	}
	return total
}

// Utilization is spent/budget, or 0 when the budget is 0 so a user
// without budgets never produces NaN.
func Utilization(spent, budget float64) float64 {
	if budget <= 0 {
		return 0
	}
	return spent / budget
}

// MonthlyTrend groups transactions dated within the last six calendar
// months (inclusive of now's month) by (year, month, type) and sums
// amounts per group, sorted by year then month ascending.
func MonthlyTrend(txns []models.Transaction, now time.Time) []TrendPoint {
	windowStart := time.Date(now.Year(), now.Month()-5, 1, 0, 0, 0, 0, time.UTC)
	return groupByMonth(txns, windowStart)
}

func groupByMonth(txns []models.Transaction, since time.Time) []TrendPoint {
	type key struct {
		year  int
		month int
		typ   string
	}
	sums := make(map[key]float64)
	for _, t := range txns {
		if !since.IsZero() && t.Date.Before(since) {
			continue
		}
		k := key{year: t.Date.Year(), month: int(t.Date.Month()), typ: t.Type}
		sums[k] += t.Amount
	}

	points := make([]TrendPoint, 0, len(sums))
	for k, total := range sums {
		if total == 0 {
			continue
		}
		points = append(points, TrendPoint{Year: k.year, Month: k.month, Type: k.typ, Total: total})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Year != points[j].Year {
			return points[i].Year < points[j].Year
		}
		if points[i].Month != points[j].Month {
			return points[i].Month < points[j].Month
		}
		return points[i].Type < points[j].Type
	})
	return points
}

// CategoryBreakdown groups expenses by category and sums amounts,
// sorted by spent descending.
func CategoryBreakdown(expenses []models.Expense) []CategorySpend {
	sums := make(map[string]float64)
	for _, e := range expenses {
		sums[e.Category] += e.Amount
	}

	breakdown := make([]CategorySpend, 0, len(sums))
	for category, spent := range sums {
		breakdown = append(breakdown, CategorySpend{Category: category, Spent: spent})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Spent != breakdown[j].Spent {
			return breakdown[i].Spent > breakdown[j].Spent
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// RecentTransactions returns the n most recently dated transactions.
func RecentTransactions(txns []models.Transaction, n int) []models.Transaction {
	sorted := make([]models.Transaction, len(txns))
	copy(sorted, txns)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date.Time) {
			return sorted[i].Date.After(sorted[j].Date.Time)
		}
		return sorted[i].ID > sorted[j].ID
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// TotalsByType sums transaction amounts per type across all time.
func TotalsByType(txns []models.Transaction) []TypeTotal {
	sums := make(map[string]float64)
	for _, t := range txns {
		sums[t.Type] += t.Amount
	}

	totals := make([]TypeTotal, 0, len(sums))
	for typ, total := range sums {
		totals = append(totals, TypeTotal{Type: typ, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Type < totals[j].Type
	})
	return totals
}

// ByCategoryType sums transaction amounts per (category, type) pair,
// sorted by total descending.
func ByCategoryType(txns []models.Transaction) []CategoryTypeTotal {
	type key struct {
		category string
		typ      string
	}
	sums := make(map[key]float64)
	for _, t := range txns {
		sums[key{category: t.Category, typ: t.Type}] += t.Amount
	}

	totals := make([]CategoryTypeTotal, 0, len(sums))
	for k, total := range sums {
		totals = append(totals, CategoryTypeTotal{Category: k.category, Type: k.typ, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		if totals[i].Category != totals[j].Category {
			return totals[i].Category < totals[j].Category
		}
		return totals[i].Type < totals[j].Type
	})
	return totals
}
