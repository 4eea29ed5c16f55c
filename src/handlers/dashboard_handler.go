package handlers

import (
	"log"
	"net/http"
	"time"

	cache "fintrack-server/src/db"
	"fintrack-server/src/stats"
)

// GetDashboardStats serves the dashboard widgets: totals, budget
// utilization, six-month trend, category breakdown and the five most
// recent transactions. The assembled payload is cached per user until
// the next write.
func GetDashboardStats(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)

		if cached, ok := cache.GetStatsCache(userID); ok {
			if dashboard, ok := cached.(stats.Dashboard); ok {
				writeJSON(w, http.StatusOK, dashboard)
				return
			}
		}

		budgets, err := s.ListBudgets(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to get budgets for dashboard, user %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "failed to compute dashboard stats")
			return
		}
		expenses, err := s.ListExpenses(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to get expenses for dashboard, user %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "failed to compute dashboard stats")
			return
		}
		txns, err := s.ListTransactions(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for dashboard, user %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "failed to compute dashboard stats")
			return
		}

		dashboard := stats.BuildDashboard(budgets, expenses, txns, time.Now())
		cache.SetStatsCache(userID, dashboard)
		writeJSON(w, http.StatusOK, dashboard)
	}
}
