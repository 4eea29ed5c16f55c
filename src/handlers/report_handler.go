package handlers

import (
	"log"
	"net/http"

	cache "fintrack-server/src/db"
	"fintrack-server/src/stats"
)

// GetReports serves the full-history aggregates: totals by type,
// grouped sums by (year, month, type) and by (category, type).
func GetReports(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)

		if cached, ok := cache.GetReportCache(userID); ok {
			if report, ok := cached.(stats.Report); ok {
				writeJSON(w, http.StatusOK, report)
				return
			}
		}

		txns, err := s.ListTransactions(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for reports, user %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "failed to compute reports")
			return
		}

		report := stats.BuildReport(txns)
		cache.SetReportCache(userID, report)
		writeJSON(w, http.StatusOK, report)
	}
}
