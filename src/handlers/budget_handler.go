package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	cache "fintrack-server/src/db"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"

	"github.com/go-chi/chi/v5"
)

func CreateBudget(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)
		var req struct {
			Category string   `json:"category"`
			Amount   *float64 `json:"amount"`
			Period   string   `json:"period"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create budget request body for user %d: %v", userID, err)
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		if req.Category == "" || req.Amount == nil {
			writeError(w, http.StatusBadRequest, "category and amount are required")
			return
		}
		if req.Period == "" {
			req.Period = "monthly"
		}
		budget := &models.Budget{
			UserID:   userID,
			Category: req.Category,
			Amount:   *req.Amount,
			Spent:    0, // always starts at zero, mutated only by explicit updates
			Period:   req.Period,
		}
		created, err := s.CreateBudget(r.Context(), budget)
		if err != nil {
			log.Printf("ERROR: Failed to create budget for user %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "failed to create budget")
			return
		}
		cache.InvalidateUser(userID)
		log.Printf("INFO: Created budget id %d for user %d, category %s", created.ID, userID, created.Category)
		writeJSON(w, http.StatusCreated, created)
	}
}

func GetAllBudgets(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)
		budgets, err := s.ListBudgets(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to get budgets for user %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "failed to get budgets")
			return
		}
		if budgets == nil {
			budgets = []models.Budget{}
		}
		writeJSON(w, http.StatusOK, budgets)
	}
}

func UpdateBudget(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)
		budgetIDStr := chi.URLParam(r, "budget_id")
		budgetID, err := strconv.Atoi(budgetIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid budget id param: %s", budgetIDStr)
			writeError(w, http.StatusBadRequest, "invalid budget id")
			return
		}
		var patch models.BudgetPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			log.Printf("ERROR: Failed to decode update budget request body for user %d: %v", userID, err)
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		updated, err := s.UpdateBudget(r.Context(), userID, budgetID, patch)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				writeError(w, http.StatusNotFound, "budget not found")
				return
			}
			log.Printf("ERROR: Failed to update budget id %d for user %d: %v", budgetID, userID, err)
			writeError(w, http.StatusInternalServerError, "failed to update budget")
			return
		}
		cache.InvalidateUser(userID)
		log.Printf("INFO: Updated budget id %d for user %d", updated.ID, userID)
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteBudget(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)
		budgetIDStr := chi.URLParam(r, "budget_id")
		budgetID, err := strconv.Atoi(budgetIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid budget id param: %s", budgetIDStr)
			writeError(w, http.StatusBadRequest, "invalid budget id")
			return
		}
		if err := s.DeleteBudget(r.Context(), userID, budgetID); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				writeError(w, http.StatusNotFound, "budget not found")
				return
			}
			log.Printf("ERROR: Failed to delete budget id %d for user %d: %v", budgetID, userID, err)
			writeError(w, http.StatusInternalServerError, "failed to delete budget")
			return
		}
		cache.InvalidateUser(userID)
		log.Printf("INFO: Deleted budget id %d for user %d", budgetID, userID)
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
