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

func CreateExpense(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)
		var req struct {
			Title       string       `json:"title"`
			Description string       `json:"description"`
			Amount      *float64     `json:"amount"`
			Category    string       `json:"category"`
			Date        *models.Date `json:"date"`
			Status      string       `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create expense request body for user %d: %v", userID, err)
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		if req.Title == "" || req.Amount == nil || req.Category == "" || req.Date == nil {
			writeError(w, http.StatusBadRequest, "title, amount, category and date are required")
			return
		}
		if req.Status == "" {
			req.Status = models.ExpenseStatusPending
		}
		if !models.ValidExpenseStatus(req.Status) {
			writeError(w, http.StatusBadRequest, "status must be pending, approved or rejected")
			return
		}
		expense := &models.Expense{
			UserID:      userID,
			Title:       req.Title,
			Description: req.Description,
			Amount:      *req.Amount,
			Category:    req.Category,
			Date:        *req.Date,
			Status:      req.Status,
		}
		created, err := s.CreateExpense(r.Context(), expense)
		if err != nil {
			log.Printf("ERROR: Failed to create expense for user %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "failed to create expense")
			return
		}
		cache.InvalidateUser(userID)
		log.Printf("INFO: Created expense id %d for user %d, category %s", created.ID, userID, created.Category)
		writeJSON(w, http.StatusCreated, created)
	}
}

func GetAllExpenses(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)
		expenses, err := s.ListExpenses(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to get expenses for user %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "failed to get expenses")
			return
		}
		if expenses == nil {
			expenses = []models.Expense{}
		}
		writeJSON(w, http.StatusOK, expenses)
	}
}

func UpdateExpense(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)
		expenseIDStr := chi.URLParam(r, "expense_id")
		expenseID, err := strconv.Atoi(expenseIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid expense id param: %s", expenseIDStr)
			writeError(w, http.StatusBadRequest, "invalid expense id")
			return
		}
		var patch models.ExpensePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			log.Printf("ERROR: Failed to decode update expense request body for user %d: %v", userID, err)
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		if patch.Status != nil && !models.ValidExpenseStatus(*patch.Status) {
			writeError(w, http.StatusBadRequest, "status must be pending, approved or rejected")
			return
		}
		updated, err := s.UpdateExpense(r.Context(), userID, expenseID, patch)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				writeError(w, http.StatusNotFound, "expense not found")
				return
			}
			log.Printf("ERROR: Failed to update expense id %d for user %d: %v", expenseID, userID, err)
			writeError(w, http.StatusInternalServerError, "failed to update expense")
			return
		}
		cache.InvalidateUser(userID)
		log.Printf("INFO: Updated expense id %d for user %d", updated.ID, userID)
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteExpense(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)
		expenseIDStr := chi.URLParam(r, "expense_id")
		expenseID, err := strconv.Atoi(expenseIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid expense id param: %s", expenseIDStr)
			writeError(w, http.StatusBadRequest, "invalid expense id")
			return
		}
		if err := s.DeleteExpense(r.Context(), userID, expenseID); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				writeError(w, http.StatusNotFound, "expense not found")
				return
			}
			log.Printf("ERROR: Failed to delete expense id %d for user %d: %v", expenseID, userID, err)
			writeError(w, http.StatusInternalServerError, "failed to delete expense")
			return
		}
		cache.InvalidateUser(userID)
		log.Printf("INFO: Deleted expense id %d for user %d", expenseID, userID)
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
