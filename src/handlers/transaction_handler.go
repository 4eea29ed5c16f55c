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

func CreateTransaction(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)
		var req struct {
			Type     string       `json:"type"`
			Amount   *float64     `json:"amount"`
			Category string       `json:"category"`
			Date     *models.Date `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body for user %d: %v", userID, err)
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		if req.Type == "" || req.Amount == nil || req.Category == "" || req.Date == nil {
			writeError(w, http.StatusBadRequest, "type, amount, category and date are required")
			return
		}
		if !models.ValidTransactionType(req.Type) {
			writeError(w, http.StatusBadRequest, "type must be income or expense")
			return
		}
		txn := &models.Transaction{
			UserID:   userID,
			Type:     req.Type,
			Amount:   *req.Amount,
			Category: req.Category,
			Date:     *req.Date,
		}
		created, err := s.CreateTransaction(r.Context(), txn)
		if err != nil {
			log.Printf("ERROR: Failed to create transaction for user %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "failed to create transaction")
			return
		}
		cache.InvalidateUser(userID)
		log.Printf("INFO: Created transaction id %d for user %d, type %s", created.ID, userID, created.Type)
		writeJSON(w, http.StatusCreated, created)
	}
}

func GetAllTransactions(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)
		txns, err := s.ListTransactions(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for user %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "failed to get transactions")
			return
		}
		if txns == nil {
			txns = []models.Transaction{}
		}
		writeJSON(w, http.StatusOK, txns)
	}
}

func UpdateTransaction(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)
		txnIDStr := chi.URLParam(r, "transaction_id")
		txnID, err := strconv.Atoi(txnIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid transaction id param: %s", txnIDStr)
			writeError(w, http.StatusBadRequest, "invalid transaction id")
			return
		}
		var patch models.TransactionPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			log.Printf("ERROR: Failed to decode update transaction request body for user %d: %v", userID, err)
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		if patch.Type != nil && !models.ValidTransactionType(*patch.Type) {
			writeError(w, http.StatusBadRequest, "type must be income or expense")
			return
		}
		updated, err := s.UpdateTransaction(r.Context(), userID, txnID, patch)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				writeError(w, http.StatusNotFound, "transaction not found")
				return
			}
			log.Printf("ERROR: Failed to update transaction id %d for user %d: %v", txnID, userID, err)
			writeError(w, http.StatusInternalServerError, "failed to update transaction")
			return
		}
		cache.InvalidateUser(userID)
		log.Printf("INFO: Updated transaction id %d for user %d", updated.ID, userID)
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteTransaction(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)
		txnIDStr := chi.URLParam(r, "transaction_id")
		txnID, err := strconv.Atoi(txnIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid transaction id param: %s", txnIDStr)
			writeError(w, http.StatusBadRequest, "invalid transaction id")
			return
		}
		if err := s.DeleteTransaction(r.Context(), userID, txnID); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				writeError(w, http.StatusNotFound, "transaction not found")
				return
			}
			log.Printf("ERROR: Failed to delete transaction id %d for user %d: %v", txnID, userID, err)
			writeError(w, http.StatusInternalServerError, "failed to delete transaction")
			return
		}
		cache.InvalidateUser(userID)
		log.Printf("INFO: Deleted transaction id %d for user %d", txnID, userID)
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
