package db

import (
	"context"
	"errors"
	"time"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateTransaction(ctx context.Context, txn *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, type, amount, category, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, type, amount, category, date, created_at, updated_at
	`
	var t models.Transaction
	err := s.Pool.QueryRow(ctx, query, txn.UserID, txn.Type, txn.Amount, txn.Category, txn.Date.Time).
		Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Category, &t.Date.Time, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTransactions returns all of a user's transactions sorted by
// date descending, the order the dashboard's recent widget wants.
func (s *Store) ListTransactions(ctx context.Context, userID int) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, type, amount, category, date, created_at, updated_at
		FROM transactions WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`
	rows, err := s.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Category, &t.Date.Time, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (s *Store) UpdateTransaction(ctx context.Context, userID, txnID int, patch models.TransactionPatch) (*models.Transaction, error) {
	var date *time.Time
	if patch.Date != nil {
		date = &patch.Date.Time
	}
	query := `
		UPDATE transactions
		SET type = COALESCE($1, type),
		    amount = COALESCE($2, amount),
		    category = COALESCE($3, category),
		    date = COALESCE($4, date),
		    updated_at = NOW()
		WHERE id = $5 AND user_id = $6
		RETURNING id, user_id, type, amount, category, date, created_at, updated_at
	`
	var t models.Transaction
	err := s.Pool.QueryRow(ctx, query, patch.Type, patch.Amount, patch.Category, date, txnID, userID).
		Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Category, &t.Date.Time, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, userID, txnID int) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	cmd, err := s.Pool.Exec(ctx, query, txnID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
