package db

import (
	"context"
	"errors"
	"time"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	query := `
		INSERT INTO expenses (user_id, title, description, amount, category, date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, title, description, amount, category, date, status, created_at, updated_at
	`
	var e models.Expense
	err := s.Pool.QueryRow(ctx, query,
		expense.UserID, expense.Title, expense.Description, expense.Amount, expense.Category, expense.Date.Time, expense.Status).
		Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.Amount, &e.Category, &e.Date.Time, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) ListExpenses(ctx context.Context, userID int) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, title, description, amount, category, date, status, created_at, updated_at
		FROM expenses WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.Amount, &e.Category, &e.Date.Time, &e.Status, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *Store) UpdateExpense(ctx context.Context, userID, expenseID int, patch models.ExpensePatch) (*models.Expense, error) {
	var date *time.Time
	if patch.Date != nil {
		date = &patch.Date.Time
	}
	query := `
		UPDATE expenses
		SET title = COALESCE($1, title),
		    description = COALESCE($2, description),
		    amount = COALESCE($3, amount),
		    category = COALESCE($4, category),
		    date = COALESCE($5, date),
		    status = COALESCE($6, status),
		    updated_at = NOW()
		WHERE id = $7 AND user_id = $8
		RETURNING id, user_id, title, description, amount, category, date, status, created_at, updated_at
	`
	var e models.Expense
	err := s.Pool.QueryRow(ctx, query,
		patch.Title, patch.Description, patch.Amount, patch.Category, date, patch.Status, expenseID, userID).
		Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.Amount, &e.Category, &e.Date.Time, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (s *Store) DeleteExpense(ctx context.Context, userID, expenseID int) error {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`
	cmd, err := s.Pool.Exec(ctx, query, expenseID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
