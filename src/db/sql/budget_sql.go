package db

import (
	"context"
	"errors"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateBudget(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	query := `
		INSERT INTO budgets (user_id, category, amount, spent, period)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, category, amount, spent, period, created_at, updated_at
	`
	var b models.Budget
	err := s.Pool.QueryRow(ctx, query, budget.UserID, budget.Category, budget.Amount, budget.Spent, budget.Period).
		Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Spent, &b.Period, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Store) ListBudgets(ctx context.Context, userID int) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, category, amount, spent, period, created_at, updated_at
		FROM budgets WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Spent, &b.Period, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// UpdateBudget applies a partial merge: nil patch fields keep their
// stored values. Returns ErrNotFound when the id is absent or owned
// by another user.
func (s *Store) UpdateBudget(ctx context.Context, userID, budgetID int, patch models.BudgetPatch) (*models.Budget, error) {
	query := `
		UPDATE budgets
		SET category = COALESCE($1, category),
		    amount = COALESCE($2, amount),
		    spent = COALESCE($3, spent),
		    period = COALESCE($4, period),
		    updated_at = NOW()
		WHERE id = $5 AND user_id = $6
		RETURNING id, user_id, category, amount, spent, period, created_at, updated_at
	`
	var b models.Budget
	err := s.Pool.QueryRow(ctx, query, patch.Category, patch.Amount, patch.Spent, patch.Period, budgetID, userID).
		Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Spent, &b.Period, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (s *Store) DeleteBudget(ctx context.Context, userID, budgetID int) error {
	query := `DELETE FROM budgets WHERE id = $1 AND user_id = $2`
	cmd, err := s.Pool.Exec(ctx, query, budgetID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
