package handlers

import (
	"context"

	"fintrack-server/src/models"
)

// Store is the persistence surface the handlers depend on. The
// production implementation lives in src/db/sql; tests substitute an
// in-memory fake.
type Store interface {
	CreateBudget(ctx context.Context, budget *models.Budget) (*models.Budget, error)
	ListBudgets(ctx context.Context, userID int) ([]models.Budget, error)
	UpdateBudget(ctx context.Context, userID, budgetID int, patch models.BudgetPatch) (*models.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID int) error

	CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	ListExpenses(ctx context.Context, userID int) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, userID, expenseID int, patch models.ExpensePatch) (*models.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID int) error

	CreateTransaction(ctx context.Context, txn *models.Transaction) (*models.Transaction, error)
	ListTransactions(ctx context.Context, userID int) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, txnID int, patch models.TransactionPatch) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, txnID int) error

	CreateUser(ctx context.Context, name, email string, passwordHash []byte) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserProfile(ctx context.Context, id int, name, email string) (*models.User, error)
	UpdateUserPassword(ctx context.Context, id int, passwordHash []byte) error
}
