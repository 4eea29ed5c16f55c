package api

import (
	"context"
	"errors"
	"sync"
	"time"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
)

// fakeStore is an in-memory handlers.Store with the same semantics as
// the SQL layer: owner-scoped reads and writes, partial merges,
// timestamp refreshes and ErrNotFound on misses.
type fakeStore struct {
	mu     sync.Mutex
	nextID int
	clock  time.Time

	budgets      map[int]models.Budget
	expenses     map[int]models.Expense
	transactions map[int]models.Transaction
	users        map[int]models.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		clock:        time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		budgets:      make(map[int]models.Budget),
		expenses:     make(map[int]models.Expense),
		transactions: make(map[int]models.Transaction),
		users:        make(map[int]models.User),
	}
}

func (f *fakeStore) id() int {
	f.nextID++
	return f.nextID
}

// tick guarantees strictly increasing timestamps across calls.
func (f *fakeStore) tick() time.Time {
	f.clock = f.clock.Add(time.Millisecond)
	return f.clock
}

func (f *fakeStore) CreateBudget(_ context.Context, budget *models.Budget) (*models.Budget, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := *budget
	b.ID = f.id()
	now := f.tick()
	b.CreatedAt, b.UpdatedAt = now, now
	f.budgets[b.ID] = b
	return &b, nil
}

func (f *fakeStore) ListBudgets(_ context.Context, userID int) ([]models.Budget, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Budget
	for _, b := range f.budgets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateBudget(_ context.Context, userID, budgetID int, patch models.BudgetPatch) (*models.Budget, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.budgets[budgetID]
	if !ok || b.UserID != userID {
		return nil, db.ErrNotFound
	}
	if patch.Category != nil {
		b.Category = *patch.Category
	}
	if patch.Amount != nil {
		b.Amount = *patch.Amount
	}
	if patch.Spent != nil {
		b.Spent = *patch.Spent
	}
	if patch.Period != nil {
		b.Period = *patch.Period
	}
	b.UpdatedAt = f.tick()
	f.budgets[budgetID] = b
	return &b, nil
}

func (f *fakeStore) DeleteBudget(_ context.Context, userID, budgetID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.budgets[budgetID]
	if !ok || b.UserID != userID {
		return db.ErrNotFound
	}
	delete(f.budgets, budgetID)
	return nil
}

func (f *fakeStore) CreateExpense(_ context.Context, expense *models.Expense) (*models.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := *expense
	e.ID = f.id()
	now := f.tick()
	e.CreatedAt, e.UpdatedAt = now, now
	f.expenses[e.ID] = e
	return &e, nil
}

func (f *fakeStore) ListExpenses(_ context.Context, userID int) ([]models.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Expense
	for _, e := range f.expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateExpense(_ context.Context, userID, expenseID int, patch models.ExpensePatch) (*models.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.expenses[expenseID]
	if !ok || e.UserID != userID {
		return nil, db.ErrNotFound
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Amount != nil {
		e.Amount = *patch.Amount
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Status != nil {
		e.Status = *patch.Status
	}
	e.UpdatedAt = f.tick()
	f.expenses[expenseID] = e
	return &e, nil
}

func (f *fakeStore) DeleteExpense(_ context.Context, userID, expenseID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.expenses[expenseID]
	if !ok || e.UserID != userID {
		return db.ErrNotFound
	}
	delete(f.expenses, expenseID)
	return nil
}

func (f *fakeStore) CreateTransaction(_ context.Context, txn *models.Transaction) (*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := *txn
	t.ID = f.id()
	now := f.tick()
	t.CreatedAt, t.UpdatedAt = now, now
	f.transactions[t.ID] = t
	return &t, nil
}

func (f *fakeStore) ListTransactions(_ context.Context, userID int) ([]models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Transaction
	for _, t := range f.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateTransaction(_ context.Context, userID, txnID int, patch models.TransactionPatch) (*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.transactions[txnID]
	if !ok || t.UserID != userID {
		return nil, db.ErrNotFound
	}
	if patch.Type != nil {
		t.Type = *patch.Type
	}
	if patch.Amount != nil {
		t.Amount = *patch.Amount
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Date != nil {
		t.Date = *patch.Date
	}
	t.UpdatedAt = f.tick()
	f.transactions[txnID] = t
	return &t, nil
}

func (f *fakeStore) DeleteTransaction(_ context.Context, userID, txnID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.transactions[txnID]
	if !ok || t.UserID != userID {
		return db.ErrNotFound
	}
	delete(f.transactions, txnID)
	return nil
}

func (f *fakeStore) CreateUser(_ context.Context, name, email string, passwordHash []byte) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return nil, errors.New(`duplicate key value violates unique constraint "users_email_key"`)
		}
	}
	now := f.tick()
	u := models.User{
		ID:           f.id(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.users[u.ID] = u
	return &u, nil
}

func (f *fakeStore) GetUserByID(_ context.Context, id int) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &u, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeStore) UpdateUserProfile(_ context.Context, id int, name, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	u.Name = name
	u.Email = email
	u.UpdatedAt = f.tick()
	f.users[id] = u
	return &u, nil
}

func (f *fakeStore) UpdateUserPassword(_ context.Context, id int, passwordHash []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return db.ErrNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = f.tick()
	f.users[id] = u
	return nil
}
