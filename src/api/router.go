package api

import (
	"net/http"

	"fintrack-server/src/config"
	"fintrack-server/src/handlers"
	"fintrack-server/src/middleware"

	"github.com/go-chi/chi/v5"
)

func NewRouter(store handlers.Store, cfg config.Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	secret := []byte(cfg.JWTSecret)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", handlers.Register(store, secret))
		r.Post("/auth/login", handlers.Login(store, secret))

		// Protected routes
		r.With(middleware.JWTAuth(secret)).Group(func(r chi.Router) {
			// Budgets
			r.Get("/budgets", handlers.GetAllBudgets(store))
			r.Post("/budgets", handlers.CreateBudget(store))
			r.Put("/budgets/{budget_id}", handlers.UpdateBudget(store))
			r.Delete("/budgets/{budget_id}", handlers.DeleteBudget(store))

			// Expenses
			r.Get("/expenses", handlers.GetAllExpenses(store))
			r.Post("/expenses", handlers.CreateExpense(store))
			r.Put("/expenses/{expense_id}", handlers.UpdateExpense(store))
			r.Delete("/expenses/{expense_id}", handlers.DeleteExpense(store))

			// Transactions
			r.Get("/transactions", handlers.GetAllTransactions(store))
			r.Post("/transactions", handlers.CreateTransaction(store))
			r.Put("/transactions/{transaction_id}", handlers.UpdateTransaction(store))
			r.Delete("/transactions/{transaction_id}", handlers.DeleteTransaction(store))

			// Aggregates
			r.Get("/dashboard/stats", handlers.GetDashboardStats(store))
			r.Get("/reports", handlers.GetReports(store))

			// User
			r.Get("/users/me", handlers.GetMe(store))
			r.Put("/users/me", handlers.UpdateMe(store))
			r.Put("/users/me/password", handlers.ChangePassword(store))
		})
	})

	return r
}
