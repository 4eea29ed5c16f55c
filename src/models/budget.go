package models

import "time"

type Budget struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Spent     float64   `json:"spent"`
	Period    string    `json:"period"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BudgetPatch carries the fields of a partial update. Nil fields are
// left untouched by the store.
type BudgetPatch struct {
	Category *string  `json:"category"`
	Amount   *float64 `json:"amount"`
	Spent    *float64 `json:"spent"`
	Period   *string  `json:"period"`
}
