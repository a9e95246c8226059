package domain

import (
	"errors"
	"time"
)

var ErrInvestmentNotFound = errors.New("investment not found")
var ErrSelfInvestment = errors.New("cannot invest in own project")
var ErrInvalidAmount = errors.New("amount must be positive")

// Investment is a ledger row recording that an investor put money into a
// project. Immutable once created; only its investor (or an admin) may
// delete it.
type Investment struct {
	ID             string    `json:"id"`
	Amount         float64   `json:"amount"`
	ProjectID      string    `json:"project_id"`
	InvestorID     string    `json:"investor_id"`
	IdempotencyKey string    `json:"idempotency_key,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
