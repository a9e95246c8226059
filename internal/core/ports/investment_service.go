package ports

import (
	"context"

	"github.com/venturehub/investment-api/internal/core/domain"
)

// CreateInvestmentInput carries a new ledger entry. IdempotencyKey is
// optional; when present, a repeated submission with the same key returns the
// originally created investment instead of a second row.
type CreateInvestmentInput struct {
	ProjectID      string
	Amount         float64
	IdempotencyKey string
}

// CreateInvestmentResult reports the created (or replayed) ledger row.
// AlreadyExisted is true when an idempotency key matched a previous
// submission and no new row was written.
type CreateInvestmentResult struct {
	Investment     *domain.Investment
	AlreadyExisted bool
}

type InvestmentService interface {
	Create(ctx context.Context, claims domain.Claims, input CreateInvestmentInput) (*CreateInvestmentResult, error)
	FindAll(ctx context.Context, claims domain.Claims) ([]domain.Investment, error)
	FindByID(ctx context.Context, id string) (*domain.Investment, error)
	FindByInvestor(ctx context.Context, investorID string) ([]domain.Investment, error)
	FindByProject(ctx context.Context, projectID string) ([]domain.Investment, error)
	Delete(ctx context.Context, claims domain.Claims, id string) error
}
