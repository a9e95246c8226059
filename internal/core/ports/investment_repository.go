package ports

import (
	"context"

	"github.com/venturehub/investment-api/internal/core/domain"
)

// InvestmentRepository defines the persistence interface for the investment
// ledger.
type InvestmentRepository interface {
	Create(ctx context.Context, investment *domain.Investment) (*domain.Investment, error)
	FindByID(ctx context.Context, id string) (*domain.Investment, error)
	FindAll(ctx context.Context) ([]domain.Investment, error)
	FindByInvestor(ctx context.Context, investorID string) ([]domain.Investment, error)
	FindByProject(ctx context.Context, projectID string) ([]domain.Investment, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Investment, error)
	Delete(ctx context.Context, id string) error
}
