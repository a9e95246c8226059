package ports

import (
	"context"

	"github.com/venturehub/investment-api/internal/core/domain"
)

// InterestRepository defines the persistence interface for the interest
// catalog.
type InterestRepository interface {
	Create(ctx context.Context, interest *domain.Interest) (*domain.Interest, error)
	FindByID(ctx context.Context, id string) (*domain.Interest, error)
	FindAll(ctx context.Context) ([]domain.Interest, error)
	Update(ctx context.Context, interest *domain.Interest) (*domain.Interest, error)
	Delete(ctx context.Context, id string) error
}
