package ports

import (
	"context"

	"github.com/venturehub/investment-api/internal/core/domain"
)

type InterestService interface {
	FindAll(ctx context.Context) ([]domain.Interest, error)
	FindByID(ctx context.Context, id string) (*domain.Interest, error)
	Create(ctx context.Context, claims domain.Claims, name string) (*domain.Interest, error)
	Update(ctx context.Context, claims domain.Claims, id, name string) (*domain.Interest, error)
	Delete(ctx context.Context, claims domain.Claims, id string) error
}
