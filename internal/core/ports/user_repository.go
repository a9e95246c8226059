package ports

import (
	"context"

	"github.com/venturehub/investment-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
// Create must surface domain.ErrEmailTaken when the unique email constraint
// is violated, including under concurrent registration.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
