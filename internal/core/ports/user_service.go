package ports

import (
	"context"

	"github.com/venturehub/investment-api/internal/core/domain"
)

// UpdateProfileInput covers the mutable profile fields. Role is deliberately
// absent: roles are immutable after registration.
type UpdateProfileInput struct {
	Firstname *string
	Lastname  *string
	Password  *string
}

type UserService interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, claims domain.Claims, id string, input UpdateProfileInput) (*domain.User, error)
	Remove(ctx context.Context, claims domain.Claims, id string) error
	AddInterest(ctx context.Context, claims domain.Claims, interestID string) (*domain.User, error)
	RemoveInterest(ctx context.Context, claims domain.Claims, interestID string) (*domain.User, error)
}
