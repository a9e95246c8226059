package ports

import (
	"context"

	"github.com/venturehub/investment-api/internal/core/domain"
)

// CreateProjectInput carries the caller-supplied fields of a new project.
// The owner is always taken from the caller's claims, never from the payload.
type CreateProjectInput struct {
	Title       string
	Description string
	Budget      float64
	Category    string
	InterestIDs []string
}

// UpdateProjectInput uses pointers so absent fields are left untouched.
type UpdateProjectInput struct {
	Title       *string
	Description *string
	Budget      *float64
	Category    *string
	InterestIDs []string
}

type ProjectService interface {
	Create(ctx context.Context, claims domain.Claims, input CreateProjectInput) (*domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Project, error)
	// FindRecommended returns projects sharing an interest tag with the
	// caller. Callers with no declared interests get all projects back; the
	// fallback is policy, not an error.
	FindRecommended(ctx context.Context, claims domain.Claims) ([]domain.Project, error)
	Update(ctx context.Context, claims domain.Claims, id string, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, claims domain.Claims, id string) error
}
