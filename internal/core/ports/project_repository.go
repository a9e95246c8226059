package ports

import (
	"context"

	"github.com/venturehub/investment-api/internal/core/domain"
)

// ProjectRepository defines the persistence interface for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Project, error)
	// FindByInterests returns projects tagged with at least one of the given
	// interest ids.
	FindByInterests(ctx context.Context, interestIDs []string) ([]domain.Project, error)
	Update(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
