package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/venturehub/investment-api/internal/core/domain"
	"github.com/venturehub/investment-api/internal/core/ports"
)

// ProjectService implements project CRUD with ownership enforcement.
type ProjectService struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, users ports.UserRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, users: users, logger: logger}
}

// Create publishes a new project owned by the caller. Only entrepreneurs may
// create projects.
func (s *ProjectService) Create(ctx context.Context, claims domain.Claims, input ports.CreateProjectInput) (*domain.Project, error) {
	if err := claims.Authorize(domain.RoleEntrepreneur); err != nil {
		return nil, err
	}
	if input.Budget < 0 {
		return nil, domain.ErrInvalidBudget
	}

	project := &domain.Project{
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		Category:    input.Category,
		OwnerID:     claims.Subject,
		InterestIDs: input.InterestIDs,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", created.ID).Str("owner_id", claims.Subject).Msg("project created")
	return created, nil
}

func (s *ProjectService) FindAll(ctx context.Context) ([]domain.Project, error) {
	return s.projects.FindAll(ctx)
}

func (s *ProjectService) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.FindByID(ctx, id)
}

func (s *ProjectService) FindByOwner(ctx context.Context, ownerID string) ([]domain.Project, error) {
	return s.projects.FindByOwner(ctx, ownerID)
}

// FindRecommended matches projects against the caller's declared interests.
// Callers with no interests get the full catalog back.
func (s *ProjectService) FindRecommended(ctx context.Context, claims domain.Claims) ([]domain.Project, error) {
	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if len(user.InterestIDs) == 0 {
		return s.projects.FindAll(ctx)
	}
	return s.projects.FindByInterests(ctx, user.InterestIDs)
}

func (s *ProjectService) Update(ctx context.Context, claims domain.Claims, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := claims.AuthorizeOwnership(project.OwnerID); err != nil {
		return nil, err
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Budget != nil {
		if *input.Budget < 0 {
			return nil, domain.ErrInvalidBudget
		}
		project.Budget = *input.Budget
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	if input.InterestIDs != nil {
		project.InterestIDs = input.InterestIDs
	}

	updated, err := s.projects.Update(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Str("project_id", id).Msg("failed to update project")
		return nil, err
	}
	return updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, claims domain.Claims, id string) error {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := claims.AuthorizeOwnership(project.OwnerID); err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("project_id", id).Msg("failed to delete project")
		return err
	}

	s.logger.Info().Str("project_id", id).Str("deleted_by", claims.Subject).Msg("project deleted")
	return nil
}
