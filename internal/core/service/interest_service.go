package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/venturehub/investment-api/internal/core/domain"
	"github.com/venturehub/investment-api/internal/core/ports"
)

// InterestService manages the interest catalog. Reads are open to any
// authenticated caller; mutations are admin only.
type InterestService struct {
	repo   ports.InterestRepository
	logger zerolog.Logger
}

func NewInterestService(repo ports.InterestRepository, logger zerolog.Logger) *InterestService {
	return &InterestService{repo: repo, logger: logger}
}

func (s *InterestService) FindAll(ctx context.Context) ([]domain.Interest, error) {
	return s.repo.FindAll(ctx)
}

func (s *InterestService) FindByID(ctx context.Context, id string) (*domain.Interest, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *InterestService) Create(ctx context.Context, claims domain.Claims, name string) (*domain.Interest, error) {
	if err := claims.Authorize(domain.RoleAdmin); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Interest{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("interest_id", created.ID).Str("name", name).Msg("interest created")
	return created, nil
}

func (s *InterestService) Update(ctx context.Context, claims domain.Claims, id, name string) (*domain.Interest, error) {
	if err := claims.Authorize(domain.RoleAdmin); err != nil {
		return nil, err
	}

	interest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	interest.Name = name
	return s.repo.Update(ctx, interest)
}

func (s *InterestService) Delete(ctx context.Context, claims domain.Claims, id string) error {
	if err := claims.Authorize(domain.RoleAdmin); err != nil {
		return err
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
