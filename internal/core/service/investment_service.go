package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/venturehub/investment-api/internal/core/domain"
	"github.com/venturehub/investment-api/internal/core/ports"
)

// InvestmentService records and deletes ledger entries, enforcing the
// investor-role, self-investment and positive-amount rules.
type InvestmentService struct {
	investments ports.InvestmentRepository
	projects    ports.ProjectRepository
	dedup       ports.DedupChecker
	logger      zerolog.Logger
}

// NewInvestmentService wires the service. dedup may be nil, in which case
// idempotency falls back entirely to the repository's key lookup.
func NewInvestmentService(investments ports.InvestmentRepository, projects ports.ProjectRepository, dedup ports.DedupChecker, logger zerolog.Logger) *InvestmentService {
	return &InvestmentService{investments: investments, projects: projects, dedup: dedup, logger: logger}
}

// Create records an investment by the caller against a project.
// Rules, in order: caller must be an investor; amount must be strictly
// positive; the project must exist; investing in one's own project is
// forbidden. A repeated Idempotency-Key returns the original row.
func (s *InvestmentService) Create(ctx context.Context, claims domain.Claims, input ports.CreateInvestmentInput) (*ports.CreateInvestmentResult, error) {
	if err := claims.Authorize(domain.RoleInvestor); err != nil {
		return nil, err
	}
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	if input.IdempotencyKey != "" {
		if existing := s.replay(ctx, input.IdempotencyKey); existing != nil {
			return &ports.CreateInvestmentResult{Investment: existing, AlreadyExisted: true}, nil
		}
	}

	project, err := s.projects.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID == claims.Subject {
		return nil, domain.ErrSelfInvestment
	}

	investment := &domain.Investment{
		Amount:         input.Amount,
		ProjectID:      project.ID,
		InvestorID:     claims.Subject,
		IdempotencyKey: input.IdempotencyKey,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.investments.Create(ctx, investment)
	if err != nil {
		s.logger.Error().Err(err).Str("project_id", input.ProjectID).Msg("failed to record investment")
		return nil, err
	}

	if input.IdempotencyKey != "" && s.dedup != nil {
		if err := s.dedup.Mark(ctx, input.IdempotencyKey); err != nil {
			s.logger.Warn().Err(err).Msg("failed to mark idempotency key")
		}
	}

	s.logger.Info().
		Str("investment_id", created.ID).
		Str("project_id", created.ProjectID).
		Str("investor_id", created.InvestorID).
		Float64("amount", created.Amount).
		Msg("investment recorded")

	return &ports.CreateInvestmentResult{Investment: created}, nil
}

// replay returns the previously created investment for a seen idempotency
// key, or nil when the key is new. The Redis check is only a fast path; the
// store lookup is authoritative.
func (s *InvestmentService) replay(ctx context.Context, key string) *domain.Investment {
	if s.dedup != nil {
		seen, err := s.dedup.IsDuplicate(ctx, key)
		if err != nil {
			s.logger.Warn().Err(err).Msg("idempotency check failed, falling back to store")
		} else if !seen {
			return nil
		}
	}

	existing, err := s.investments.FindByIdempotencyKey(ctx, key)
	if err != nil || existing == nil {
		return nil
	}
	s.logger.Info().Str("idempotency_key", key).Str("investment_id", existing.ID).Msg("idempotent replay")
	return existing
}

// FindAll lists every investment. Admin only.
func (s *InvestmentService) FindAll(ctx context.Context, claims domain.Claims) ([]domain.Investment, error) {
	if err := claims.Authorize(domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.investments.FindAll(ctx)
}

func (s *InvestmentService) FindByID(ctx context.Context, id string) (*domain.Investment, error) {
	return s.investments.FindByID(ctx, id)
}

func (s *InvestmentService) FindByInvestor(ctx context.Context, investorID string) ([]domain.Investment, error) {
	return s.investments.FindByInvestor(ctx, investorID)
}

func (s *InvestmentService) FindByProject(ctx context.Context, projectID string) ([]domain.Investment, error) {
	return s.investments.FindByProject(ctx, projectID)
}

// Delete removes a ledger entry. The ownership check runs against the
// investment's investor, not the project owner.
func (s *InvestmentService) Delete(ctx context.Context, claims domain.Claims, id string) error {
	investment, err := s.investments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := claims.AuthorizeOwnership(investment.InvestorID); err != nil {
		return err
	}

	if err := s.investments.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrInvestmentNotFound) {
			s.logger.Error().Err(err).Str("investment_id", id).Msg("failed to delete investment")
		}
		return err
	}

	s.logger.Info().Str("investment_id", id).Str("deleted_by", claims.Subject).Msg("investment deleted")
	return nil
}
