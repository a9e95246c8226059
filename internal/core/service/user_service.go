package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/venturehub/investment-api/internal/core/domain"
	"github.com/venturehub/investment-api/internal/core/ports"
)

// UserService covers profile management, interest links and the admin user
// view.
type UserService struct {
	users     ports.UserRepository
	interests ports.InterestRepository
	logger    zerolog.Logger
}

func NewUserService(users ports.UserRepository, interests ports.InterestRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, interests: interests, logger: logger}
}

func (s *UserService) FindAll(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *UserService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// UpdateProfile mutates names and password only. The role field has no
// update path anywhere in the API.
func (s *UserService) UpdateProfile(ctx context.Context, claims domain.Claims, id string, input ports.UpdateProfileInput) (*domain.User, error) {
	if err := claims.AuthorizeOwnership(id); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Firstname != nil {
		user.Firstname = *input.Firstname
	}
	if input.Lastname != nil {
		user.Lastname = *input.Lastname
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to update profile")
		return nil, err
	}
	return updated.Sanitized(), nil
}

// Remove deletes a user account. Admin only.
func (s *UserService) Remove(ctx context.Context, claims domain.Claims, id string) error {
	if err := claims.Authorize(domain.RoleAdmin); err != nil {
		return err
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Str("deleted_by", claims.Subject).Msg("user removed")
	return nil
}

// AddInterest links an interest to the caller's own profile. Adding an
// already-linked interest is a no-op.
func (s *UserService) AddInterest(ctx context.Context, claims domain.Claims, interestID string) (*domain.User, error) {
	if _, err := s.interests.FindByID(ctx, interestID); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}

	for _, id := range user.InterestIDs {
		if id == interestID {
			return user.Sanitized(), nil
		}
	}

	user.InterestIDs = append(user.InterestIDs, interestID)
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	return updated.Sanitized(), nil
}

func (s *UserService) RemoveInterest(ctx context.Context, claims domain.Claims, interestID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}

	kept := user.InterestIDs[:0]
	for _, id := range user.InterestIDs {
		if id != interestID {
			kept = append(kept, id)
		}
	}
	user.InterestIDs = kept
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	return updated.Sanitized(), nil
}
