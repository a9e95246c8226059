package ports

import (
	"context"

	"github.com/venturehub/investment-api/internal/core/domain"
)

// RegisterInput carries everything needed to create an account.
type RegisterInput struct {
	Email     string
	Password  string
	Firstname string
	Lastname  string
	Role      domain.Role
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed session token plus the
	// authenticated user. Unknown email and wrong password are externally
	// indistinguishable: both return domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
