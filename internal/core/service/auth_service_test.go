package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/venturehub/investment-api/internal/core/domain"
	"github.com/venturehub/investment-api/internal/core/ports"
)

func registerInput(email string) ports.RegisterInput {
	return ports.RegisterInput{
		Email:     email,
		Password:  "secret123",
		Firstname: "Alice",
		Lastname:  "Martin",
		Role:      domain.RoleEntrepreneur,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, testLogger)

	user, err := svc.Register(context.Background(), registerInput("alice@x.com"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash != "" {
		t.Fatalf("expected hash stripped from response, got %q", user.PasswordHash)
	}
	if user.Role != domain.RoleEntrepreneur {
		t.Fatalf("unexpected role: %s", user.Role)
	}

	stored, err := repo.FindByEmail(context.Background(), "alice@x.com")
	if err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if stored.PasswordHash == "secret123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour, testLogger)

	input := registerInput("")
	if _, err := svc.Register(context.Background(), input); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}

	input = registerInput("bob@x.com")
	input.Role = "superuser"
	if _, err := svc.Register(context.Background(), input); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour, testLogger)

	if _, err := svc.Register(context.Background(), registerInput("bob@x.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// A different password must not matter.
	input := registerInput("bob@x.com")
	input.Password = "otherpass"
	if _, err := svc.Register(context.Background(), input); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, testLogger)

	input := registerInput("carol@x.com")
	input.Role = domain.RoleInvestor
	created, err := svc.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@x.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.PasswordHash != "" {
		t.Fatalf("expected sanitized user, got %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != created.ID {
		t.Fatalf("expected sub %s, got %v", created.ID, claims["sub"])
	}
	if claims["role"] != string(domain.RoleInvestor) {
		t.Fatalf("expected role investor, got %v", claims["role"])
	}
	if claims["email"] != "carol@x.com" {
		t.Fatalf("expected email claim, got %v", claims["email"])
	}
}

// Wrong password and unknown email must be externally indistinguishable.
func TestAuthService_Login_EnumerationSafe(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour, testLogger)

	if _, err := svc.Register(context.Background(), registerInput("dave@x.com")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPass := svc.Login(context.Background(), "dave@x.com", "badpass")
	_, _, unknown := svc.Login(context.Background(), "ghost@x.com", "secret123")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if unknown != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknown)
	}
	if wrongPass.Error() != unknown.Error() {
		t.Fatalf("errors differ: %q vs %q", wrongPass, unknown)
	}
}

func TestAuthService_TokenExpiry(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Minute, testLogger)

	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return issued })

	if _, err := svc.Register(context.Background(), registerInput("erin@x.com")); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, _, err := svc.Login(context.Background(), "erin@x.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	parse := func(at time.Time) error {
		parser := jwt.NewParser(jwt.WithTimeFunc(func() time.Time { return at }))
		parsed, err := parser.Parse(token, func(token *jwt.Token) (interface{}, error) {
			return []byte("secret"), nil
		})
		if err != nil {
			return err
		}
		if !parsed.Valid {
			return domain.ErrInvalidToken
		}
		return nil
	}

	if err := parse(issued.Add(time.Second)); err != nil {
		t.Fatalf("token should validate right after issuance: %v", err)
	}
	if err := parse(issued.Add(2 * time.Minute)); err == nil {
		t.Fatalf("token should fail after expiry")
	}
}
