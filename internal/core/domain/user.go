package domain

import (
	"errors"
	"time"
)

// Role classifies what an authenticated actor is allowed to do.
type Role string

const (
	RoleEntrepreneur Role = "entrepreneur"
	RoleInvestor     Role = "investor"
	RoleAdmin        Role = "admin"
)

// IsValid reports whether r is one of the three known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleEntrepreneur, RoleInvestor, RoleAdmin:
		return true
	}
	return false
}

var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrInvalidRole = errors.New("invalid role")
var ErrForbidden = errors.New("access forbidden")
var ErrUserNotFound = errors.New("user not found")

// User models a registered account. PasswordHash never leaves the process:
// it is excluded from JSON and stripped before any service returns a user.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Firstname    string    `json:"firstname,omitempty"`
	Lastname     string    `json:"lastname,omitempty"`
	Role         Role      `json:"role"`
	InterestIDs  []string  `json:"interest_ids,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitized returns a copy with the password hash stripped, safe to hand to
// transport layers.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

// Claims is the verified payload of a session token.
type Claims struct {
	Subject string
	Email   string
	Role    Role
}

// Authorize allows the call iff no roles are required or the caller holds one
// of them. Pure function: all state lives in the claims.
func (c Claims) Authorize(required ...Role) error {
	if len(required) == 0 {
		return nil
	}
	for _, r := range required {
		if c.Role == r {
			return nil
		}
	}
	return ErrForbidden
}

// AuthorizeOwnership allows the resource's creator and any admin.
func (c Claims) AuthorizeOwnership(ownerID string) error {
	if c.Role == RoleAdmin || c.Subject == ownerID {
		return nil
	}
	return ErrForbidden
}
