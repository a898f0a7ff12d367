package ports

import (
	"context"

	"github.com/pharmatrack/inventory-auth/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. Role is
// optional and defaults to customer.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Phone    string
	Role     string
}

// AuthResult pairs an issued token with the profile it was issued for.
// The two always travel together so clients can persist them atomically.
type AuthResult struct {
	Token   string
	Profile domain.Profile
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context, userID string) (*domain.Profile, error)
}
