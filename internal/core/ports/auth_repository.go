package ports

import (
	"context"

	"github.com/pharmatrack/inventory-auth/internal/core/domain"
)

// AuthRepository defines the interface for user credential persistence.
// Emails passed in are expected to be pre-normalized by the caller.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Insert persists a new user. It must fail with domain.ErrEmailTaken,
	// without any partial write, when the email is already present.
	Insert(ctx context.Context, user *domain.User) error
}
