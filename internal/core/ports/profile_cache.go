package ports

import (
	"context"

	"github.com/pharmatrack/inventory-auth/internal/core/domain"
)

// ProfileCache is a read-through cache of user profiles keyed by user id.
// Get returns (nil, nil) on a miss. User records are immutable after
// creation, so cached entries can only age out, never go stale.
type ProfileCache interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Set(ctx context.Context, profile *domain.Profile) error
}
