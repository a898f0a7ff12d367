package ports

import "github.com/pharmatrack/inventory-auth/internal/core/domain"

// PasswordHasher is a one-way salted hash with constant-time verification.
// Implementations never retain or log the plaintext.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenClaims is the claim set embedded in every issued token.
type TokenClaims struct {
	UserID  string
	Email   string
	Role    domain.Role
	TokenID string
}

// TokenIssuer mints and verifies the bearer tokens clients hold between
// requests. Parse returns domain.ErrTokenInvalid for every failure mode
// (signature, algorithm, issuer, audience, expiry) so callers cannot leak
// which check rejected the token.
type TokenIssuer interface {
	Issue(userID, email string, role domain.Role) (string, error)
	Parse(token string) (*TokenClaims, error)
}
