package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pharmatrack/inventory-auth/internal/core/domain"
	"github.com/pharmatrack/inventory-auth/internal/core/ports"
)

// TokenConfig carries the signing material and claim constants for the
// issuer. It is passed explicitly at construction; there is no package-level
// secret.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Claims is the JWT payload for a pharmacy session token.
type Claims struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer implements ports.TokenIssuer with HS256-signed JWTs.
type JWTIssuer struct {
	cfg TokenConfig
}

func NewJWTIssuer(cfg TokenConfig) *JWTIssuer {
	if cfg.TTL <= 0 {
		cfg.TTL = time.Hour
	}
	return &JWTIssuer{cfg: cfg}
}

// Issue mints a signed token for the identity. Each token carries a random
// jti so two tokens issued within the same second remain distinguishable.
func (i *JWTIssuer) Issue(userID, email string, role domain.Role) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			Issuer:    i.cfg.Issuer,
			Audience:  jwt.ClaimStrings{i.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.cfg.TTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(i.cfg.Secret))
}

// Parse verifies signature, algorithm, issuer, audience, and expiry. Any
// failure collapses into domain.ErrTokenInvalid; the HTTP layer surfaces all
// of them identically as unauthenticated.
func (i *JWTIssuer) Parse(token string) (*ports.TokenClaims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(i.cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.cfg.Issuer),
		jwt.WithAudience(i.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	return &ports.TokenClaims{
		UserID:  claims.Subject,
		Email:   claims.Email,
		Role:    claims.Role,
		TokenID: claims.ID,
	}, nil
}
