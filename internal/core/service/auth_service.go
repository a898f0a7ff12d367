package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pharmatrack/inventory-auth/internal/api/metrics"
	"github.com/pharmatrack/inventory-auth/internal/core/domain"
	"github.com/pharmatrack/inventory-auth/internal/core/ports"
)

// AuthService implements registration, login, and profile lookup.
type AuthService struct {
	repo   ports.AuthRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	cache  ports.ProfileCache
	log    zerolog.Logger

	// dummyHash is compared against when a login email matches no user, so
	// the miss path costs one verification just like a wrong password.
	dummyHash string
}

// NewAuthService wires the credential store, password hasher, and token
// issuer together. cache may be nil; profile lookups then always hit the
// repository.
func NewAuthService(repo ports.AuthRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, cache ports.ProfileCache, log zerolog.Logger) *AuthService {
	// Hash a throwaway random password once; it belongs to no account, so
	// verifying against it can never succeed.
	dummy, err := hasher.Hash(uuid.NewString())
	if err != nil {
		dummy = ""
	}
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, cache: cache, log: log, dummyHash: dummy}
}

// Register creates a user and issues a token for the new identity.
// Role defaults to customer when absent. The repository's unique email
// index makes the existence check and the insert one atomic step, so a
// duplicate registration fails with ErrEmailTaken and no partial write.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if in.FullName == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        domain.NormalizeEmail(in.Email),
		PasswordHash: hash,
		FullName:     in.FullName,
		Phone:        in.Phone,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}
	metrics.RegistrationsTotal.WithLabelValues(string(role)).Inc()

	return s.issue(user)
}

// Login authenticates by email and password. A nonexistent email and a
// wrong password return the same ErrInvalidCredentials, and the miss path
// burns a bcrypt comparison against a cost-matched dummy hash so the two
// take comparable time.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		s.hasher.Verify(password, s.dummyHash)
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return s.issue(user)
}

// Me returns the profile for an authenticated user id, read through the
// cache when one is configured. Cache failures are logged and fall back to
// the repository.
func (s *AuthService) Me(ctx context.Context, userID string) (*domain.Profile, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("profile cache read failed")
		} else if cached != nil {
			metrics.ProfileCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.ProfileCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := user.Profile()

	if s.cache != nil {
		if err := s.cache.Set(ctx, &profile); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("profile cache write failed")
		}
	}
	return &profile, nil
}

func (s *AuthService) issue(user *domain.User) (*ports.AuthResult, error) {
	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	metrics.TokensIssuedTotal.Inc()
	return &ports.AuthResult{Token: token, Profile: user.Profile()}, nil
}
