package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/pharmatrack/inventory-auth/internal/core/domain"
)

// State is the session lifecycle. Loading exists only while NewManager
// restores persisted state; it is never re-entered.
type State string

const (
	StateLoading       State = "loading"
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// ErrOperationInFlight is returned when login or register is called while a
// previous call has not resolved. Session-mutating calls are serialized
// rather than interleaved.
var ErrOperationInFlight = errors.New("another login or register is in progress")

// Manager owns the client-side session: the persisted {token, profile} pair
// and the derived role predicates the SPA gates its views on.
//
// The token and profile are set and cleared together, never one without the
// other; SetMany/DeleteMany on the store keep that true even across crashes
// mid-write.
type Manager struct {
	api   APIClient
	store Store

	mu      sync.Mutex
	busy    bool
	state   State
	token   string
	profile *domain.Profile
}

// NewManager restores any persisted session synchronously and lands in
// either the authenticated or the anonymous state. Corrupt or expired
// persisted state is discarded, never fatal: the user just logs in again.
func NewManager(ctx context.Context, api APIClient, store Store) (*Manager, error) {
	m := &Manager{api: api, store: store, state: StateLoading}

	token, err := store.Get(ctx, keyToken)
	if err != nil {
		return nil, err
	}
	rawProfile, err := store.Get(ctx, keyProfile)
	if err != nil {
		return nil, err
	}

	var profile domain.Profile
	restored := len(token) > 0 && len(rawProfile) > 0 &&
		json.Unmarshal(rawProfile, &profile) == nil &&
		!tokenExpired(string(token))

	if restored {
		m.token = string(token)
		m.profile = &profile
		m.state = StateAuthenticated
	} else {
		// Drop whatever half-state was on disk so the next startup is clean.
		if len(token) > 0 || len(rawProfile) > 0 {
			_ = store.DeleteMany(ctx, keyToken, keyProfile)
		}
		m.state = StateAnonymous
	}
	return m, nil
}

// Login authenticates against the auth service and persists the session.
// On failure the current state is untouched and the returned error carries
// the human-readable message to display.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if err := m.begin(); err != nil {
		return err
	}
	defer m.end()

	payload, err := m.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return m.adopt(ctx, payload)
}

// Register creates an account and logs it in, with the same contract as
// Login. Role defaults to customer when unspecified.
func (m *Manager) Register(ctx context.Context, req RegisterRequest) error {
	if err := m.begin(); err != nil {
		return err
	}
	defer m.end()

	if req.Role == "" {
		req.Role = string(domain.RoleCustomer)
	}

	payload, err := m.api.Register(ctx, req)
	if err != nil {
		return err
	}
	return m.adopt(ctx, payload)
}

// Logout clears the persisted session. When the departing profile holds an
// elevated role, the logout instant is recorded first so the admin UI can
// show "last admin logout"; a customer logout leaves any previous timestamp
// untouched.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.profile != nil && m.profile.Role.Elevated() {
		stamp := []byte(time.Now().UTC().Format(time.RFC3339))
		if err := m.store.SetMany(ctx, map[string][]byte{keyAdminLastLogout: stamp}); err != nil {
			return err
		}
	}

	if err := m.store.DeleteMany(ctx, keyToken, keyProfile); err != nil {
		return err
	}

	m.token = ""
	m.profile = nil
	m.state = StateAnonymous
	return nil
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Token returns the current bearer token, or "" when anonymous.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Profile returns a copy of the current profile, or nil when anonymous.
func (m *Manager) Profile() *domain.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return nil
	}
	clone := *m.profile
	return &clone
}

// IsAdmin reports whether the current profile unlocks admin-only views.
func (m *Manager) IsAdmin() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile != nil && m.profile.Role.Elevated()
}

// LastAdminLogout returns the persisted last-admin-logout timestamp, if one
// was ever recorded. Purely informational.
func (m *Manager) LastAdminLogout(ctx context.Context) (time.Time, bool) {
	raw, err := m.store.Get(ctx, keyAdminLastLogout)
	if err != nil || len(raw) == 0 {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, string(raw))
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// begin acquires the single-operation guard.
func (m *Manager) begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.busy {
		return ErrOperationInFlight
	}
	m.busy = true
	return nil
}

func (m *Manager) end() {
	m.mu.Lock()
	m.busy = false
	m.mu.Unlock()
}

// adopt persists the token/profile pair in one write and flips the state.
func (m *Manager) adopt(ctx context.Context, payload *AuthPayload) error {
	rawProfile, err := json.Marshal(payload.Profile)
	if err != nil {
		return err
	}
	if err := m.store.SetMany(ctx, map[string][]byte{
		keyToken:   []byte(payload.Token),
		keyProfile: rawProfile,
	}); err != nil {
		return err
	}

	m.mu.Lock()
	m.token = payload.Token
	profile := payload.Profile
	m.profile = &profile
	m.state = StateAuthenticated
	m.mu.Unlock()
	return nil
}

// tokenExpired peeks at the exp claim without verifying the signature; the
// server re-verifies every request, this only spares the SPA from trusting
// a token it will immediately have rejected. Tokens that cannot be decoded
// count as expired.
func tokenExpired(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return true
	}
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return true
	}
	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(raw, &claims); err != nil || claims.Exp == 0 {
		return true
	}
	return time.Unix(claims.Exp, 0).Before(time.Now())
}
