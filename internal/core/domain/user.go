package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is the closed set of roles a pharmacy account can hold.
type Role string

const (
	RoleCustomer   Role = "customer"
	RolePharmacist Role = "pharmacist"
	RoleAdmin      Role = "admin"
)

// ParseRole validates a role string. Empty input defaults to customer;
// anything outside the closed set is rejected.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return RoleCustomer, nil
	}
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleCustomer, RolePharmacist, RoleAdmin:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

// Elevated reports whether the role unlocks admin-only views.
// Pharmacists and admins both count as elevated.
func (r Role) Elevated() bool {
	return r == RoleAdmin || r == RolePharmacist
}

var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidRole = errors.New("invalid role")
var ErrValidation = errors.New("invalid input")
var ErrTokenInvalid = errors.New("invalid token")

// NormalizeEmail applies the canonical email-equality policy: trimmed and
// lowercased. The same normalization runs at registration (uniqueness check)
// and at login (lookup), so the two paths can never disagree on which record
// an email addresses.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// User models a registered pharmacy account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is the non-secret projection of a User returned at token issuance
// and persisted by clients alongside the token.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile strips the password hash from a User.
func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
