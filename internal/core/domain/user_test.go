package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"", RoleCustomer, false},
		{"customer", RoleCustomer, false},
		{"pharmacist", RolePharmacist, false},
		{"admin", RoleAdmin, false},
		{"  Admin ", RoleAdmin, false},
		{"superuser", "", true},
		{"root", "", true},
	}

	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if tc.wantErr {
			if err != ErrInvalidRole {
				t.Fatalf("ParseRole(%q): expected ErrInvalidRole, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseRole(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseRole(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestRole_Elevated(t *testing.T) {
	if RoleCustomer.Elevated() {
		t.Fatalf("customer must not be elevated")
	}
	if !RolePharmacist.Elevated() {
		t.Fatalf("pharmacist must be elevated")
	}
	if !RoleAdmin.Elevated() {
		t.Fatalf("admin must be elevated")
	}
}

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"A@X.com":          "a@x.com",
		"  user@mail.com ": "user@mail.com",
		"MiXeD@CaSe.IO":    "mixed@case.io",
	}
	for in, want := range cases {
		if got := NormalizeEmail(in); got != want {
			t.Fatalf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUser_ProfileOmitsPasswordHash(t *testing.T) {
	u := &User{
		ID:           "u1",
		Email:        "a@x.com",
		PasswordHash: "$2a$12$something",
		FullName:     "A",
		Role:         RoleCustomer,
		CreatedAt:    time.Now().UTC(),
	}

	p := u.Profile()
	if p.ID != u.ID || p.Email != u.Email || p.Role != u.Role {
		t.Fatalf("profile fields do not match user: %+v", p)
	}

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal profile: %v", err)
	}
	if strings.Contains(string(raw), "something") {
		t.Fatalf("profile serialization leaks password hash: %s", raw)
	}
}

func TestUser_JSONOmitsPasswordHash(t *testing.T) {
	u := &User{ID: "u1", Email: "a@x.com", PasswordHash: "$2a$12$secret"}
	raw, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}
	if strings.Contains(string(raw), "secret") {
		t.Fatalf("user serialization leaks password hash: %s", raw)
	}
}
