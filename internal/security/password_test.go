package security

import (
	"strings"
	"testing"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret" || strings.Contains(hash, "s3cret") {
		t.Fatalf("hash leaks plaintext: %s", hash)
	}

	if !h.Verify("s3cret", hash) {
		t.Fatalf("expected correct password to verify")
	}
	if h.Verify("wrong", hash) {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestBcryptHasher_FreshSaltPerCall(t *testing.T) {
	h := NewBcryptHasher()

	h1, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	h2, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct hashes for the same password")
	}
}
