package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pharmatrack/inventory-auth/internal/core/domain"
)

func invoke(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrEmailTaken, http.StatusConflict, "email already registered"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrTokenInvalid, http.StatusUnauthorized, "invalid token"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrValidation, http.StatusBadRequest, "invalid input"},
		{domain.ErrInvalidRole, http.StatusBadRequest, "invalid role"},
	}

	for _, tc := range cases {
		rec, body := invoke(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if body["error"] != tc.message {
			t.Fatalf("%v: expected %q, got %q", tc.err, tc.message, body["error"])
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("insert user"), domain.ErrEmailTaken)
	rec, body := invoke(t, wrapped)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for wrapped ErrEmailTaken, got %d", rec.Code)
	}
	if body["error"] != "email already registered" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := invoke(t, echo.NewHTTPError(http.StatusBadRequest, "fullname is required"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] != "fullname is required" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}

func TestErrorHandler_UnknownErrorIsGeneric(t *testing.T) {
	rec, body := invoke(t, errors.New("mongo: socket closed"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal detail leaked: %q", body["error"])
	}
}
