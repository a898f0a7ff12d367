package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pharmatrack/inventory-auth/internal/core/domain"
)

// ErrTransport covers network-level failures: the server is unreachable or
// returned garbage. Its message is the generic string shown to the user.
var ErrTransport = errors.New("unable to reach the server, please try again")

// APIError is a structured error response from the auth API. Its message is
// already flattened server-side, so it is shown to the user as-is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
}

// AuthPayload is the success response of both register and login.
type AuthPayload struct {
	Token   string         `json:"token"`
	Profile domain.Profile `json:"profile"`
}

// APIClient abstracts the auth endpoints the session manager calls.
type APIClient interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthPayload, error)
	Login(ctx context.Context, email, password string) (*AuthPayload, error)
}

// HTTPAPIClient talks JSON to the auth service.
type HTTPAPIClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPAPIClient builds a client for the given base URL, e.g.
// "http://localhost:8080".
func NewHTTPAPIClient(baseURL string) *HTTPAPIClient {
	return &HTTPAPIClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *HTTPAPIClient) Register(ctx context.Context, req RegisterRequest) (*AuthPayload, error) {
	return c.post(ctx, "/auth/register", req)
}

func (c *HTTPAPIClient) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	return c.post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (c *HTTPAPIClient) post(ctx context.Context, path string, body any) (*AuthPayload, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		var envelope struct {
			Error string `json:"error"`
		}
		// A body that fails to decode leaves the message empty; APIError
		// then falls back to the status line.
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return nil, &APIError{Status: resp.StatusCode, Message: envelope.Error}
	}

	var payload AuthPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return &payload, nil
}
