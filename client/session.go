// Package client is a typed Go client for the TamirStore admin API. It
// carries the bearer token in an explicit session object and funnels every
// 401 through a single auth-failure hook instead of leaving each caller to
// detect expiry on its own.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// ErrUnauthorized is returned after the session token has been rejected and
// cleared.
var ErrUnauthorized = errors.New("client: unauthorized")

// APIError carries the server's error message and HTTP status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client: server returned %d: %s", e.StatusCode, e.Message)
}

// Session holds the base URL, the bearer token, and the hook invoked when
// the server rejects the token.
type Session struct {
	BaseURL    string
	HTTPClient *http.Client

	// OnAuthFailure runs once per rejected request, after the token has
	// been cleared. Typically used to redirect to a login flow.
	OnAuthFailure func()

	mu    sync.Mutex
	token string
}

// NewSession creates a session against baseURL with an optional initial
// token.
func NewSession(baseURL, token string) *Session {
	return &Session{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
		token:      token,
	}
}

// SetToken replaces the bearer token, e.g. after a login.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Token returns the current bearer token, or "" after an auth failure.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// do issues a request and decodes the JSON response into out (when out is
// non-nil). A 401 clears the token, fires OnAuthFailure, and returns
// ErrUnauthorized. Other non-2xx statuses return an *APIError carrying the
// server's "error" field when one was sent.
func (s *Session) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := s.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		s.SetToken("")
		if s.OnAuthFailure != nil {
			s.OnAuthFailure()
		}
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    serverErrorMessage(resp),
		}
	}

	if out == nil {
		return nil
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		return fmt.Errorf("client: unexpected content type %q", resp.Header.Get("Content-Type"))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// serverErrorMessage extracts the "error" field the API puts in failure
// bodies, guarding against non-JSON responses such as proxy error pages.
func serverErrorMessage(resp *http.Response) string {
	fallback := fmt.Sprintf("request failed with status %d", resp.StatusCode)
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		return fallback
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Error == "" {
		return fallback
	}
	return payload.Error
}
