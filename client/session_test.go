package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	session := NewSession(srv.URL, "tok-123")
	var out map[string]interface{}
	require.NoError(t, session.do(context.Background(), http.MethodGet, "/api/products", nil, &out))

	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestSessionAuthFailureClearsTokenAndFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expired"}`))
	}))
	defer srv.Close()

	session := NewSession(srv.URL, "stale")
	hookFired := 0
	session.OnAuthFailure = func() { hookFired++ }

	err := session.do(context.Background(), http.MethodGet, "/api/admin/orders", nil, nil)

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, hookFired)
	assert.Empty(t, session.Token())
}

func TestSessionExtractsServerErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"invalid status transition"}`))
	}))
	defer srv.Close()

	session := NewSession(srv.URL, "")
	err := session.do(context.Background(), http.MethodPut, "/api/admin/repair-requests/1/update-status", map[string]string{"status": "delivered"}, nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "invalid status transition", apiErr.Message)
}

func TestSessionGuardsAgainstNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>502 Bad Gateway</html>"))
	}))
	defer srv.Close()

	session := NewSession(srv.URL, "")
	err := session.do(context.Background(), http.MethodGet, "/api/products", nil, nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "request failed with status 502", apiErr.Message)
}

func TestSessionRejectsNonJSONSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>login portal</html>"))
	}))
	defer srv.Close()

	session := NewSession(srv.URL, "")
	var out map[string]interface{}
	err := session.do(context.Background(), http.MethodGet, "/api/products", nil, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected content type")
}

func TestClientLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"fresh-token","user":{"email":"admin@tamirstore.com"}}`))
	}))
	defer srv.Close()

	client := New(NewSession(srv.URL, ""))
	require.NoError(t, client.Login(context.Background(), "admin@tamirstore.com", "secret"))

	assert.Equal(t, "fresh-token", client.Session().Token())
}
