package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Order not found"}`))
		case "/boom":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"internal"}`))
		default:
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
				"query":  r.URL.RawQuery,
				"auth":   r.Header.Get("Authorization"),
				"body":   body,
			})
		}
	})
}

func TestDemoClientDispatchesInProcess(t *testing.T) {
	c, err := New(Options{Demo: true, Token: "demo-token-12345", Handler: echoHandler()})
	require.NoError(t, err)
	assert.Equal(t, SentinelBaseURL, c.BaseURL())

	var out map[string]any
	require.NoError(t, c.Put(context.Background(), "/orders/o1/status?x=1", map[string]string{"status": "shipping"}, &out))
	assert.Equal(t, http.MethodPut, out["method"])
	assert.Equal(t, "/orders/o1/status", out["path"])
	assert.Equal(t, "x=1", out["query"])
	assert.Equal(t, "Bearer demo-token-12345", out["auth"])
	assert.Equal(t, map[string]any{"status": "shipping"}, out["body"])
}

func TestDemoClientUsesConfiguredSentinel(t *testing.T) {
	c, err := New(Options{Demo: true, BaseURL: "http://dashboard-mock/", Handler: echoHandler()})
	require.NoError(t, err)
	assert.Equal(t, "http://dashboard-mock", c.BaseURL())

	var out map[string]any
	require.NoError(t, c.Get(context.Background(), "/accounts", &out))
	assert.Equal(t, "/accounts", out["path"])
}

func TestDemoClientRequiresHandler(t *testing.T) {
	_, err := New(Options{Demo: true})
	require.Error(t, err)
}

func TestHandlerTransportRefusesRealHosts(t *testing.T) {
	tr := &HandlerTransport{Handler: echoHandler(), Host: "gash-demo-mock"}
	req := httptest.NewRequest(http.MethodGet, "https://api.example.com/products", nil)

	_, err := tr.RoundTrip(req)
	require.ErrorIs(t, err, ErrRealNetwork)
}

func TestStatusErrorCarriesUserMessage(t *testing.T) {
	c, err := New(Options{Demo: true, Handler: echoHandler()})
	require.NoError(t, err)

	err = c.Get(context.Background(), "/missing", nil)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Status)
	assert.Equal(t, "Order not found", se.Message)
}

func TestUserMessage(t *testing.T) {
	assert.Contains(t, UserMessage(http.StatusUnauthorized, "x"), "session has expired")
	assert.Contains(t, UserMessage(http.StatusForbidden, ""), "permission")
	assert.Equal(t, "The requested resource was not found.", UserMessage(http.StatusNotFound, ""))
	assert.Contains(t, UserMessage(http.StatusBadGateway, "upstream"), "server encountered an error")
	assert.Equal(t, "Invalid status", UserMessage(http.StatusBadRequest, "Invalid status"))
	assert.Equal(t, "Request failed with status 409.", UserMessage(http.StatusConflict, ""))
}

func TestRealClientBreakerOpensOnServerErrors(t *testing.T) {
	srv := httptest.NewServer(echoHandler())
	defer srv.Close()

	c, err := New(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		err := c.Get(context.Background(), "/boom", nil)
		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusInternalServerError, se.Status)
	}

	err = c.Get(context.Background(), "/ok", nil)
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestRealClientNotFoundDoesNotTrip(t *testing.T) {
	srv := httptest.NewServer(echoHandler())
	defer srv.Close()

	c, err := New(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		require.Error(t, c.Get(context.Background(), "/missing", nil))
	}
	var out map[string]any
	require.NoError(t, c.Get(context.Background(), "/ok", &out))
	assert.Equal(t, "/ok", out["path"])
}

func TestRealClientRejectsBadBaseURL(t *testing.T) {
	_, err := New(Options{BaseURL: "not a url"})
	require.Error(t, err)
}
