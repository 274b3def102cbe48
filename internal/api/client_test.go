package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedha/ftk-go/internal/api/dto"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, tokens TokenSource) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{BaseURL: srv.URL + "/api", Tokens: tokens})
	require.NoError(t, err)
	return client
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestNewUsesProvidedHTTPClient(t *testing.T) {
	custom := &http.Client{Timeout: 1 * time.Second}
	client, err := New(Config{BaseURL: "http://localhost/api", HTTPClient: custom})
	require.NoError(t, err)
	assert.Same(t, custom, client.httpClient)

	client, err = New(Config{BaseURL: "http://localhost/api"})
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}

func TestClientDecodesResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/wallet/balance", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"balance":"123.45","currency":"FTK"}`))
	}, nil)

	resp, err := client.WalletBalance(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Balance)
	assert.Equal(t, "123.45", resp.Balance.String())
	assert.Equal(t, "FTK", resp.Currency)
}

func TestClientNonTwoHundredIsStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Invalid username or password"}`))
	}, nil)

	_, err := client.Login(context.Background(), dto.LoginRequest{Username: "x", Password: "y"})
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Code)
	assert.Contains(t, string(se.Body), "Invalid username or password")
}

func TestClientBadBodyIsDecodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}, nil)

	_, err := client.WalletBalance(context.Background())
	var de *DecodeError
	require.ErrorAs(t, err, &de)
}

func TestClientTransportError(t *testing.T) {
	client, err := New(Config{BaseURL: "http://127.0.0.1:1/api"})
	require.NoError(t, err)

	_, err = client.WalletBalance(context.Background())
	require.Error(t, err)

	var se *StatusError
	var de *DecodeError
	assert.False(t, errors.As(err, &se))
	assert.False(t, errors.As(err, &de))
}

func TestClientAttachesBearerToken(t *testing.T) {
	tokens := TokenSourceFunc(func() (string, error) { return "tok-123", nil })
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true}`))
	}, tokens)

	_, err := client.WalletBalance(context.Background())
	require.NoError(t, err)
}

func TestClientOmitsEmptyBearerToken(t *testing.T) {
	tokens := TokenSourceFunc(func() (string, error) { return "", nil })
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true}`))
	}, tokens)

	_, err := client.WalletBalance(context.Background())
	require.NoError(t, err)
}

func TestClientSendsQueryParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "10", r.URL.Query().Get("offset"))
		w.Write([]byte(`{"success":true,"transactions":[]}`))
	}, nil)

	_, err := client.Transactions(context.Background(), 5, 10)
	require.NoError(t, err)
}

func TestClientEscapesPathParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments/verify/PR-A%2FB", r.URL.EscapedPath())
		w.Write([]byte(`{"success":true,"valid":true}`))
	}, nil)

	_, err := client.VerifyPayment(context.Background(), "PR-A/B")
	require.NoError(t, err)
}
