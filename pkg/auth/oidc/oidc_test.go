package oidc_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/auth/oidc"

	"github.com/stretchr/testify/require"
)

func newTestIssuer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"issuer": server.URL,

			"authorization_endpoint": server.URL + "/authorize",
			"token_endpoint":         server.URL + "/token",
			"jwks_uri":               server.URL + "/keys",
		})
	})

	mux.HandleFunc("/keys", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"keys": []any{}})
	})

	return server
}

func TestNew(t *testing.T) {
	issuer := newTestIssuer(t)

	_, err := oidc.New(issuer.URL, "mortgage-approval")
	require.NoError(t, err)
}

func TestNewUnreachableIssuer(t *testing.T) {
	_, err := oidc.New("http://127.0.0.1:1/realm", "mortgage-approval")
	require.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	issuer := newTestIssuer(t)

	provider, err := oidc.New(issuer.URL, "mortgage-approval")
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/v1/applications", nil)

		_, err := provider.Authenticate(context.Background(), r)
		require.Error(t, err)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/v1/applications", nil)
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		_, err := provider.Authenticate(context.Background(), r)
		require.Error(t, err)
	})

	t.Run("unverifiable token", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/v1/applications", nil)
		r.Header.Set("Authorization", "Bearer not-a-jwt")

		_, err := provider.Authenticate(context.Background(), r)
		require.Error(t, err)
	})
}
