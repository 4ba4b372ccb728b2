package client_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/go-oauth-client/client"
	"github.com/stretchr/testify/require"
)

func TestDiscoverEndpoint(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"issuer": %q,
			"authorization_endpoint": %q,
			"token_endpoint": %q,
			"jwks_uri": %q
		}`, srv.URL, srv.URL+"/oauth/authorize", srv.URL+"/oauth/token", srv.URL+"/.well-known/jwks.json")
	})

	endpoint, err := client.DiscoverEndpoint(context.Background(), srv.URL)
	require.NoError(t, err)

	resolved, err := endpoint.URL()
	require.NoError(t, err)
	require.Equal(t, srv.URL+"/oauth/token", resolved)
}

func TestDiscoverEndpoint_UnreachableIssuer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	issuer := srv.URL
	srv.Close()

	_, err := client.DiscoverEndpoint(context.Background(), issuer)
	require.Error(t, err)
}
