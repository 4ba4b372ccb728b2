package request_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-oauth-client/credentials"
	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/jrsteele09/go-oauth-client/request"
	"github.com/stretchr/testify/require"
)

const (
	testClientID     = "test-client-1"
	testClientSecret = "test-secret-1"
)

var testEndpoint = request.Endpoint{TokenHost: "https://auth.example.com"}

func testCreds() credentials.Credentials {
	return credentials.New(testClientID, testClientSecret)
}

func formOpts() request.BuildOptions {
	return request.BuildOptions{
		AuthMethod: oauth2.AuthMethodHeader,
		BodyFormat: oauth2.BodyFormatForm,
	}
}

func parseFormBody(t *testing.T, body []byte) url.Values {
	t.Helper()
	values, err := url.ParseQuery(string(body))
	require.NoError(t, err)
	return values
}

func TestBuild_GrantType(t *testing.T) {
	t.Run("defaults to client_credentials", func(t *testing.T) {
		req, err := request.Build(testEndpoint, request.GrantRequest{}, testCreds(), formOpts())
		require.NoError(t, err)

		body := parseFormBody(t, req.Body)
		require.Equal(t, "client_credentials", body.Get("grant_type"))
		require.Equal(t, http.MethodPost, req.Method)
		require.Equal(t, "https://auth.example.com/oauth/token", req.URL)
	})

	t.Run("custom grant type with no extras yields exactly grant_type", func(t *testing.T) {
		req, err := request.Build(testEndpoint, request.GrantRequest{GrantType: "my_grant"}, testCreds(), formOpts())
		require.NoError(t, err)

		body := parseFormBody(t, req.Body)
		require.Equal(t, "my_grant", body.Get("grant_type"))
		require.Len(t, body, 1) // header auth: no credential fields in the body
	})
}

func TestBuild_ScopeSerialization(t *testing.T) {
	grant := request.GrantRequest{
		Params: request.Params{"scope": []string{"scope-a", "scope-b"}},
	}

	req, err := request.Build(testEndpoint, grant, testCreds(), formOpts())
	require.NoError(t, err)

	body := parseFormBody(t, req.Body)
	require.Equal(t, "scope-a scope-b", body.Get("scope"))
}

func TestBuild_AuthMethod(t *testing.T) {
	t.Run("body method embeds credential fields", func(t *testing.T) {
		opts := formOpts()
		opts.AuthMethod = oauth2.AuthMethodBody

		req, err := request.Build(testEndpoint, request.GrantRequest{}, testCreds(), opts)
		require.NoError(t, err)

		body := parseFormBody(t, req.Body)
		require.Equal(t, testClientID, body.Get("client_id"))
		require.Equal(t, testClientSecret, body.Get("client_secret"))
		require.Empty(t, req.Header.Get("Authorization"))
	})

	t.Run("header method keeps credentials out of the body", func(t *testing.T) {
		req, err := request.Build(testEndpoint, request.GrantRequest{}, testCreds(), formOpts())
		require.NoError(t, err)

		body := parseFormBody(t, req.Body)
		require.Empty(t, body.Get("client_id"))
		require.Empty(t, body.Get("client_secret"))
		require.Equal(t, testCreds().BasicAuthorization(), req.Header.Get("Authorization"))
	})

	t.Run("client assertion method sends a signed JWT instead of the secret", func(t *testing.T) {
		signer, err := credentials.NewSecretSigner(testClientSecret)
		require.NoError(t, err)

		opts := formOpts()
		opts.AuthMethod = oauth2.AuthMethodClientAssertion
		opts.AssertionSigner = signer

		req, err := request.Build(testEndpoint, request.GrantRequest{}, testCreds(), opts)
		require.NoError(t, err)

		body := parseFormBody(t, req.Body)
		require.Equal(t, credentials.AssertionType, body.Get("client_assertion_type"))
		require.Empty(t, body.Get("client_secret"))
		require.Empty(t, req.Header.Get("Authorization"))

		parsed, err := jwtlib.Parse(body.Get("client_assertion"), func(*jwtlib.Token) (any, error) {
			return []byte(testClientSecret), nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(jwtlib.MapClaims)
		require.Equal(t, "https://auth.example.com/oauth/token", claims["aud"])
	})

	t.Run("client assertion method without a signer", func(t *testing.T) {
		opts := formOpts()
		opts.AuthMethod = oauth2.AuthMethodClientAssertion

		_, err := request.Build(testEndpoint, request.GrantRequest{}, testCreds(), opts)
		require.ErrorIs(t, err, request.ErrMissingAssertionSigner)
	})

	t.Run("unknown method", func(t *testing.T) {
		opts := formOpts()
		opts.AuthMethod = "carrier-pigeon"

		_, err := request.Build(testEndpoint, request.GrantRequest{}, testCreds(), opts)
		require.ErrorIs(t, err, request.ErrUnsupportedAuthMethod)
	})
}

func TestBuild_BodyFormat(t *testing.T) {
	t.Run("form body matches form content type", func(t *testing.T) {
		req, err := request.Build(testEndpoint, request.GrantRequest{}, testCreds(), formOpts())
		require.NoError(t, err)

		require.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))
		_, err = url.ParseQuery(string(req.Body))
		require.NoError(t, err)
	})

	t.Run("json body matches json content type", func(t *testing.T) {
		opts := formOpts()
		opts.BodyFormat = oauth2.BodyFormatJSON

		grant := request.GrantRequest{Params: request.Params{"scope": []string{"scope-a", "scope-b"}}}
		req, err := request.Build(testEndpoint, grant, testCreds(), opts)
		require.NoError(t, err)

		require.Equal(t, "application/json", req.Header.Get("Content-Type"))

		body := map[string]string{}
		require.NoError(t, json.Unmarshal(req.Body, &body))
		require.Equal(t, "client_credentials", body["grant_type"])
		require.Equal(t, "scope-a scope-b", body["scope"])
	})

	t.Run("unknown format", func(t *testing.T) {
		opts := formOpts()
		opts.BodyFormat = "xml"

		_, err := request.Build(testEndpoint, request.GrantRequest{}, testCreds(), opts)
		require.ErrorIs(t, err, request.ErrUnsupportedBodyFormat)
	})
}

func TestBuild_Headers(t *testing.T) {
	t.Run("accept defaults to json", func(t *testing.T) {
		req, err := request.Build(testEndpoint, request.GrantRequest{}, testCreds(), formOpts())
		require.NoError(t, err)
		require.Equal(t, "application/json", req.Header.Get("Accept"))
	})

	t.Run("caller headers override defaults", func(t *testing.T) {
		opts := formOpts()
		opts.Headers = http.Header{
			"Accept":           []string{"application/vnd.api+json"},
			"X-Correlation-Id": []string{"abc-123"},
		}

		req, err := request.Build(testEndpoint, request.GrantRequest{}, testCreds(), opts)
		require.NoError(t, err)
		require.Equal(t, "application/vnd.api+json", req.Header.Get("Accept"))
		require.Equal(t, "abc-123", req.Header.Get("X-Correlation-Id"))
	})
}

func TestBuild_Params(t *testing.T) {
	t.Run("every extra parameter appears in the body", func(t *testing.T) {
		grant := request.GrantRequest{
			Params: request.Params{
				"audience": "https://api.example.com",
				"resource": []string{"res-a", "res-b"},
			},
		}

		req, err := request.Build(testEndpoint, grant, testCreds(), formOpts())
		require.NoError(t, err)

		body := parseFormBody(t, req.Body)
		require.Equal(t, "https://api.example.com", body.Get("audience"))
		require.Equal(t, "res-a res-b", body.Get("resource"))
	})

	t.Run("reserved keys win over extras", func(t *testing.T) {
		opts := formOpts()
		opts.AuthMethod = oauth2.AuthMethodBody
		grant := request.GrantRequest{
			Params: request.Params{
				"grant_type":    "spoofed",
				"client_id":     "spoofed",
				"client_secret": "spoofed",
			},
		}

		req, err := request.Build(testEndpoint, grant, testCreds(), opts)
		require.NoError(t, err)

		body := parseFormBody(t, req.Body)
		require.Equal(t, "client_credentials", body.Get("grant_type"))
		require.Equal(t, testClientID, body.Get("client_id"))
		require.Equal(t, testClientSecret, body.Get("client_secret"))
	})

	t.Run("unsupported value types are rejected, not coerced", func(t *testing.T) {
		grant := request.GrantRequest{Params: request.Params{"ttl": 3600}}

		_, err := request.Build(testEndpoint, grant, testCreds(), formOpts())
		require.ErrorIs(t, err, request.ErrUnsupportedParamValue)
	})
}
