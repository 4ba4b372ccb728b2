package oauth2

// GrantType represents the OAuth 2.0 grant type sent to the token endpoint.
// Determines what credentials the authorization server expects alongside the request.
type GrantType string

const (
	// ClientCredentialsGrant is machine-to-machine authentication (no user context).
	// Token request includes: client_id/client_secret (or Basic header), scope
	// Returns: access_token (usually no refresh_token)
	// Example: Microservice calling another microservice
	ClientCredentialsGrant GrantType = "client_credentials"

	// RefreshTokenGrant exchanges a refresh token for a new access token.
	// Token request includes: refresh_token plus client credentials
	// Only usable when a prior exchange returned a refresh_token
	RefreshTokenGrant GrantType = "refresh_token"

	// PasswordGrant is the resource-owner password grant (legacy).
	// Token request includes: username, password plus client credentials
	// Deprecated by OAuth 2.1 but still offered by older providers
	PasswordGrant GrantType = "password"
)

// AuthMethod determines where the client credentials are placed in the
// outgoing token request.
type AuthMethod string

const (
	// AuthMethodBody embeds client_id and client_secret as body parameters.
	// Used by: providers that do not accept HTTP Basic authentication
	AuthMethodBody AuthMethod = "body"

	// AuthMethodHeader carries the credentials in an HTTP Basic Authorization
	// header: "Basic " + base64(client_id + ":" + client_secret).
	// This is the default and the method recommended by RFC 6749 section 2.3.1.
	AuthMethodHeader AuthMethod = "header"

	// AuthMethodClientAssertion authenticates with a signed JWT instead of the
	// raw secret (RFC 7523). The body carries client_assertion and
	// client_assertion_type parameters; neither the secret nor a Basic header
	// is sent.
	AuthMethodClientAssertion AuthMethod = "client_assertion"
)

// Valid reports whether m is one of the supported authentication methods.
func (m AuthMethod) Valid() bool {
	switch m {
	case AuthMethodBody, AuthMethodHeader, AuthMethodClientAssertion:
		return true
	}
	return false
}

// BodyFormat determines the wire encoding of the token request body and the
// matching Content-Type header. The request body and Content-Type always move
// together; there is no mixed mode.
type BodyFormat string

const (
	// BodyFormatForm encodes the body as application/x-www-form-urlencoded.
	// This is what RFC 6749 specifies and what almost every provider accepts.
	BodyFormatForm BodyFormat = "form"

	// BodyFormatJSON encodes the body as a JSON object.
	// Used by: providers with JSON-only token endpoints (e.g. some API gateways)
	BodyFormatJSON BodyFormat = "json"
)

// Valid reports whether f is one of the supported body formats.
func (f BodyFormat) Valid() bool {
	switch f {
	case BodyFormatForm, BodyFormatJSON:
		return true
	}
	return false
}

// ContentType returns the Content-Type header value matching the body format.
func (f BodyFormat) ContentType() string {
	if f == BodyFormatJSON {
		return "application/json"
	}
	return "application/x-www-form-urlencoded"
}
