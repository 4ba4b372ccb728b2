package oauth2

// TokenResponse represents the response from an OAuth2 token request.
// This is the standard OAuth2 token endpoint response format as defined in RFC 6749.
// Providers frequently attach extra fields; those are preserved in Extra.
type TokenResponse struct {
	// AccessToken is the credential used to access protected resources.
	// Example: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."
	// Usage: Include in Authorization header: "Bearer <access_token>"
	// Required: the only field a success response must carry
	AccessToken *string `json:"access_token,omitempty"`

	// TokenType indicates how to use the access token (typically "bearer").
	// Example: "bearer"
	// Standard: OAuth2 spec requires this field, but some providers omit it
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the lifetime in seconds of the access token.
	// Example: 3600 (for 1 hour)
	// Note: This is a hint relative to the moment of issue; the client
	// normalizes it to an absolute instant at parse time
	ExpiresIn *int64 `json:"expires_in,omitempty"`

	// RefreshToken is an opaque token used to obtain new access tokens.
	// Example: "tGzv3JOkF0XG5Qx2TlKWIA"
	// Rarely issued for the client_credentials grant, but passed through when present
	RefreshToken *string `json:"refresh_token,omitempty"`

	// Scope indicates the access token's granted permissions.
	// Example: "api.read api.write"
	// Note: May be less than requested if some scopes were denied
	Scope string `json:"scope,omitempty"`

	// Extra holds every provider-specific field that is not part of the
	// standard response shape, verbatim as decoded.
	Extra map[string]any `json:"-"`
}
