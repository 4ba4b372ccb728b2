package credentials

import (
	"encoding/base64"
)

// Credentials holds the identifier and secret of a confidential OAuth2
// client. Values are used exactly as supplied; no escaping or validation is
// applied (the authorization server is the source of truth for validity).
// Immutable once constructed.
type Credentials struct {
	id     string
	secret string
}

// New creates Credentials from a client identifier and secret.
func New(id, secret string) Credentials {
	return Credentials{id: id, secret: secret}
}

// ID returns the client identifier.
func (c Credentials) ID() string {
	return c.id
}

// Secret returns the client secret.
// Security: Never log or expose this value.
func (c Credentials) Secret() string {
	return c.secret
}

// BodyFields returns the credential pair as token request body parameters,
// for use with the body authentication method.
func (c Credentials) BodyFields() map[string]string {
	return map[string]string{
		"client_id":     c.id,
		"client_secret": c.secret,
	}
}

// BasicAuthorization returns the value of an HTTP Basic Authorization header:
// "Basic " + base64(client_id + ":" + client_secret). The id and secret are
// concatenated exactly as supplied, so decoding the header reproduces the
// original pair.
func (c Credentials) BasicAuthorization() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.id+":"+c.secret))
}

// String implements fmt.Stringer with the secret redacted, so Credentials can
// never leak through logging or error formatting.
func (c Credentials) String() string {
	return "Credentials(id=" + c.id + ", secret=REDACTED)"
}
