package token

import (
	"net/http"
	"strings"
	"time"
)

// timeNow is overridable in tests.
var timeNow = time.Now

// Token is the normalized result of a successful token exchange.
// No mutation after construction; safe to share across goroutines.
type Token struct {
	// AccessToken is the credential used to access protected resources.
	AccessToken string

	// TokenType indicates how the access token is used, typically "bearer".
	TokenType string

	// RefreshToken is present only when the provider issued one.
	RefreshToken string

	// Expiry is the absolute instant at which the access token expires,
	// computed from the response's expires_in at parse time. The zero value
	// means the token never expires (no expires_in was supplied).
	Expiry time.Time

	// extra holds provider-specific response fields outside the standard
	// shape, keyed by their wire name.
	extra map[string]any
}

// WithExtra returns a copy of the token carrying the provider-specific
// response fields.
func (t *Token) WithExtra(extra map[string]any) *Token {
	t2 := *t
	t2.extra = extra
	return &t2
}

// Extra returns the provider-specific field for key, or nil if absent.
func (t *Token) Extra(key string) any {
	if t.extra == nil {
		return nil
	}
	return t.extra[key]
}

// ExtraFields returns a copy of all provider-specific response fields.
func (t *Token) ExtraFields() map[string]any {
	fields := make(map[string]any, len(t.extra))
	for k, v := range t.extra {
		fields[k] = v
	}
	return fields
}

// Type normalizes the token type for use in an Authorization header.
// An empty or "bearer" type (any case) yields "Bearer".
func (t *Token) Type() string {
	switch {
	case t.TokenType == "", strings.EqualFold(t.TokenType, "bearer"):
		return "Bearer"
	default:
		return t.TokenType
	}
}

// Expired reports whether the token's expiry has passed. Tokens without an
// expiry never expire.
func (t *Token) Expired() bool {
	if t.Expiry.IsZero() {
		return false
	}
	return !timeNow().Before(t.Expiry)
}

// Valid reports whether the token carries an access token that has not expired.
func (t *Token) Valid() bool {
	return t != nil && t.AccessToken != "" && !t.Expired()
}

// SetAuthHeader sets the Authorization header of r to use the token.
func (t *Token) SetAuthHeader(r *http.Request) {
	r.Header.Set("Authorization", t.Type()+" "+t.AccessToken)
}
