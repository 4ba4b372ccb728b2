package request

import (
	"fmt"
	"strings"

	"github.com/jrsteele09/go-oauth-client/oauth2"
)

// Params holds extra token request parameters supplied by the caller.
// Values must be either a string or a []string; slice values are serialized
// by joining the elements with a single space, preserving order (this is how
// the scope parameter carries multiple scopes). No other coercion happens.
type Params map[string]any

// Merge returns a new Params with other's entries layered over p.
// Keys present in both take other's value.
func (p Params) Merge(other Params) Params {
	merged := make(Params, len(p)+len(other))
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// GrantRequest holds the per-call parameters for a token request.
// Created fresh per call and discarded once the exchange completes.
type GrantRequest struct {
	// GrantType defaults to client_credentials when empty.
	GrantType oauth2.GrantType

	// Params are extra parameters merged into the request body, e.g.
	// Params{"scope": []string{"api.read", "api.write"}, "audience": "api"}.
	// Entries colliding with a reserved key (grant_type, client_id,
	// client_secret) are dropped: reserved keys always win.
	Params Params
}

// Reserved parameter keys, owned by the builder and never overridable by
// caller-supplied extras.
const (
	paramGrantType    = "grant_type"
	paramClientID     = "client_id"
	paramClientSecret = "client_secret"
)

func reservedKey(key string) bool {
	switch key {
	case paramGrantType, paramClientID, paramClientSecret:
		return true
	}
	return false
}

// flattenValue serializes a single parameter value. Slices are joined with a
// single space in the order supplied.
func flattenValue(key string, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []string:
		return strings.Join(v, " "), nil
	default:
		return "", fmt.Errorf("%w: parameter %q has type %T", ErrUnsupportedParamValue, key, value)
	}
}
