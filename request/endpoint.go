package request

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultTokenPath is the token endpoint path used when none is configured.
const DefaultTokenPath = "/oauth/token"

// Endpoint identifies the authorization server's token endpoint.
// Configured once per client instance and reused across calls.
type Endpoint struct {
	// TokenHost is the base URL of the authorization server.
	// Example: "https://auth.example.com" or "https://example.com/auth"
	// A path prefix on the host is preserved when the token path is appended.
	TokenHost string

	// TokenPath is the token endpoint path, joined onto TokenHost with
	// slash normalization. Defaults to DefaultTokenPath when empty.
	// An absolute URL (with scheme and host) is used verbatim.
	TokenPath string
}

// URL resolves the absolute token endpoint URL.
func (e Endpoint) URL() (string, error) {
	path := e.TokenPath
	if path == "" {
		path = DefaultTokenPath
	}

	// An absolute token path overrides the host entirely.
	if u, err := url.Parse(path); err == nil && u.Scheme != "" && u.Host != "" {
		return path, nil
	}

	if strings.TrimSpace(e.TokenHost) == "" {
		return "", ErrMissingTokenHost
	}
	host, err := url.Parse(e.TokenHost)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidTokenHost, e.TokenHost, err)
	}
	if host.Scheme == "" || host.Host == "" {
		return "", fmt.Errorf("%w: %q must be an absolute URL", ErrInvalidTokenHost, e.TokenHost)
	}

	return strings.TrimSuffix(host.String(), "/") + "/" + strings.TrimPrefix(path, "/"), nil
}
