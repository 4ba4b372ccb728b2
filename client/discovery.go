package client

import (
	"context"
	"net/url"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/pkg/errors"

	"github.com/jrsteele09/go-oauth-client/request"
)

// DiscoverEndpoint resolves the token endpoint from an OIDC issuer's
// discovery document (/.well-known/openid-configuration), so callers can
// configure a client from the issuer URL alone.
func DiscoverEndpoint(ctx context.Context, issuer string) (request.Endpoint, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return request.Endpoint{}, errors.Wrapf(err, "[DiscoverEndpoint] discovery failed for issuer %q", issuer)
	}

	tokenURL := provider.Endpoint().TokenURL
	u, err := url.Parse(tokenURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return request.Endpoint{}, errors.Errorf("[DiscoverEndpoint] issuer %q advertises invalid token endpoint %q", issuer, tokenURL)
	}

	return request.Endpoint{
		TokenHost: u.Scheme + "://" + u.Host,
		TokenPath: u.RequestURI(),
	}, nil
}
