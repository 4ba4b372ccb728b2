package client

import (
	"context"

	xoauth2 "golang.org/x/oauth2"

	"github.com/jrsteele09/go-oauth-client/request"
)

// TokenSource returns a golang.org/x/oauth2 TokenSource backed by this
// client, so it plugs into anything that consumes the x/oauth2 ecosystem
// (oauth2.NewClient, gRPC credentials, SDKs). The source is wrapped in
// oauth2.ReuseTokenSource: a token is fetched only when the previous one has
// expired, and each fetch is a single exchange.
func (c *Client) TokenSource(ctx context.Context, grant request.GrantRequest, options ...CallOption) xoauth2.TokenSource {
	return xoauth2.ReuseTokenSource(nil, &tokenSource{
		ctx:     ctx,
		client:  c,
		grant:   grant,
		options: options,
	})
}

type tokenSource struct {
	ctx     context.Context
	client  *Client
	grant   request.GrantRequest
	options []CallOption
}

func (ts *tokenSource) Token() (*xoauth2.Token, error) {
	tok, err := ts.client.GetToken(ts.ctx, ts.grant, ts.options...)
	if err != nil {
		return nil, err
	}

	xt := &xoauth2.Token{
		AccessToken:  tok.AccessToken,
		TokenType:    tok.TokenType,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
	}
	return xt.WithExtra(tok.ExtraFields()), nil
}
