// Package client implements OAuth2 token acquisition for the
// client_credentials grant: it builds the token request, performs a single
// request/response exchange and returns a normalized token or a classified
// error. Token caching, refresh scheduling and revocation are out of scope.
package client

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/go-oauth-client/credentials"
	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/jrsteele09/go-oauth-client/request"
	"github.com/jrsteele09/go-oauth-client/token"
)

// Client performs token exchanges against one authorization server.
// It holds only immutable configuration, so a single instance is safe for
// concurrent use; every call builds its own request and owns its own
// response data.
type Client struct {
	creds      credentials.Credentials
	endpoint   request.Endpoint
	authMethod oauth2.AuthMethod
	bodyFormat oauth2.BodyFormat
	headers    http.Header
	params     request.Params
	assertion  *credentials.AssertionSigner
	httpClient Doer
	logger     zerolog.Logger
	nowFunc    func() time.Time
}

// Option defines a function type to modify the Client instance.
type Option func(*Client)

// WithHTTPClient sets the transport used for the exchange. The transport is
// expected to follow redirects transparently; *http.Client does.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		c.httpClient = d
	}
}

// WithAuthMethod sets where the credentials are placed (default: Basic header).
func WithAuthMethod(method oauth2.AuthMethod) Option {
	return func(c *Client) {
		c.authMethod = method
	}
}

// WithBodyFormat sets the request body encoding (default: form).
func WithBodyFormat(format oauth2.BodyFormat) Option {
	return func(c *Client) {
		c.bodyFormat = format
	}
}

// WithHeaders sets default HTTP headers sent on every exchange. They override
// generated defaults such as Accept, and are in turn overridden by per-call
// headers.
func WithHeaders(headers http.Header) Option {
	return func(c *Client) {
		c.headers = headers
	}
}

// WithParams sets default extra body parameters applied to every exchange,
// e.g. a fixed scope or audience. Per-call grant parameters override them.
func WithParams(params request.Params) Option {
	return func(c *Client) {
		c.params = params
	}
}

// WithAssertionSigner enables the client_assertion authentication method.
func WithAssertionSigner(signer *credentials.AssertionSigner) Option {
	return func(c *Client) {
		c.assertion = signer
	}
}

// WithLogger sets the logger. Credentials and token values are never logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithNowFunc sets the now time function (primarily for testing expiry).
func WithNowFunc(now func() time.Time) Option {
	return func(c *Client) {
		c.nowFunc = now
	}
}

// New creates a Client for the given credentials and token endpoint.
// An invalid combination of options fails fast with *ConfigurationError
// before any request is sent.
func New(creds credentials.Credentials, endpoint request.Endpoint, options ...Option) (*Client, error) {
	c := &Client{
		creds:      creds,
		endpoint:   endpoint,
		authMethod: oauth2.AuthMethodHeader,
		bodyFormat: oauth2.BodyFormatForm,
		httpClient: defaultHTTPClient(),
		logger:     zerolog.Nop(),
		nowFunc:    time.Now,
	}
	for _, opt := range options {
		opt(c)
	}

	if err := c.validate(); err != nil {
		return nil, &ConfigurationError{Err: err}
	}
	return c, nil
}

func (c *Client) validate() error {
	if c.creds.ID() == "" {
		return errors.Wrap(ErrMissingClientID, "[New]")
	}
	if _, err := c.endpoint.URL(); err != nil {
		return errors.Wrap(err, "[New]")
	}
	if !c.authMethod.Valid() {
		return errors.Wrapf(request.ErrUnsupportedAuthMethod, "[New] %q", c.authMethod)
	}
	if !c.bodyFormat.Valid() {
		return errors.Wrapf(request.ErrUnsupportedBodyFormat, "[New] %q", c.bodyFormat)
	}
	if c.authMethod == oauth2.AuthMethodClientAssertion && c.assertion == nil {
		return errors.Wrap(request.ErrMissingAssertionSigner, "[New]")
	}
	return nil
}

// callConfig holds per-call overrides layered over the client defaults.
type callConfig struct {
	headers http.Header
	params  request.Params
}

// CallOption defines a function type to modify a single GetToken call.
type CallOption func(*callConfig)

// WithCallHeaders adds HTTP headers for this call only, overriding client
// defaults on key collision.
func WithCallHeaders(headers http.Header) CallOption {
	return func(cc *callConfig) {
		cc.headers = headers
	}
}

// WithCallParams adds extra body parameters for this call only, overriding
// client defaults and the grant's own parameters on key collision.
func WithCallParams(params request.Params) CallOption {
	return func(cc *callConfig) {
		cc.params = params
	}
}

// GetToken performs one token exchange and returns the normalized token.
// Errors are classified: *ConfigurationError before any I/O,
// *TransportError for network failures (including context cancellation and
// timeout), *ResponseError for anything the server answered with that is not
// a valid token response.
func (c *Client) GetToken(ctx context.Context, grant request.GrantRequest, options ...CallOption) (*token.Token, error) {
	cc := &callConfig{}
	for _, opt := range options {
		opt(cc)
	}

	grant.Params = c.params.Merge(grant.Params).Merge(cc.params)

	headers := http.Header{}
	for key, values := range c.headers {
		headers[key] = values
	}
	for key, values := range cc.headers {
		headers[key] = values
	}

	req, err := request.Build(c.endpoint, grant, c.creds, request.BuildOptions{
		AuthMethod:      c.authMethod,
		BodyFormat:      c.bodyFormat,
		Headers:         headers,
		AssertionSigner: c.assertion,
	})
	if err != nil {
		return nil, &ConfigurationError{Err: err}
	}

	c.logger.Debug().
		Str("url", req.URL).
		Str("grant_type", bodyGrantType(grant)).
		Str("auth_method", string(c.authMethod)).
		Msg("requesting token")

	httpReq, err := req.HTTPRequest(ctx)
	if err != nil {
		return nil, &ConfigurationError{Err: err}
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{URL: req.URL, Err: err}
	}
	resp, err := readResponse(httpResp)
	if err != nil {
		return nil, &TransportError{URL: req.URL, Err: err}
	}

	tok, err := parseTokenResponse(resp, c.nowFunc)
	if err != nil {
		c.logger.Debug().Int("status", resp.statusCode).Msg("token request failed")
		return nil, err
	}

	c.logger.Debug().Int("status", resp.statusCode).Msg("token acquired")
	return tok, nil
}

func bodyGrantType(grant request.GrantRequest) string {
	if grant.GrantType == "" {
		return string(oauth2.ClientCredentialsGrant)
	}
	return string(grant.GrantType)
}
