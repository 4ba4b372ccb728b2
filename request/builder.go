package request

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-oauth-client/credentials"
	"github.com/jrsteele09/go-oauth-client/oauth2"
)

// Request is the fully assembled token request: pure data, no network
// activity has taken place. Each call to Build produces a fresh Request that
// the caller owns exclusively.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// HTTPRequest converts the request into an *http.Request bound to ctx.
func (r *Request) HTTPRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, bytes.NewReader(r.Body))
	if err != nil {
		return nil, errors.Wrap(err, "[HTTPRequest] failed to create request")
	}
	for key, values := range r.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	return req, nil
}

// BuildOptions configures how Build assembles the request.
type BuildOptions struct {
	// AuthMethod determines credential placement. Required.
	AuthMethod oauth2.AuthMethod

	// BodyFormat determines body serialization and Content-Type. Required.
	BodyFormat oauth2.BodyFormat

	// Headers are caller-supplied HTTP headers merged into the request.
	// Caller values override builder-generated defaults such as Accept.
	Headers http.Header

	// AssertionSigner is required when AuthMethod is AuthMethodClientAssertion.
	AssertionSigner *credentials.AssertionSigner
}

// Build assembles the outgoing token request from the endpoint, the grant
// parameters and the client credentials.
//
// The parameter map always contains grant_type; every caller-supplied extra
// parameter appears in it unless it collides with a reserved key, in which
// case the reserved value wins. Slice values are joined with a single space.
func Build(endpoint Endpoint, grant GrantRequest, creds credentials.Credentials, opts BuildOptions) (*Request, error) {
	if !opts.AuthMethod.Valid() {
		return nil, errors.Wrapf(ErrUnsupportedAuthMethod, "[Build] %q", opts.AuthMethod)
	}
	if !opts.BodyFormat.Valid() {
		return nil, errors.Wrapf(ErrUnsupportedBodyFormat, "[Build] %q", opts.BodyFormat)
	}

	target, err := endpoint.URL()
	if err != nil {
		return nil, err
	}

	grantType := grant.GrantType
	if grantType == "" {
		grantType = oauth2.ClientCredentialsGrant
	}

	params := make(map[string]string, len(grant.Params)+3)
	for key, value := range grant.Params {
		if reservedKey(key) {
			continue
		}
		flat, err := flattenValue(key, value)
		if err != nil {
			return nil, err
		}
		params[key] = flat
	}
	params[paramGrantType] = string(grantType)

	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set("Content-Type", opts.BodyFormat.ContentType())

	switch opts.AuthMethod {
	case oauth2.AuthMethodBody:
		for key, value := range creds.BodyFields() {
			params[key] = value
		}
	case oauth2.AuthMethodHeader:
		header.Set("Authorization", creds.BasicAuthorization())
	case oauth2.AuthMethodClientAssertion:
		if opts.AssertionSigner == nil {
			return nil, errors.Wrap(ErrMissingAssertionSigner, "[Build]")
		}
		assertion, err := opts.AssertionSigner.SignedAssertion(creds.ID(), target)
		if err != nil {
			return nil, err
		}
		params["client_assertion_type"] = credentials.AssertionType
		params["client_assertion"] = assertion
	}

	// Caller headers win over generated defaults.
	for key, values := range opts.Headers {
		header.Del(key)
		for _, v := range values {
			header.Add(key, v)
		}
	}

	body, err := encodeBody(params, opts.BodyFormat)
	if err != nil {
		return nil, err
	}

	return &Request{
		Method: http.MethodPost,
		URL:    target,
		Header: header,
		Body:   body,
	}, nil
}

func encodeBody(params map[string]string, format oauth2.BodyFormat) ([]byte, error) {
	if format == oauth2.BodyFormatJSON {
		body, err := json.Marshal(params)
		if err != nil {
			return nil, errors.Wrap(err, "[encodeBody] failed to marshal body")
		}
		return body, nil
	}

	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return []byte(values.Encode()), nil
}
