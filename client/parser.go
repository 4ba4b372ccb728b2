package client

import (
	"bytes"
	"encoding/json"
	"mime"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jrsteele09/go-oauth-client/internal/utils"
	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/jrsteele09/go-oauth-client/token"
)

// parseTokenResponse turns a token endpoint response into a Token or a
// classified *ResponseError. The body is decoded according to the declared
// Content-Type; the original status code is always preserved on errors.
func parseTokenResponse(resp *response, now func() time.Time) (*token.Token, error) {
	if resp.statusCode < 200 || resp.statusCode > 299 {
		return nil, &ResponseError{StatusCode: resp.statusCode, Body: resp.body}
	}

	raw, err := decodeBody(resp.contentType, resp.body)
	if err != nil {
		return nil, &ResponseError{StatusCode: resp.statusCode, Body: resp.body, Err: err}
	}

	tr := tokenResponseFromRaw(raw)
	if utils.Value(tr.AccessToken) == "" {
		return nil, &ResponseError{StatusCode: resp.statusCode, Body: resp.body, Err: ErrMissingAccessToken}
	}

	t := &token.Token{
		AccessToken:  utils.Value(tr.AccessToken),
		TokenType:    tr.TokenType,
		RefreshToken: utils.Value(tr.RefreshToken),
	}
	if expiresIn := utils.Value(tr.ExpiresIn); expiresIn > 0 {
		t.Expiry = now().Add(time.Duration(expiresIn) * time.Second)
	}
	return t.WithExtra(tr.Extra), nil
}

// decodeBody decodes the response body according to the declared content
// type. JSON is the norm; some providers answer form-encoded. Anything else
// is classified as ErrNonJSONResponse.
func decodeBody(contentType string, body []byte) (map[string]any, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = contentType
	}

	switch mediaType {
	case "application/json":
		raw := map[string]any{}
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, ErrNonJSONResponse
		}
		return raw, nil
	case "application/x-www-form-urlencoded", "text/plain":
		values, err := url.ParseQuery(strings.TrimSpace(string(body)))
		if err != nil {
			return nil, ErrNonJSONResponse
		}
		raw := make(map[string]any, len(values))
		for key := range values {
			raw[key] = values.Get(key)
		}
		return raw, nil
	default:
		return nil, ErrNonJSONResponse
	}
}

// tokenResponseFromRaw extracts the standard response fields and moves every
// remaining field into the Extra bag verbatim.
func tokenResponseFromRaw(raw map[string]any) oauth2.TokenResponse {
	tr := oauth2.TokenResponse{Extra: map[string]any{}}
	for key, value := range raw {
		switch key {
		case "access_token":
			if s, ok := value.(string); ok {
				tr.AccessToken = utils.Ptr(s)
			}
		case "token_type":
			if s, ok := value.(string); ok {
				tr.TokenType = s
			}
		case "refresh_token":
			if s, ok := value.(string); ok {
				tr.RefreshToken = utils.Ptr(s)
			}
		case "expires_in":
			if n, ok := asInt64(value); ok {
				tr.ExpiresIn = utils.Ptr(n)
			}
		case "scope":
			// Typed view plus the verbatim value: scope stays inspectable
			// through the token's extra fields like any provider extra.
			tr.Scope = scopeString(value)
			tr.Extra[key] = value
		default:
			tr.Extra[key] = value
		}
	}
	return tr
}

// asInt64 accepts the numeric encodings seen in the wild: a JSON number or a
// numeric string.
func asInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			if f, ferr := v.Float64(); ferr == nil {
				return int64(f), true
			}
			return 0, false
		}
		return n, true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	case float64:
		return int64(v), true
	}
	return 0, false
}

// scopeString normalizes the granted scope, which providers return either as
// a space-delimited string or as a JSON array.
func scopeString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []any:
		return strings.Join(utils.ToStringSlice(v), " ")
	}
	return ""
}
