package client

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingClientID is reported by New when the credentials carry no
	// client identifier.
	ErrMissingClientID = errors.New("missing client id")

	// ErrNonJSONResponse classifies a success-status response whose body
	// could not be decoded as a token response (wrong content type or
	// invalid syntax). The original HTTP status code is preserved on the
	// surrounding ResponseError.
	ErrNonJSONResponse = errors.New("response content is not a decodable token response")

	// ErrMissingAccessToken classifies an otherwise well-formed success
	// response that lacks the access_token field.
	ErrMissingAccessToken = errors.New("malformed token response: missing access_token")
)

// TransportError reports a network-level failure (connection refused,
// timeout, TLS failure, cancelled context). The exchange never produced an
// HTTP response.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("token request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ResponseError reports a token endpoint response that could not be turned
// into a token: a non-2xx status, a non-decodable body on a success status,
// or a missing required field. StatusCode and Body always carry the original
// response for caller inspection; the status code is never rewritten.
type ResponseError struct {
	StatusCode int
	Body       []byte

	// Err classifies the failure (ErrNonJSONResponse, ErrMissingAccessToken)
	// and is nil for a plain non-2xx status.
	Err error
}

func (e *ResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token endpoint returned status %d: %v", e.StatusCode, e.Err)
	}
	body := e.Body
	if len(body) > 256 {
		body = body[:256]
	}
	return fmt.Sprintf("token endpoint returned status %d: %s", e.StatusCode, body)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports an invalid combination of options supplied by
// the caller. It is returned before any I/O is attempted.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid client configuration: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
