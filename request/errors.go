package request

import "errors"

var (
	ErrMissingTokenHost       = errors.New("missing token host")
	ErrInvalidTokenHost       = errors.New("invalid token host")
	ErrUnsupportedParamValue  = errors.New("unsupported parameter value type")
	ErrUnsupportedAuthMethod  = errors.New("unsupported authentication method")
	ErrUnsupportedBodyFormat  = errors.New("unsupported body format")
	ErrMissingAssertionSigner = errors.New("client_assertion method requires an assertion signer")
)
