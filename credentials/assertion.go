package credentials

import (
	"crypto"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AssertionType is the client_assertion_type parameter value for JWT client
// authentication, as defined in RFC 7523.
const AssertionType = "urn:ietf:params:oauth:client-assertion-type:jwt-bearer"

const defaultAssertionTTL = 5 * time.Minute

// AssertionSigner produces signed JWT client assertions for the
// client_assertion authentication method. Construct with NewSecretSigner
// (HMAC from the client secret) or NewPrivateKeySigner (asymmetric key).
type AssertionSigner struct {
	method  jwtlib.SigningMethod
	key     any
	ttl     time.Duration
	nowFunc func() time.Time
}

// AssertionSignerOption defines a function type to modify an AssertionSigner.
type AssertionSignerOption func(*AssertionSigner)

// WithAssertionTTL sets the validity window of generated assertions.
func WithAssertionTTL(ttl time.Duration) AssertionSignerOption {
	return func(s *AssertionSigner) {
		s.ttl = ttl
	}
}

// WithNowFunc sets the now time function (primarily for testing).
func WithNowFunc(now func() time.Time) AssertionSignerOption {
	return func(s *AssertionSigner) {
		s.nowFunc = now
	}
}

// NewSecretSigner creates a signer that signs assertions with HMAC-SHA256
// using the client secret as the key (the client_secret_jwt method).
func NewSecretSigner(secret string, options ...AssertionSignerOption) (*AssertionSigner, error) {
	if secret == "" {
		return nil, errors.New("[NewSecretSigner] secret is required")
	}
	return newSigner(jwtlib.SigningMethodHS256, []byte(secret), options...), nil
}

// NewPrivateKeySigner creates a signer that signs assertions with the given
// private key (the private_key_jwt method). The signing method must match the
// key type, e.g. jwt.SigningMethodRS256 for an *rsa.PrivateKey.
func NewPrivateKeySigner(method jwtlib.SigningMethod, key crypto.PrivateKey, options ...AssertionSignerOption) (*AssertionSigner, error) {
	if method == nil {
		return nil, errors.New("[NewPrivateKeySigner] signing method is required")
	}
	if key == nil {
		return nil, errors.New("[NewPrivateKeySigner] private key is required")
	}
	return newSigner(method, key, options...), nil
}

func newSigner(method jwtlib.SigningMethod, key any, options ...AssertionSignerOption) *AssertionSigner {
	s := &AssertionSigner{
		method:  method,
		key:     key,
		ttl:     defaultAssertionTTL,
		nowFunc: time.Now,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// SignedAssertion creates a signed assertion identifying clientID towards the
// token endpoint given by audience. Each call produces a fresh jti claim, so
// assertions are single-use from the server's point of view.
func (s *AssertionSigner) SignedAssertion(clientID, audience string) (string, error) {
	now := s.nowFunc()
	claims := jwtlib.MapClaims{
		"iss": clientID, // The client authenticates itself: issuer and subject are both the client
		"sub": clientID,
		"aud": audience, // The token endpoint URL
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
		"jti": uuid.New().String(), // Unique assertion ID, prevents replay
	}

	signed, err := jwtlib.NewWithClaims(s.method, claims).SignedString(s.key)
	if err != nil {
		return "", errors.Wrap(err, "[SignedAssertion] failed to sign assertion")
	}
	return signed, nil
}
