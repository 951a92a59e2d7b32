package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// DefaultTTL is the token lifetime used when Config.TTL is left zero.
const DefaultTTL = 15 * time.Minute

// HS256 needs key material at least as long as the hash output.
const minKeyBytes = 32

var (
	ErrKeyMissing  = errors.New("auth: signing key is not configured")
	ErrKeyTooShort = fmt.Errorf("auth: signing key must be at least %d bytes", minKeyBytes)
)

// Config carries the key material and token metadata for the issuer.
// It is injected at construction; the issuer never reads ambient state.
type Config struct {
	Key      []byte
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Claims is the claim set baked into every issued token. Roles keep
// their input order.
type Claims struct {
	Email string   `json:"email"`
	Roles []string `json:"roles,omitempty"`
	jwt.StandardClaims
}

type TokenIssuer struct {
	cfg Config
}

// NewTokenIssuer validates the key material up front so a missing or
// weak secret fails at startup, not on the first login.
func NewTokenIssuer(cfg Config) (*TokenIssuer, error) {
	if len(cfg.Key) == 0 {
		return nil, ErrKeyMissing
	}
	if len(cfg.Key) < minKeyBytes {
		return nil, ErrKeyTooShort
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &TokenIssuer{cfg: cfg}, nil
}

// Issue signs a compact HS256 token for the given identity. Validity is
// entirely signature + expiry; nothing is stored.
func (t *TokenIssuer) Issue(email string, roles []string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		Roles: roles,
		StandardClaims: jwt.StandardClaims{
			Subject:   email,
			Issuer:    t.cfg.Issuer,
			Audience:  t.cfg.Audience,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(t.cfg.TTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.cfg.Key)
}

// Verify re-derives the signature and checks expiry. Used by the HTTP
// middleware; there is no revocation list to consult.
func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("auth: unexpected signing method %v", tok.Header["alg"])
		}
		return t.cfg.Key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.NewValidationError("invalid token", jwt.ValidationErrorSignatureInvalid)
	}
	return claims, nil
}

// TTL reports the configured token lifetime.
func (t *TokenIssuer) TTL() time.Duration {
	return t.cfg.TTL
}
