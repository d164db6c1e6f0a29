package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/syrineTissaoui/recalammation/internal/models"
)

// Verification failure modes. Callers surface all of them as a generic
// unauthorized response; the distinction exists for logging only.
var (
	ErrMalformed     = errors.New("credential malformed")
	ErrSignature     = errors.New("credential signature invalid")
	ErrExpired       = errors.New("credential expired")
	ErrMissingClaims = errors.New("credential missing claims")
)

// Claims is the signed payload of a session token.
type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies session tokens with an HS256 secret fixed
// at startup. The zero value is unusable; construct via NewTokenCodec.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) TokenCodec {
	return TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Sign issues a token asserting u's identity for the codec's lifetime.
func (c TokenCodec) Sign(u models.User) (string, error) {
	now := time.Now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role:  string(u.Role),
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}).SignedString(c.secret)
}

// Verify checks raw (the bearer token text, scheme already stripped) and
// returns the identity it asserts.
func (c TokenCodec) Verify(raw string) (Identity, error) {
	t, err := jwt.ParseWithClaims(raw, &Claims{}, func(*jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Identity{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrTokenUnverifiable):
			return Identity{}, ErrSignature
		default:
			return Identity{}, ErrMalformed
		}
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return Identity{}, ErrMalformed
	}
	if claims.Subject == "" || claims.Role == "" {
		return Identity{}, ErrMissingClaims
	}
	role, err := models.ParseRole(claims.Role)
	if err != nil {
		return Identity{}, ErrMissingClaims
	}
	return Identity{SubjectID: claims.Subject, Role: role, Email: claims.Email}, nil
}
