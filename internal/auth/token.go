package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenDuration is 7 days
const TokenDuration = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("token inválido ou expirado")

// Claims are the identity claims embedded in a session token.
type Claims struct {
	jwt.RegisteredClaims
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenCodec issues and verifies signed, time-limited identity tokens.
// The signing key is process-wide configuration, constant for the process
// lifetime. Tokens are stateless; there is no server-side revocation list.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Issue produces a signed HS256 token embedding the user's identity claims
// and an expiration 7 days out.
func (c *TokenCodec) Issue(id, email, name string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		ID:    id,
		Email: email,
		Name:  name,
	})

	return token.SignedString(c.secret)
}

// Verify parses and validates a token string. Malformed, badly signed and
// expired tokens all fail with ErrInvalidToken; there are no partial-validity
// states.
func (c *TokenCodec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
