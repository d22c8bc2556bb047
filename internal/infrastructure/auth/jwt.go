package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token validation errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// CashierClaims are the claims the back-office auth service mints for a
// cashier. The terminal only verifies; it never issues tokens.
type CashierClaims struct {
	CashierID string `json:"cashier_id"`
	Name      string `json:"name"`
	Register  string `json:"register,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier validates cashier access tokens
type TokenVerifier struct {
	secret []byte
	issuer string
}

// NewTokenVerifier creates a verifier sharing the auth service's signing
// secret. The issuer is checked when non-empty.
func NewTokenVerifier(secret, issuer string) *TokenVerifier {
	return &TokenVerifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Verify parses and validates a cashier token, returning its claims
func (v *TokenVerifier) Verify(tokenString string) (*CashierClaims, error) {
	claims := &CashierClaims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.CashierID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
