package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rangipos/terminal/internal/infrastructure/auth"
	"github.com/rangipos/terminal/internal/interfaces/http/dto"
)

// Cashier context keys
const (
	CashierClaimsKey = "cashier_claims"
	CashierIDKey     = "cashier_id"
	AuthHeaderKey    = "Authorization"
	BearerPrefix     = "Bearer "
)

// CashierAuthConfig holds configuration for the cashier auth middleware
type CashierAuthConfig struct {
	Verifier  *auth.TokenVerifier
	SkipPaths []string
}

// DefaultCashierAuthConfig returns the default auth configuration
func DefaultCashierAuthConfig(verifier *auth.TokenVerifier) CashierAuthConfig {
	return CashierAuthConfig{
		Verifier: verifier,
		SkipPaths: []string{
			"/health",
			"/healthz",
		},
	}
}

// CashierAuth creates cashier authentication middleware. Tokens are minted
// by the back-office auth service; the terminal only verifies them against
// the shared secret.
func CashierAuth(verifier *auth.TokenVerifier) gin.HandlerFunc {
	return CashierAuthWithConfig(DefaultCashierAuthConfig(verifier))
}

// CashierAuthWithConfig creates cashier authentication middleware with custom config
func CashierAuthWithConfig(cfg CashierAuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if path == skip {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Invalid authorization header format")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)

		claims, err := cfg.Verifier.Verify(tokenString)
		if err != nil {
			code := dto.ErrCodeUnauthorized
			if errors.Is(err, auth.ErrTokenExpired) {
				code = dto.ErrCodeTokenExpired
			}
			abortUnauthorized(c, code, "Token validation failed")
			return
		}

		c.Set(CashierClaimsKey, claims)
		c.Set(CashierIDKey, claims.CashierID)
		c.Next()
	}
}

// GetCashierID returns the authenticated cashier's ID, if any
func GetCashierID(c *gin.Context) string {
	return c.GetString(CashierIDKey)
}

func abortUnauthorized(c *gin.Context, code, message string) {
	requestID := c.GetString("request_id")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(code, message, requestID))
}
