package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopstack/inventory-api/internal/models"
	"github.com/shopstack/inventory-api/internal/usecase"
)

const claimsContextKey = "claims"

// JWTAuth extracts a bearer token from the Authorization header or the named
// cookie, verifies it and stores the identity claims for downstream handlers.
func JWTAuth(verifier usecase.TokenVerifier, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var token string

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" {
				token = strings.TrimPrefix(authHeader, "Bearer ")
				if token == authHeader {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
				}
			} else if cookie, err := c.Cookie(cookieName); err == nil {
				token = cookie.Value
			}

			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "you are not logged in")
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "the token is invalid")
			}

			c.Set(claimsContextKey, claims)
			c.Set("user_id", claims.UserID)
			return next(c)
		}
	}
}

// GetClaims returns the identity claims set by JWTAuth, or nil when the
// request did not pass through it.
func GetClaims(c echo.Context) *models.IdentityClaims {
	claims, _ := c.Get(claimsContextKey).(*models.IdentityClaims)
	return claims
}

// SetClaims injects identity claims directly, for tests.
func SetClaims(c echo.Context, claims *models.IdentityClaims) {
	c.Set(claimsContextKey, claims)
}
