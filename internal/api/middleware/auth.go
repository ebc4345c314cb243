package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bookmarkd/bookmarkd/internal/api/metrics"
	"github.com/bookmarkd/bookmarkd/internal/core/token"
)

// Context keys under which Auth stores the resolved identity. Downstream
// handlers read these and must not re-verify the token.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// Auth validates the bearer token and injects the resolved identity into the
// echo context. Malformed, forged and expired tokens are rejected uniformly;
// the response never says which check failed.
func Auth(issuer *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextUserID, claims.Subject)
			c.Set(ContextEmail, claims.Email)

			return next(c)
		}
	}
}
