package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookmarkd/bookmarkd/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a non-empty user id proves the
// middleware ran. Handlers treat the values as read-only and never
// re-verify the token.
func ctxIdentity(c echo.Context) (userID, email string, err error) {
	userID, _ = c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ = c.Get(middleware.ContextEmail).(string)
	return userID, email, nil
}
