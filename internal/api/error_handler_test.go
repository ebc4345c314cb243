package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bookmarkd/bookmarkd/internal/core/domain"
)

func renderError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(err, c)
	return rec
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrCredentialsTaken, http.StatusForbidden, "credentials taken"},
		{domain.ErrInvalidCredentials, http.StatusForbidden, "invalid credentials"},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many signin attempts"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrBookmarkNotFound, http.StatusNotFound, "bookmark not found"},
		{domain.ErrAccessDenied, http.StatusForbidden, "access to resource denied"},
	}

	for _, tc := range cases {
		rec := renderError(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), tc.msg) {
			t.Fatalf("%v: expected message %q, got %s", tc.err, tc.msg, rec.Body.String())
		}
	}
}

func TestErrorHandler_EchoError(t *testing.T) {
	rec := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "missing authorization header") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	rec := renderError(t, errors.New("mongo exploded"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	// the real cause must not leak to the client
	if strings.Contains(rec.Body.String(), "mongo exploded") {
		t.Fatalf("internal error leaked: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
