package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func ctxWithRoles(req *http.Request, roles ...string) *http.Request {
	ctx := context.WithValue(req.Context(), UserRolesKey, roles)
	return req.WithContext(ctx)
}

func TestRequireRole_Allowed(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = ctxWithRoles(req, "billing")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireRole("billing")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequireRole_AdminOverride(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = ctxWithRoles(req, "admin")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireRole("billing")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = ctxWithRoles(req, "reception")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireRole("billing")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	if err == nil {
		t.Fatal("expected forbidden error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %v", err)
	}
}

func TestDevAuthMiddleware_Defaults(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := DevAuthMiddleware()(func(c echo.Context) error {
		if got := UserIDFromContext(c.Request().Context()); got != "dev-user" {
			t.Errorf("expected dev-user, got %s", got)
		}
		roles := RolesFromContext(c.Request().Context())
		if len(roles) != 1 || roles[0] != "admin" {
			t.Errorf("expected [admin], got %v", roles)
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJWTMiddleware_MissingToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTMiddleware(JWTConfig{SigningKey: []byte("secret")})(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}
