package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockly/stock-management/api-gateway/middleware"
	"github.com/stockly/stock-management/pkg/auth"
)

type seenHeaders struct {
	UserID   string
	Username string
	Role     string
	TenantID string
}

func authApp(seen *seenHeaders) *fiber.App {
	app := fiber.New()
	app.Use(middleware.AuthMiddleware())
	app.Get("/protected", func(c *fiber.Ctx) error {
		seen.UserID = string(c.Request().Header.Peek("X-User-ID"))
		seen.Username = string(c.Request().Header.Peek("X-Username"))
		seen.Role = string(c.Request().Header.Peek("X-User-Role"))
		seen.TenantID = string(c.Request().Header.Peek(middleware.TenantHeader))
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := authApp(&seenHeaders{})

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app := authApp(&seenHeaders{})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	app := authApp(&seenHeaders{})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_PropagatesIdentityHeaders(t *testing.T) {
	seen := &seenHeaders{}
	app := authApp(seen)

	token, err := auth.GenerateToken("u1", "alice", "admin", "tenant-1", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	// Client-supplied identity headers must be overwritten.
	req.Header.Set("X-User-ID", "spoofed")
	req.Header.Set(middleware.TenantHeader, "spoofed-tenant")

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "u1", seen.UserID)
	assert.Equal(t, "alice", seen.Username)
	assert.Equal(t, "admin", seen.Role)
	assert.Equal(t, "tenant-1", seen.TenantID)
}

func TestAuthMiddleware_HostTenantWhenClaimEmpty(t *testing.T) {
	seen := &seenHeaders{}
	app := authApp(seen)

	token, err := auth.GenerateToken("u1", "alice", "user", "", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(middleware.TenantHeader, "spoofed-tenant")

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "", seen.TenantID)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	app := authApp(&seenHeaders{})

	token, err := auth.GenerateToken("u1", "alice", "user", "tenant-1", -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalAuthMiddleware_StripsClientTenantHeader(t *testing.T) {
	var tenant string
	app := fiber.New()
	app.Use(middleware.OptionalAuthMiddleware())
	app.Get("/open", func(c *fiber.Ctx) error {
		tenant = string(c.Request().Header.Peek(middleware.TenantHeader))
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set(middleware.TenantHeader, "spoofed-tenant")

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "", tenant)
}

func TestAdminMiddleware_RejectsNonAdmin(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.AuthMiddleware())
	app.Use(middleware.AdminMiddleware())
	app.Get("/admin", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	token, err := auth.GenerateToken("u1", "alice", "user", "tenant-1", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
