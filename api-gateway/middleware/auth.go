package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/stockly/stock-management/pkg/auth"
)

// TenantHeader is propagated to backend services. An empty value addresses
// the host tenant.
const TenantHeader = "X-Tenant-ID"

// AuthMiddleware validates JWT tokens and propagates identity and tenant
// headers to backend services.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		// Store user info in context
		c.Locals("user_id", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)
		c.Locals("tenant_id", claims.TenantID)

		// Backend services trust these headers, never the client's own
		c.Request().Header.Set("X-User-ID", claims.UserID)
		c.Request().Header.Set("X-Username", claims.Username)
		c.Request().Header.Set("X-User-Role", claims.Role)
		c.Request().Header.Set(TenantHeader, claims.TenantID)

		return c.Next()
	}
}

// AdminMiddleware checks if user has admin role
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := c.Locals("role")
		if role == nil || role.(string) != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access required",
			})
		}
		return c.Next()
	}
}

// OptionalAuthMiddleware validates token if present but doesn't require it.
// Without a valid token the tenant header is cleared so unauthenticated
// callers can only reach the host tenant.
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Request().Header.Del(TenantHeader)

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := auth.ValidateToken(parts[1]); err == nil {
				c.Locals("user_id", claims.UserID)
				c.Locals("username", claims.Username)
				c.Locals("role", claims.Role)
				c.Locals("tenant_id", claims.TenantID)
				c.Request().Header.Set(TenantHeader, claims.TenantID)
			}
		}

		return c.Next()
	}
}
