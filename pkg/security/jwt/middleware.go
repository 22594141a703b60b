package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func deny(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": msg})
}

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// On success sets user id (subject) into c.Locals("userId").
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return deny(c, http.StatusUnauthorized, "missing Authorization header")
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		tokenStr := strings.TrimSpace(authHeader)
		if parts := strings.SplitN(tokenStr, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenStr = strings.TrimSpace(parts[1])
		}
		if tokenStr == "" {
			return deny(c, http.StatusUnauthorized, "empty token")
		}
		claims, err := Parse(tokenStr, secret, expectedIssuer)
		if err != nil {
			return deny(c, http.StatusUnauthorized, "invalid or expired token")
		}
		c.Locals("userId", claims.Subject)
		if claims.IsAdmin {
			c.Locals("isAdmin", true)
		}
		return c.Next()
	}
}

// RequireAdmin must run after NewAuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isAdmin, _ := c.Locals("isAdmin").(bool); !isAdmin {
			return deny(c, http.StatusForbidden, "admin privileges required")
		}
		return c.Next()
	}
}
