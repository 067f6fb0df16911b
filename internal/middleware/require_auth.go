package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth rejects requests that carry no authenticated user id.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := c.Locals(LocalUserID).(string)
		if !ok || strings.TrimSpace(uid) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		return c.Next()
	}
}

// UserID returns the authenticated user id, empty when anonymous.
func UserID(c *fiber.Ctx) string {
	uid, _ := c.Locals(LocalUserID).(string)
	return uid
}
