package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dymun-conference/portal-backend/internal/repository"
)

// RequireModerator gates moderation endpoints. The caller must be
// authenticated and their user record must carry the moderator role.
func RequireModerator(users *repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid := UserID(c)
		if uid == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		u, ok := users.FindByID(uid)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		if !u.IsModerator() {
			return fiber.NewError(fiber.StatusForbidden, "Moderator access required")
		}
		return c.Next()
	}
}
