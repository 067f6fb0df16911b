package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// LocalUserID is the Locals key carrying the authenticated user id.
const LocalUserID = "user_id"

// SessionKeyUserID is the session key the login handler writes.
const SessionKeyUserID = "userId"

// SessionUID resolves the request's session cookie and, when it carries a
// user id, exposes it via Locals. Requests without a session pass through
// anonymous; RequireAuth decides whether that is acceptable.
func SessionUID(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Next()
		}
		if uid, ok := sess.Get(SessionKeyUserID).(string); ok && uid != "" {
			c.Locals(LocalUserID, uid)
		}
		return c.Next()
	}
}
