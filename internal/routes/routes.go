package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/dymun-conference/portal-backend/internal/config"
	"github.com/dymun-conference/portal-backend/internal/repository"
)

// Deps carries everything the route registrars need.
type Deps struct {
	Cfg      config.Config
	Users    *repository.UserRepository
	Doubts   *repository.DoubtRepository
	Sessions *session.Store // nil in token mode
}

// Register mounts all API routes under /api.
func Register(app *fiber.App, d Deps) {
	api := app.Group("/api")

	RegisterAuthRoutes(api, d)
	RegisterForumRoutes(api, d)
	RegisterContentRoutes(api)
}
