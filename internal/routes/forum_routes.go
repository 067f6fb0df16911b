package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dymun-conference/portal-backend/internal/handlers"
	"github.com/dymun-conference/portal-backend/internal/middleware"
)

func RegisterForumRoutes(api fiber.Router, d Deps) {
	handler := handlers.NewForumHandler(d.Doubts)
	moderator := middleware.RequireModerator(d.Users)

	forum := api.Group("/forum")
	forum.Post("/doubts", middleware.RequireAuth(), handler.CreateDoubt)
	forum.Get("/doubts", moderator, handler.GetAll)
	forum.Get("/doubts/user/me", middleware.RequireAuth(), handler.GetMine)
	if d.Cfg.AllowUserQuery {
		forum.Get("/doubts/user/:userId", handler.GetByUser)
	}
	forum.Get("/doubts/:committee", handler.GetByCommittee)
	forum.Patch("/doubts/:id", moderator, handler.UpdateDoubt)
}
