package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dymun-conference/portal-backend/internal/handlers"
	"github.com/dymun-conference/portal-backend/internal/middleware"
)

func RegisterAuthRoutes(api fiber.Router, d Deps) {
	handler := handlers.NewAuthHandler(d.Users, d.Cfg, d.Sessions)

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Get("/me", middleware.RequireAuth(), handler.Me)
	auth.Post("/logout", handler.Logout)
}
