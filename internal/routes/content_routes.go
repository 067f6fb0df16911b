package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dymun-conference/portal-backend/internal/handlers"
)

func RegisterContentRoutes(api fiber.Router) {
	api.Get("/committees", handlers.GetCommittees)
	api.Get("/committees/:name", handlers.GetCommittee)
	api.Get("/resources/:committee", handlers.GetResources)
	api.Get("/contacts", handlers.GetContacts)
}
