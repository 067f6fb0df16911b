package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dymun-conference/portal-backend/internal/dto"
)

// ErrorHandler turns fiber errors into the {"message": ...} body every
// endpoint uses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(dto.MessageResponse{Message: err.Error()})
}
