package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/dymun-conference/portal-backend/internal/content"
)

// GetCommittees returns the registry grouped by school level.
func GetCommittees(c *fiber.Ctx) error {
	return c.JSON(content.CommitteeGroups())
}

// GetCommittee returns one committee by name.
func GetCommittee(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid committee name")
	}
	committee, ok := content.FindCommittee(name)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Committee not found")
	}
	return c.JSON(committee)
}

// GetResources returns the general study material plus the committee's own.
func GetResources(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("committee"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid committee name")
	}
	return c.JSON(content.ResourcesFor(name))
}

// GetContacts returns the conference contact people.
func GetContacts(c *fiber.Ctx) error {
	return c.JSON(content.Contacts())
}
