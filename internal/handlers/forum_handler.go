package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dymun-conference/portal-backend/internal/content"
	"github.com/dymun-conference/portal-backend/internal/dto"
	"github.com/dymun-conference/portal-backend/internal/middleware"
	"github.com/dymun-conference/portal-backend/internal/repository"
	"github.com/dymun-conference/portal-backend/internal/store"
)

type ForumHandler struct {
	doubts *repository.DoubtRepository
}

func NewForumHandler(doubts *repository.DoubtRepository) *ForumHandler {
	return &ForumHandler{doubts: doubts}
}

// CreateDoubt godoc
// @Summary Submit a question to a committee
// @Description Creates a pending doubt; it appears in the committee feed only after moderation
// @Tags forum
// @Accept json
// @Produce json
// @Param doubt body dto.CreateDoubtRequest true "committeeName and question"
// @Success 201 {object} models.ForumDoubt
// @Failure 400 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Router /api/forum/doubts [post]
func (h *ForumHandler) CreateDoubt(c *fiber.Ctx) error {
	var req dto.CreateDoubtRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
	}

	req.CommitteeName = strings.TrimSpace(req.CommitteeName)
	req.Question = strings.TrimSpace(req.Question)
	if req.CommitteeName == "" || req.Question == "" {
		return fiber.NewError(fiber.StatusBadRequest, "committeeName and question are required")
	}
	if _, ok := content.FindCommittee(req.CommitteeName); !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown committee: "+req.CommitteeName)
	}

	doubt, err := h.doubts.Create(middleware.UserID(c), req.CommitteeName, req.Question)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create doubt")
	}
	return c.Status(fiber.StatusCreated).JSON(doubt)
}

// GetByCommittee returns the approved doubts of one committee.
func (h *ForumHandler) GetByCommittee(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("committee"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid committee name")
	}
	return c.JSON(h.doubts.FindByCommittee(name))
}

// GetMine returns the caller's own doubts, any approval state.
func (h *ForumHandler) GetMine(c *fiber.Ctx) error {
	return c.JSON(h.doubts.FindByUser(middleware.UserID(c)))
}

// GetByUser serves the explicit-id variant of the history view. Registered
// only when ALLOW_USER_QUERY is on.
func (h *ForumHandler) GetByUser(c *fiber.Ctx) error {
	return c.JSON(h.doubts.FindByUser(c.Params("userId")))
}

// GetAll returns every doubt for the moderation view.
func (h *ForumHandler) GetAll(c *fiber.Ctx) error {
	return c.JSON(h.doubts.FindAll())
}

// UpdateDoubt godoc
// @Summary Moderate a doubt
// @Description Sets the chair response and/or the approval flag
// @Tags forum
// @Accept json
// @Produce json
// @Param id path string true "doubt id"
// @Param update body dto.UpdateDoubtRequest true "response and/or isApproved"
// @Success 200 {object} models.ForumDoubt
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /api/forum/doubts/{id} [patch]
func (h *ForumHandler) UpdateDoubt(c *fiber.Ctx) error {
	var req dto.UpdateDoubtRequest
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid update: only response and isApproved are allowed")
	}

	updated, err := h.doubts.Update(c.Params("id"), repository.ModerationUpdate{
		Response:   req.Response,
		IsApproved: req.IsApproved,
	})
	if errors.Is(err, store.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Doubt not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update doubt")
	}
	return c.JSON(updated)
}
