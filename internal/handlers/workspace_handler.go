package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dyondem/callsheet/internal/models"
	"github.com/dyondem/callsheet/internal/services"
)

// WorkspaceHandler exposes the raw document: a read of the full snapshot and
// a whole-document replace used for import/export round-trips.
type WorkspaceHandler struct {
	service *services.WorkspaceService
}

func NewWorkspaceHandler(service *services.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{service: service}
}

func (h *WorkspaceHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.service.Snapshot())
}

func (h *WorkspaceHandler) Replace(c *fiber.Ctx) error {
	var doc models.Workspace
	if err := c.BodyParser(&doc); err != nil {
		return badRequest(c, "Invalid workspace document")
	}
	return c.JSON(h.service.ReplaceDocument(doc))
}
