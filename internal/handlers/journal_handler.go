package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dyondem/callsheet/internal/dto"
	"github.com/dyondem/callsheet/internal/services"
	"github.com/dyondem/callsheet/internal/state"
)

// JournalHandler covers journal entries and the metric time series derived
// views. The role query param defaults to the active role.
type JournalHandler struct {
	service *services.WorkspaceService
}

func NewJournalHandler(service *services.WorkspaceService) *JournalHandler {
	return &JournalHandler{service: service}
}

func (h *JournalHandler) roleOrActive(c *fiber.Ctx) string {
	if role := c.Query("role"); role != "" {
		return role
	}
	return h.service.Snapshot().ActiveRole
}

func (h *JournalHandler) ListEntries(c *fiber.Ctx) error {
	return c.JSON(state.JournalForRole(h.service.Snapshot(), h.roleOrActive(c)))
}

func (h *JournalHandler) SaveEntry(c *fiber.Ctx) error {
	var req dto.SaveJournalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	entry, err := h.service.SaveJournalEntry(req)
	if err != nil {
		return serviceError(c, err, "Failed to save journal entry")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *JournalHandler) DeleteEntry(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteJournalEntry(id); err != nil {
		return serviceError(c, err, "Failed to delete journal entry")
	}
	return deleted(c, id)
}

func (h *JournalHandler) ListMetrics(c *fiber.Ctx) error {
	return c.JSON(state.MetricsForRole(h.service.Snapshot(), h.roleOrActive(c)))
}

func (h *JournalHandler) MetricAverages(c *fiber.Ctx) error {
	return c.JSON(state.RollingAverages(h.service.Snapshot(), h.roleOrActive(c), time.Now()))
}
