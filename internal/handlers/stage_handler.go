package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dyondem/callsheet/internal/dto"
	"github.com/dyondem/callsheet/internal/services"
	"github.com/dyondem/callsheet/internal/state"
)

// StageHandler covers productions, their cast/crew, and rehearsal reports.
type StageHandler struct {
	service *services.WorkspaceService
}

func NewStageHandler(service *services.WorkspaceService) *StageHandler {
	return &StageHandler{service: service}
}

func (h *StageHandler) ListProductions(c *fiber.Ctx) error {
	return c.JSON(h.service.Snapshot().Productions)
}

func (h *StageHandler) CreateProduction(c *fiber.Ctx) error {
	var req dto.CreateProductionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	prod, err := h.service.CreateProduction(req)
	if err != nil {
		return serviceError(c, err, "Failed to create production")
	}
	return c.Status(fiber.StatusCreated).JSON(prod)
}

// DeleteProduction cascades to cast/crew, so it is gated behind the confirm
// flag.
func (h *StageHandler) DeleteProduction(c *fiber.Ctx) error {
	if !requireConfirm(c) {
		return badRequest(c, "deletion requires confirm=true")
	}
	id := c.Params("id")
	if err := h.service.DeleteProduction(id); err != nil {
		return serviceError(c, err, "Failed to delete production")
	}
	return deleted(c, id)
}

func (h *StageHandler) ListCastCrew(c *fiber.Ctx) error {
	return c.JSON(state.CastCrewForProduction(h.service.Snapshot(), c.Params("id")))
}

func (h *StageHandler) AddCastCrew(c *fiber.Ctx) error {
	var req dto.CastCrewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	member, err := h.service.AddCastCrew(c.Params("id"), req)
	if err != nil {
		return serviceError(c, err, "Failed to add cast/crew member")
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

func (h *StageHandler) DeleteCastCrew(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteCastCrew(id); err != nil {
		return serviceError(c, err, "Failed to delete cast/crew member")
	}
	return deleted(c, id)
}

func (h *StageHandler) ListRehearsalReports(c *fiber.Ctx) error {
	return c.JSON(h.service.Snapshot().RehearsalReports)
}

func (h *StageHandler) CreateRehearsalReport(c *fiber.Ctx) error {
	var req dto.RehearsalReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	report, err := h.service.CreateRehearsalReport(req)
	if err != nil {
		return serviceError(c, err, "Failed to create rehearsal report")
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

func (h *StageHandler) DeleteRehearsalReport(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteRehearsalReport(id); err != nil {
		return serviceError(c, err, "Failed to delete rehearsal report")
	}
	return deleted(c, id)
}
