package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dyondem/callsheet/internal/dto"
	"github.com/dyondem/callsheet/internal/services"
)

type ProjectHandler struct {
	service *services.WorkspaceService
}

func NewProjectHandler(service *services.WorkspaceService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.service.Snapshot().ProjectEvents)
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProjectEventRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	event, err := h.service.CreateProjectEvent(req)
	if err != nil {
		return serviceError(c, err, "Failed to create project event")
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (h *ProjectHandler) SetStatus(c *fiber.Ctx) error {
	var req dto.SetProjectStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	event, err := h.service.SetProjectStatus(c.Params("id"), req.Status)
	if err != nil {
		return serviceError(c, err, "Failed to update project status")
	}
	return c.JSON(event)
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteProjectEvent(id); err != nil {
		return serviceError(c, err, "Failed to delete project event")
	}
	return deleted(c, id)
}
