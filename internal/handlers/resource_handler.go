package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dyondem/callsheet/internal/dto"
	"github.com/dyondem/callsheet/internal/services"
	"github.com/dyondem/callsheet/internal/state"
)

type ResourceHandler struct {
	service *services.WorkspaceService
}

func NewResourceHandler(service *services.WorkspaceService) *ResourceHandler {
	return &ResourceHandler{service: service}
}

func (h *ResourceHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.service.Snapshot().Resources)
}

func (h *ResourceHandler) Favorites(c *fiber.Ctx) error {
	return c.JSON(state.FavoriteResources(h.service.Snapshot()))
}

func (h *ResourceHandler) ByCategory(c *fiber.Ctx) error {
	return c.JSON(state.ResourcesByCategory(h.service.Snapshot()))
}

func (h *ResourceHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	res, err := h.service.CreateResource(req)
	if err != nil {
		return serviceError(c, err, "Failed to create resource")
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *ResourceHandler) ToggleFavorite(c *fiber.Ctx) error {
	res, err := h.service.ToggleResourceFavorite(c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Failed to toggle favorite")
	}
	return c.JSON(res)
}

func (h *ResourceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteResource(id); err != nil {
		return serviceError(c, err, "Failed to delete resource")
	}
	return deleted(c, id)
}
