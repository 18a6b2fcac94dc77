package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dyondem/callsheet/internal/dto"
	"github.com/dyondem/callsheet/internal/services"
)

// RoleHandler covers the profile singleton, the active-role selector, and
// custom role definitions.
type RoleHandler struct {
	service *services.WorkspaceService
}

func NewRoleHandler(service *services.WorkspaceService) *RoleHandler {
	return &RoleHandler{service: service}
}

func (h *RoleHandler) SaveProfile(c *fiber.Ctx) error {
	var req dto.SaveProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	profile, err := h.service.SaveProfile(req)
	if err != nil {
		return serviceError(c, err, "Failed to save profile")
	}
	return c.JSON(profile)
}

func (h *RoleHandler) GetProfile(c *fiber.Ctx) error {
	doc := h.service.Snapshot()
	if doc.User == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "no profile yet",
		})
	}
	return c.JSON(doc.User)
}

func (h *RoleHandler) SetActiveRole(c *fiber.Ctx) error {
	var req dto.SetActiveRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.service.SetActiveRole(req.Role); err != nil {
		return serviceError(c, err, "Failed to set active role")
	}
	return c.JSON(fiber.Map{"activeRole": req.Role})
}

func (h *RoleHandler) ListCustomRoles(c *fiber.Ctx) error {
	return c.JSON(h.service.Snapshot().CustomRoles)
}

func (h *RoleHandler) CreateCustomRole(c *fiber.Ctx) error {
	var req dto.CreateCustomRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	role, err := h.service.CreateCustomRole(req)
	if err != nil {
		return serviceError(c, err, "Failed to create custom role")
	}
	return c.Status(fiber.StatusCreated).JSON(role)
}

// DeleteCustomRole can reset the active selector, so it is gated behind the
// confirm flag.
func (h *RoleHandler) DeleteCustomRole(c *fiber.Ctx) error {
	if !requireConfirm(c) {
		return badRequest(c, "deletion requires confirm=true")
	}
	id := c.Params("id")
	if err := h.service.DeleteCustomRole(id); err != nil {
		return serviceError(c, err, "Failed to delete custom role")
	}
	return deleted(c, id)
}
