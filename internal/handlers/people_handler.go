package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dyondem/callsheet/internal/dto"
	"github.com/dyondem/callsheet/internal/services"
)

// PeopleHandler covers employees, employee groups, and contacts.
type PeopleHandler struct {
	service *services.WorkspaceService
}

func NewPeopleHandler(service *services.WorkspaceService) *PeopleHandler {
	return &PeopleHandler{service: service}
}

func (h *PeopleHandler) ListEmployees(c *fiber.Ctx) error {
	return c.JSON(h.service.Snapshot().Employees)
}

func (h *PeopleHandler) CreateEmployee(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	emp, err := h.service.CreateEmployee(req)
	if err != nil {
		return serviceError(c, err, "Failed to create employee")
	}
	return c.Status(fiber.StatusCreated).JSON(emp)
}

func (h *PeopleHandler) UpdateEmployee(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	emp, err := h.service.UpdateEmployee(c.Params("id"), req)
	if err != nil {
		return serviceError(c, err, "Failed to update employee")
	}
	return c.JSON(emp)
}

func (h *PeopleHandler) DeleteEmployee(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteEmployee(id); err != nil {
		return serviceError(c, err, "Failed to delete employee")
	}
	return deleted(c, id)
}

func (h *PeopleHandler) ListGroups(c *fiber.Ctx) error {
	return c.JSON(h.service.Snapshot().Groups)
}

func (h *PeopleHandler) CreateGroup(c *fiber.Ctx) error {
	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	group, err := h.service.CreateGroup(req)
	if err != nil {
		return serviceError(c, err, "Failed to create group")
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

func (h *PeopleHandler) SetGroupMembers(c *fiber.Ctx) error {
	var req dto.SetGroupMembersRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	group, err := h.service.SetGroupMembers(c.Params("id"), req.MemberIDs)
	if err != nil {
		return serviceError(c, err, "Failed to update group members")
	}
	return c.JSON(group)
}

func (h *PeopleHandler) DeleteGroup(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteGroup(id); err != nil {
		return serviceError(c, err, "Failed to delete group")
	}
	return deleted(c, id)
}

func (h *PeopleHandler) ListContacts(c *fiber.Ctx) error {
	return c.JSON(h.service.Snapshot().Contacts)
}

func (h *PeopleHandler) CreateContact(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	contact, err := h.service.CreateContact(req)
	if err != nil {
		return serviceError(c, err, "Failed to create contact")
	}
	return c.Status(fiber.StatusCreated).JSON(contact)
}

func (h *PeopleHandler) UpdateContact(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	contact, err := h.service.UpdateContact(c.Params("id"), req)
	if err != nil {
		return serviceError(c, err, "Failed to update contact")
	}
	return c.JSON(contact)
}

func (h *PeopleHandler) DeleteContact(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteContact(id); err != nil {
		return serviceError(c, err, "Failed to delete contact")
	}
	return deleted(c, id)
}
