package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dyondem/callsheet/internal/dto"
	"github.com/dyondem/callsheet/internal/services"
	"github.com/dyondem/callsheet/internal/state"
)

// PlannerHandler covers to-dos and meetings, including the derived
// past/upcoming meeting views.
type PlannerHandler struct {
	service *services.WorkspaceService
}

func NewPlannerHandler(service *services.WorkspaceService) *PlannerHandler {
	return &PlannerHandler{service: service}
}

func (h *PlannerHandler) ListTodos(c *fiber.Ctx) error {
	return c.JSON(h.service.Snapshot().Todos)
}

func (h *PlannerHandler) CreateTodo(c *fiber.Ctx) error {
	var req dto.CreateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	todo, err := h.service.CreateTodo(req)
	if err != nil {
		return serviceError(c, err, "Failed to create todo")
	}
	return c.Status(fiber.StatusCreated).JSON(todo)
}

func (h *PlannerHandler) SetTodoStatus(c *fiber.Ctx) error {
	var req dto.SetTodoStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	todo, err := h.service.SetTodoStatus(c.Params("id"), req.Status)
	if err != nil {
		return serviceError(c, err, "Failed to update todo status")
	}
	return c.JSON(todo)
}

func (h *PlannerHandler) DeleteTodo(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteTodo(id); err != nil {
		return serviceError(c, err, "Failed to delete todo")
	}
	return deleted(c, id)
}

func (h *PlannerHandler) ListMeetings(c *fiber.Ctx) error {
	return c.JSON(h.service.Snapshot().Meetings)
}

func (h *PlannerHandler) UpcomingMeetings(c *fiber.Ctx) error {
	return c.JSON(state.UpcomingMeetings(h.service.Snapshot(), time.Now()))
}

func (h *PlannerHandler) PastMeetings(c *fiber.Ctx) error {
	return c.JSON(state.PastMeetings(h.service.Snapshot(), time.Now()))
}

func (h *PlannerHandler) CreateMeeting(c *fiber.Ctx) error {
	var req dto.CreateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	meeting, err := h.service.CreateMeeting(req)
	if err != nil {
		return serviceError(c, err, "Failed to create meeting")
	}
	return c.Status(fiber.StatusCreated).JSON(meeting)
}

func (h *PlannerHandler) UpdateReflection(c *fiber.Ctx) error {
	var req dto.UpdateReflectionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	meeting, err := h.service.UpdateMeetingReflection(c.Params("id"), req)
	if err != nil {
		return serviceError(c, err, "Failed to update reflection")
	}
	return c.JSON(meeting)
}

func (h *PlannerHandler) DeleteMeeting(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteMeeting(id); err != nil {
		return serviceError(c, err, "Failed to delete meeting")
	}
	return deleted(c, id)
}
