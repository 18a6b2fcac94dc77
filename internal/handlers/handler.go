package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dyondem/callsheet/internal/dto"
	"github.com/dyondem/callsheet/internal/services"
)

// serviceError maps service-layer errors onto JSON error responses:
// validation failures are 400, missing records 404, everything else 500.
func serviceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrTextRequired),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrContentRequired),
		errors.Is(err, services.ErrDateRequired),
		errors.Is(err, services.ErrProductionRequired),
		errors.Is(err, services.ErrOrgRequired),
		errors.Is(err, services.ErrURLRequired),
		errors.Is(err, services.ErrUnknownRole),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrInvalidFeature),
		errors.Is(err, services.ErrInvalidMemberType),
		errors.Is(err, services.ErrBuiltinRole):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

// requireConfirm gates cascading deletes behind an explicit confirm flag,
// mirroring the dashboard's confirmation dialog at the API boundary.
func requireConfirm(c *fiber.Ctx) bool {
	return c.Query("confirm") == "true"
}

func deleted(c *fiber.Ctx, id string) error {
	return c.JSON(dto.DeletedResponse{Deleted: true, ID: id})
}
