package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/dyondem/callsheet/internal/database"
	"github.com/dyondem/callsheet/internal/dto"
)

type HealthHandler struct {
	backend string
	db      *gorm.DB // nil unless the postgres backend is active
}

func NewHealthHandler(backend string, db *gorm.DB) *HealthHandler {
	return &HealthHandler{backend: backend, db: db}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	storeStatus := "ok"
	if h.db != nil {
		if err := database.Ping(h.db); err != nil {
			storeStatus = "unhealthy: " + err.Error()
		}
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Backend:   h.backend,
		Store:     storeStatus,
	})
}
