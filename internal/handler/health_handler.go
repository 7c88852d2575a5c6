package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmednasr/embedding-server/internal/models"
)

// HealthHandler answers liveness probes. The model is loaded before the
// server starts listening, so a running process always has a usable handle.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Register(r fiber.Router) {
	r.Get("/health", h.health)
}

func (h *HealthHandler) health(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{Status: "ok"})
}
