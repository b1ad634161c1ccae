package handler

import (
	"github.com/gofiber/fiber/v3"

	"skillswap/internal/pkg/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.JSON(c, fiber.StatusOK, fiber.Map{"status": "ok"})
}
