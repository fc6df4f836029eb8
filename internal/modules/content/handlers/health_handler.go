package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	mode string
}

func NewHealthHandler(mode string) *HealthHandler {
	return &HealthHandler{mode: mode}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "OK",
		"message": "Tourism AI Content Generator API is running",
		"mode":    h.mode,
	})
}
