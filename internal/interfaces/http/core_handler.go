package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
)

// CoreHandler rutas de servicio: bienvenida y health check.
type CoreHandler struct {
	appName string
}

// NewCoreHandler construye el handler.
func NewCoreHandler(appName string) *CoreHandler {
	return &CoreHandler{appName: appName}
}

// Root godoc
// @Summary      Bienvenida
// @Tags         core
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/ [get]
func (h *CoreHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: h.appName + " en funcionamiento"})
}

// Health godoc
// @Summary      Health check
// @Tags         core
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *CoreHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
