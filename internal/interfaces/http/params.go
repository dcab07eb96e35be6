package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
)

// paramID lee un parámetro de ruta entero positivo.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pageRequest lee :page y ?per_page=. Valores no numéricos se reportan como 0
// para que la validación de página los rechace.
func pageRequest(c *fiber.Ctx) dto.PageRequest {
	page, err := strconv.Atoi(c.Params("page"))
	if err != nil {
		page = 0
	}
	perPage := dto.DefaultPerPage
	if raw := c.Query("per_page"); raw != "" {
		if perPage, err = strconv.Atoi(raw); err != nil {
			perPage = 0
		}
	}
	return dto.PageRequest{Page: page, PerPage: perPage}
}
