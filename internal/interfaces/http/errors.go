package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
)

// errorMapping relaciona un error de dominio con su respuesta HTTP.
type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// El orden importa: los errores de negocio más específicos van primero.
var errorMappings = []errorMapping{
	{domain.ErrEmptyTransaction, fiber.StatusBadRequest, "EMPTY_TRANSACTION", ""},
	{domain.ErrInvalidTransactionType, fiber.StatusBadRequest, "VALIDATION", ""},
	{domain.ErrProviderRequired, fiber.StatusBadRequest, "VALIDATION", ""},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION", ""},
	{domain.ErrInvalidStockQuantity, fiber.StatusBadRequest, "INVALID_STOCK_QUANTITY", ""},
	{domain.ErrProviderNotFound, fiber.StatusNotFound, "PROVIDER_NOT_FOUND", ""},
	{domain.ErrItemsNotFound, fiber.StatusNotFound, "ITEMS_NOT_FOUND", ""},
	{domain.ErrNotEnoughStock, fiber.StatusUnprocessableEntity, "NOT_ENOUGH_STOCK", ""},
	{domain.ErrInvalidDateRange, fiber.StatusBadRequest, "INVALID_RANGE", ""},
	{domain.ErrInvalidPage, fiber.StatusBadRequest, "INVALID_PAGE", ""},
	{domain.ErrInvalidPerPage, fiber.StatusBadRequest, "INVALID_PAGE", ""},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE", ""},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "DUPLICATE", ""},
	{domain.ErrAdminAlreadyExists, fiber.StatusForbidden, "FORBIDDEN", ""},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", ""},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT", ""},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND", ""},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", ""},
}

// writeError traduce err a dto.ErrorResponse. Los errores no reconocidos se
// registran y se devuelven como 500 sin exponer el detalle.
func writeError(c *fiber.Ctx, err error) error {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		msg := m.message
		if msg == "" {
			msg = err.Error()
		}
		return c.Status(m.status).JSON(dto.ErrorResponse{
			Code:    m.code,
			Message: msg,
			IDs:     domain.OffendingIDs(err),
		})
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Interface("request_id", c.Locals(LocalRequestID)).
		Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

// notFound respuesta 404 con mensaje propio del recurso.
func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: message})
}

// badRequest respuesta 400 con el código indicado.
func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}
