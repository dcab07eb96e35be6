package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
)

// transactionRegistrar registra entradas y salidas. Lo implementa *inventory.TransactionProcessor.
type transactionRegistrar interface {
	RegisterIncoming(ctx context.Context, actorID int64, in dto.IncomingTransactionRequest) (*dto.TransactionResponse, error)
	RegisterOutgoing(ctx context.Context, actorID int64, in dto.OutgoingTransactionRequest) (*dto.TransactionResponse, error)
}

// transactionQuerier consultas de transacciones. Lo implementa *inventory.TransactionQueryUseCase.
type transactionQuerier interface {
	List(ctx context.Context, f dto.TransactionFilterRequest) ([]dto.TransactionResponse, error)
	ListPage(ctx context.Context, f dto.TransactionFilterRequest, page dto.PageRequest) (*dto.TransactionPageResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.TransactionResponse, error)
	Receipt(ctx context.Context, id int64) ([]byte, error)
}

// TransactionHandler maneja entradas, salidas y consultas de transacciones (protegido).
type TransactionHandler struct {
	registrar transactionRegistrar
	queries   transactionQuerier
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(registrar transactionRegistrar, queries transactionQuerier) *TransactionHandler {
	return &TransactionHandler{registrar: registrar, queries: queries}
}

// RegisterIncoming godoc
// @Summary      Registrar entrada de mercancía
// @Description  Suma las cantidades al inventario. Productos repetidos se agrupan; provider_id es obligatorio.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IncomingTransactionRequest  true  "description, date, provider_id, products"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/incoming/transaction [post]
func (h *TransactionHandler) RegisterIncoming(c *fiber.Ctx) error {
	var in dto.IncomingTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if resp := validateRequest(&in); resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}
	out, err := h.registrar.RegisterIncoming(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegisterOutgoing godoc
// @Summary      Registrar salida de mercancía
// @Description  Resta las cantidades del inventario; falla sin cambios si algún producto no tiene stock suficiente.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OutgoingTransactionRequest  true  "description, date, products"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/outgoing/transaction [post]
func (h *TransactionHandler) RegisterOutgoing(c *fiber.Ctx) error {
	var in dto.OutgoingTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if resp := validateRequest(&in); resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}
	out, err := h.registrar.RegisterOutgoing(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar transacciones
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        product_name      query  string  false  "Nombre de producto (contiene)"
// @Param        provider_name     query  string  false  "Nombre de proveedor (contiene)"
// @Param        description       query  string  false  "Descripción (contiene)"
// @Param        transaction_type  query  string  false  "ENTRADA o SAIDA"
// @Param        start_date        query  string  false  "Desde (YYYY-MM-DD)"
// @Param        finish_date       query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {array}   dto.TransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	f, resp := parseTransactionFilter(c)
	if resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}
	out, err := h.queries.List(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListPage godoc
// @Summary      Listar transacciones paginadas
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        page              path   int     true   "Página (desde 1)"
// @Param        per_page          query  int     false  "Ítems por página"  default(20)
// @Param        product_name      query  string  false  "Nombre de producto (contiene)"
// @Param        provider_name     query  string  false  "Nombre de proveedor (contiene)"
// @Param        description       query  string  false  "Descripción (contiene)"
// @Param        transaction_type  query  string  false  "ENTRADA o SAIDA"
// @Param        start_date        query  string  false  "Desde (YYYY-MM-DD)"
// @Param        finish_date       query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.TransactionPageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions/page/{page} [get]
func (h *TransactionHandler) ListPage(c *fiber.Ctx) error {
	f, resp := parseTransactionFilter(c)
	if resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}
	out, err := h.queries.ListPage(c.UserContext(), f, pageRequest(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener transacción por ID
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un entero positivo")
	}
	out, err := h.queries.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "transacción no encontrada")
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF de una transacción
// @Tags         transactions
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la transacción"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id}/receipt [get]
func (h *TransactionHandler) Receipt(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un entero positivo")
	}
	pdf, err := h.queries.Receipt(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="transaccion-%d.pdf"`, id))
	return c.Send(pdf)
}

func parseTransactionFilter(c *fiber.Ctx) (dto.TransactionFilterRequest, *dto.ErrorResponse) {
	var f dto.TransactionFilterRequest
	if err := c.QueryParser(&f); err != nil {
		return f, &dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"}
	}
	return f, validateRequest(&f)
}
