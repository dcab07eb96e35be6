package domain

import (
	"errors"
	"strconv"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrAdminAlreadyExists = errors.New("ya existe un administrador activo")
)

// Errores del procesador de transacciones. Los que identifican filas concretas
// se devuelven envueltos en un *IDListError.
var (
	ErrEmptyTransaction       = errors.New("la transacción debe contener al menos un producto")
	ErrInvalidTransactionType = errors.New("tipo de transacción inválido")
	ErrProviderRequired       = errors.New("provider_id es obligatorio para transacciones de entrada")
	ErrProviderNotFound       = errors.New("proveedor no encontrado")
	ErrItemsNotFound          = errors.New("productos no encontrados")
	ErrInvalidStockQuantity   = errors.New("la cantidad debe ser mayor que cero")
	ErrNotEnoughStock         = errors.New("stock insuficiente")
)

// Errores de consulta y paginación.
var (
	ErrInvalidDateRange = errors.New("la fecha inicial debe ser menor o igual a la final")
	ErrInvalidPage      = errors.New("página inválida")
	ErrInvalidPerPage   = errors.New("la cantidad de ítems por página debe ser mayor que cero")
)

// IDListError asocia un error de dominio con los IDs que lo provocaron.
// errors.Is(err, Kind) sigue funcionando gracias a Unwrap.
type IDListError struct {
	Kind error
	IDs  []int64
}

// NewIDListError construye el error; los IDs se conservan en el orden recibido.
func NewIDListError(kind error, ids ...int64) *IDListError {
	return &IDListError{Kind: kind, IDs: ids}
}

func (e *IDListError) Error() string {
	return e.Kind.Error() + ": " + JoinIDs(e.IDs)
}

func (e *IDListError) Unwrap() error { return e.Kind }

// OffendingIDs devuelve los IDs adjuntos a err, o nil si no es un *IDListError.
func OffendingIDs(err error) []int64 {
	var listErr *IDListError
	if errors.As(err, &listErr) {
		return listErr.IDs
	}
	return nil
}

// JoinIDs formatea IDs como "1, 3, 5".
func JoinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}
