package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un ítem del almacén. Inventory solo cambia por el procesador
// de transacciones o por una edición administrativa, y nunca queda negativo.
type Product struct {
	ID        int64
	Name      string
	Size      string
	Inventory int64
	Weight    decimal.Decimal // kg
	IsDeleted bool
	CreatedBy int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
