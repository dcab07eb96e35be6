package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// ProductFilter restringe los listados. Name es una búsqueda parcial sin
// distinguir mayúsculas; Limit <= 0 significa sin límite.
type ProductFilter struct {
	Name   string
	Limit  int
	Offset int
}

// InventoryAdjustment suma Delta al inventario de un producto (negativo en salidas).
type InventoryAdjustment struct {
	ProductID int64
	Delta     int64
}

// ProductRepository define el puerto de persistencia para Product.
// Las lecturas ignoran productos borrados.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// FindByIDs resuelve un lote en una sola consulta; los IDs ausentes simplemente
	// no aparecen en el mapa.
	FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	SoftDelete(ctx context.Context, id int64) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Count(ctx context.Context, filter ProductFilter) (int, error)
	// AdjustInventory aplica cada ajuste con un UPDATE condicional que no deja el
	// inventario negativo ni toca productos borrados. Devuelve los IDs que no se
	// pudieron aplicar; el llamador decide si abortar la unidad de trabajo.
	AdjustInventory(ctx context.Context, adjustments []InventoryAdjustment) (missed []int64, err error)
}
