package inventory

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	domaininv "github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// kindRules reúne lo que cambia entre entradas y salidas.
type kindRules struct {
	kind entity.TransactionKind
	// sign multiplica la cantidad para obtener el delta de inventario.
	sign int64
	// requiresProvider: el proveedor es obligatorio y debe existir.
	requiresProvider bool
	// checksStock: se verifica inventario suficiente antes de aplicar.
	checksStock bool
	// missErr es el error cuando el UPDATE condicional no afecta la fila.
	missErr error
}

var (
	incomingRules = kindRules{
		kind:             entity.TransactionIncoming,
		sign:             1,
		requiresProvider: true,
		missErr:          domain.ErrItemsNotFound,
	}
	outgoingRules = kindRules{
		kind:        entity.TransactionOutgoing,
		sign:        -1,
		checksStock: true,
		missErr:     domain.ErrNotEnoughStock,
	}
)

func rulesFor(kind entity.TransactionKind) (kindRules, error) {
	switch kind {
	case entity.TransactionIncoming:
		return incomingRules, nil
	case entity.TransactionOutgoing:
		return outgoingRules, nil
	default:
		return kindRules{}, domain.ErrInvalidTransactionType
	}
}

// resolveProvider devuelve el proveedor a registrar. En salidas siempre es nil,
// aunque el cliente haya enviado uno.
func (r kindRules) resolveProvider(ctx context.Context, repo repository.ProviderRepository, id *int64) (*entity.Provider, error) {
	if !r.requiresProvider {
		return nil, nil
	}
	if id == nil {
		return nil, domain.ErrProviderRequired
	}
	provider, err := repo.GetByID(ctx, *id)
	if err != nil {
		return nil, err
	}
	if provider == nil || provider.IsDeleted {
		return nil, domain.NewIDListError(domain.ErrProviderNotFound, *id)
	}
	return provider, nil
}

// insufficient devuelve, en orden ascendente, los productos sin inventario suficiente.
func (r kindRules) insufficient(lines []domaininv.Line, products map[int64]*entity.Product) []int64 {
	if !r.checksStock {
		return nil
	}
	var ids []int64
	for _, l := range lines {
		if p := products[l.ProductID]; p != nil && p.Inventory < l.Quantity {
			ids = append(ids, l.ProductID)
		}
	}
	return ids
}

func (r kindRules) adjustments(lines []domaininv.Line) []repository.InventoryAdjustment {
	adj := make([]repository.InventoryAdjustment, len(lines))
	for i, l := range lines {
		adj[i] = repository.InventoryAdjustment{ProductID: l.ProductID, Delta: r.sign * l.Quantity}
	}
	return adj
}
