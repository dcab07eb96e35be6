package repository

import (
	"context"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// TransactionFilter agrupa los filtros de consulta. Los campos de texto son
// búsquedas parciales sin distinguir mayúsculas; los vacíos no filtran.
type TransactionFilter struct {
	ProductName  string
	ProviderName string
	Description  string
	Kind         entity.TransactionKind
	StartDate    *time.Time
	FinishDate   *time.Time
	Limit        int
	Offset       int
}

// TransactionRepository define el puerto de persistencia para Transaction.
// No existe Update ni Delete: las transacciones son inmutables.
type TransactionRepository interface {
	// Create inserta cabecera y líneas; completa ID y fechas en tx y sus ítems.
	Create(ctx context.Context, tx *entity.Transaction) error
	// GetByID devuelve la transacción con nombre de proveedor y líneas enriquecidas.
	GetByID(ctx context.Context, id int64) (*entity.Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)
	Count(ctx context.Context, filter TransactionFilter) (int, error)
}
