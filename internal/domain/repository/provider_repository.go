package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// ProviderRepository define el puerto de persistencia para Provider.
// Las lecturas ignoran proveedores borrados.
type ProviderRepository interface {
	Create(ctx context.Context, provider *entity.Provider) error
	GetByID(ctx context.Context, id int64) (*entity.Provider, error)
	Update(ctx context.Context, provider *entity.Provider) error
	SoftDelete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Provider, error)
}
