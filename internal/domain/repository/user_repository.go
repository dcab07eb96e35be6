package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// GetByEmail solo considera usuarios no borrados.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// SoftDelete marca el usuario como borrado y libera su email.
	SoftDelete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.User, error)
	ExistsActiveAdmin(ctx context.Context) (bool, error)
}
