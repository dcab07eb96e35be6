package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

const providerColumns = `id, name, cnpj, phone_number, email, contact_name, is_deleted, COALESCE(created_by, 0), created_on, updated_on`

// ProviderRepo implementación del puerto ProviderRepository sobre PostgreSQL (usable con pool o tx).
type ProviderRepo struct {
	q Querier
}

// NewProviderRepository construye el adaptador de persistencia para proveedores.
func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{q: q}
}

// Create persiste un proveedor. CNPJ repetido entre activos devuelve ErrDuplicate.
func (r *ProviderRepo) Create(ctx context.Context, p *entity.Provider) error {
	query := `
		INSERT INTO providers (name, cnpj, phone_number, email, contact_name, created_by)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6::bigint, 0))
		RETURNING id, created_on, updated_on`
	err := r.q.QueryRow(ctx, query,
		p.Name, p.CNPJ, p.PhoneNumber, p.Email, p.ContactName, p.CreatedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert provider: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor activo; nil, nil si no existe o está borrado.
func (r *ProviderRepo) GetByID(ctx context.Context, id int64) (*entity.Provider, error) {
	p, err := scanProvider(r.q.QueryRow(ctx,
		`SELECT `+providerColumns+` FROM providers WHERE id = $1 AND NOT is_deleted`, id))
	if err != nil {
		return nil, fmt.Errorf("get provider: %w", err)
	}
	return p, nil
}

// Update reemplaza los datos editables del proveedor.
func (r *ProviderRepo) Update(ctx context.Context, p *entity.Provider) error {
	query := `
		UPDATE providers SET name = $2, cnpj = $3, phone_number = $4, email = $5, contact_name = $6, updated_on = now()
		WHERE id = $1 AND NOT is_deleted
		RETURNING updated_on`
	err := r.q.QueryRow(ctx, query, p.ID, p.Name, p.CNPJ, p.PhoneNumber, p.Email, p.ContactName).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update provider: %w", err)
	}
	return nil
}

// SoftDelete marca el proveedor como borrado.
func (r *ProviderRepo) SoftDelete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE providers SET is_deleted = TRUE, updated_on = now() WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		return fmt.Errorf("delete provider: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los proveedores activos ordenados por ID.
func (r *ProviderRepo) List(ctx context.Context) ([]*entity.Provider, error) {
	rows, err := r.q.Query(ctx, `SELECT `+providerColumns+` FROM providers WHERE NOT is_deleted ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Provider
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProvider(row pgx.Row) (*entity.Provider, error) {
	var p entity.Provider
	err := row.Scan(&p.ID, &p.Name, &p.CNPJ, &p.PhoneNumber, &p.Email, &p.ContactName,
		&p.IsDeleted, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
