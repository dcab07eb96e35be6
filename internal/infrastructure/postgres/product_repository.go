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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, size, inventory, weight, is_deleted, COALESCE(created_by, 0), created_on, updated_on`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (name, size, inventory, weight, created_by)
		VALUES ($1, $2, $3, $4, NULLIF($5::bigint, 0))
		RETURNING id, created_on, updated_on`
	err := r.q.QueryRow(ctx, query, p.Name, p.Size, p.Inventory, p.Weight, p.CreatedBy).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidStockQuantity
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto activo; nil, nil si no existe o está borrado.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 AND NOT is_deleted`, id))
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// FindByIDs resuelve un lote de productos activos en una sola consulta.
func (r *ProductRepo) FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error) {
	found := make(map[int64]*entity.Product, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ANY($1) AND NOT is_deleted`, ids)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		found[p.ID] = p
	}
	return found, rows.Err()
}

// Update reemplaza los datos editables, incluido el inventario (edición administrativa).
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, size = $3, inventory = $4, weight = $5, updated_on = now()
		WHERE id = $1 AND NOT is_deleted
		RETURNING updated_on`
	err := r.q.QueryRow(ctx, query, p.ID, p.Name, p.Size, p.Inventory, p.Weight).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidStockQuantity
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SoftDelete marca el producto como borrado.
func (r *ProductRepo) SoftDelete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET is_deleted = TRUE, updated_on = now() WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos activos ordenados por ID, con filtro de nombre y paginación opcionales.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	w := productWhere(filter)
	query := `SELECT ` + productColumns + ` FROM products` + w.sql() + ` ORDER BY id` + w.page(filter.Limit, filter.Offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Count cuenta los productos que cumplen el filtro (ignora Limit/Offset).
func (r *ProductRepo) Count(ctx context.Context, filter repository.ProductFilter) (int, error) {
	w := productWhere(filter)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products`+w.sql(), w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// AdjustInventory aplica cada delta con un UPDATE condicional. Si el producto no
// existe, está borrado o el inventario quedaría negativo, no se toca la fila y el
// ID se reporta en missed.
func (r *ProductRepo) AdjustInventory(ctx context.Context, adjustments []repository.InventoryAdjustment) ([]int64, error) {
	const query = `
		UPDATE products SET inventory = inventory + $2, updated_on = now()
		WHERE id = $1 AND NOT is_deleted AND inventory + $2 >= 0`
	var missed []int64
	for _, a := range adjustments {
		cmd, err := r.q.Exec(ctx, query, a.ProductID, a.Delta)
		if err != nil {
			return nil, fmt.Errorf("adjust inventory %d: %w", a.ProductID, err)
		}
		if cmd.RowsAffected() == 0 {
			missed = append(missed, a.ProductID)
		}
	}
	return missed, nil
}

func productWhere(filter repository.ProductFilter) *whereBuilder {
	w := &whereBuilder{}
	w.conds = append(w.conds, "NOT is_deleted")
	w.addLike("name", filter.Name)
	return w
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Size, &p.Inventory, &p.Weight,
		&p.IsDeleted, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
