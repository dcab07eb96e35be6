package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionSelect = `
	SELECT t.id, t.type, t.description, t.date, t.provider_id, COALESCE(p.name, ''),
	       t.created_by, t.created_on, t.updated_on
	FROM transactions t
	LEFT JOIN providers p ON p.id = t.provider_id`

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create inserta la cabecera y una fila por ítem. Debe ejecutarse dentro de la
// misma tx que el ajuste de inventario.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO transactions (type, description, date, provider_id, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_on, updated_on`,
		string(t.Kind), t.Description, t.Date, t.ProviderID, t.CreatedBy,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	for i := range t.Items {
		item := &t.Items[i]
		item.TransactionID = t.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO transaction_products (transaction_id, product_id, quantity)
			VALUES ($1, $2, $3)
			RETURNING id`,
			t.ID, item.ProductID, item.Quantity,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert transaction item %d: %w", item.ProductID, err)
		}
	}
	return nil
}

// GetByID devuelve la transacción con sus líneas; nil, nil si no existe.
func (r *TransactionRepo) GetByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	list, err := r.queryTransactions(ctx, transactionSelect+` WHERE t.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// List lista transacciones filtradas, más recientes primero.
func (r *TransactionRepo) List(ctx context.Context, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	w := transactionWhere(filter)
	query := transactionSelect + w.sql() + ` ORDER BY t.date DESC, t.id DESC` + w.page(filter.Limit, filter.Offset)
	list, err := r.queryTransactions(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return list, nil
}

// Count cuenta las transacciones que cumplen el filtro.
func (r *TransactionRepo) Count(ctx context.Context, filter repository.TransactionFilter) (int, error) {
	w := transactionWhere(filter)
	var n int
	query := `SELECT count(*) FROM transactions t LEFT JOIN providers p ON p.id = t.provider_id` + w.sql()
	if err := r.q.QueryRow(ctx, query, w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}

func (r *TransactionRepo) queryTransactions(ctx context.Context, query string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	var list []*entity.Transaction
	byID := make(map[int64]*entity.Transaction)
	for rows.Next() {
		var t entity.Transaction
		var kind string
		if err := rows.Scan(&t.ID, &kind, &t.Description, &t.Date, &t.ProviderID, &t.ProviderName,
			&t.CreatedBy, &t.CreatedAt, &t.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Kind = entity.TransactionKind(kind)
		list = append(list, &t)
		byID[t.ID] = &t
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}
	if err := r.loadItems(ctx, byID); err != nil {
		return nil, err
	}
	return list, nil
}

// loadItems carga las líneas de todas las transacciones en una sola consulta.
func (r *TransactionRepo) loadItems(ctx context.Context, byID map[int64]*entity.Transaction) error {
	ids := make([]int64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	rows, err := r.q.Query(ctx, `
		SELECT tp.id, tp.transaction_id, tp.product_id, pr.name, pr.size, tp.quantity
		FROM transaction_products tp
		JOIN products pr ON pr.id = tp.product_id
		WHERE tp.transaction_id = ANY($1)
		ORDER BY tp.transaction_id, tp.product_id`, ids)
	if err != nil {
		return fmt.Errorf("list transaction items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.TransactionItem
		if err := rows.Scan(&it.ID, &it.TransactionID, &it.ProductID, &it.ProductName, &it.ProductSize, &it.Quantity); err != nil {
			return fmt.Errorf("scan transaction item: %w", err)
		}
		if t, ok := byID[it.TransactionID]; ok {
			t.Items = append(t.Items, it)
		}
	}
	return rows.Err()
}

func transactionWhere(f repository.TransactionFilter) *whereBuilder {
	w := &whereBuilder{}
	w.addLike("t.description", f.Description)
	w.addLike("p.name", f.ProviderName)
	if f.ProductName != "" {
		w.add(`EXISTS (
			SELECT 1 FROM transaction_products tp JOIN products pr ON pr.id = tp.product_id
			WHERE tp.transaction_id = t.id AND pr.name ILIKE ?)`, "%"+escapeLike(f.ProductName)+"%")
	}
	if f.Kind != "" {
		w.add("t.type = ?", string(f.Kind))
	}
	if f.StartDate != nil {
		w.add("t.date >= ?", *f.StartDate)
	}
	if f.FinishDate != nil {
		w.add("t.date <= ?", *f.FinishDate)
	}
	return w
}
