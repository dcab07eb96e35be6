package inventory_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// memStore simula la BD: productos, proveedores y transacciones en memoria.
// memTxRunner hace snapshot antes de fn y lo restaura si fn falla.
type memStore struct {
	mu           sync.Mutex
	products     map[int64]*entity.Product
	providers    map[int64]*entity.Provider
	transactions []*entity.Transaction
	nextTxID     int64

	findByIDsCalls int
	createErr      error
	// beforeAdjust permite simular escrituras concurrentes entre la validación y el UPDATE.
	beforeAdjust func(s *memStore)
}

func newMemStore() *memStore {
	return &memStore{
		products:  map[int64]*entity.Product{},
		providers: map[int64]*entity.Provider{},
	}
}

func (s *memStore) addProduct(id, inventory int64) {
	s.products[id] = &entity.Product{ID: id, Name: "Produto " + string(rune('A'+id-1)), Size: "M", Inventory: inventory}
}

func (s *memStore) addProvider(id int64, name string, deleted bool) {
	s.providers[id] = &entity.Provider{ID: id, Name: name, IsDeleted: deleted}
}

func (s *memStore) inventories() map[int64]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]int64, len(s.products))
	for id, p := range s.products {
		out[id] = p.Inventory
	}
	return out
}

// ── TxRunner ──

type memTxRunner struct{ s *memStore }

func (r memTxRunner) Run(ctx context.Context, fn func(repository.TransactionRepository, repository.ProductRepository) error) error {
	r.s.mu.Lock()
	snapshot := make(map[int64]entity.Product, len(r.s.products))
	for id, p := range r.s.products {
		snapshot[id] = *p
	}
	txCount := len(r.s.transactions)
	r.s.mu.Unlock()

	if err := fn(memTransactionRepo{r.s}, memProductRepo{r.s}); err != nil {
		r.s.mu.Lock()
		for id, p := range snapshot {
			cp := p
			r.s.products[id] = &cp
		}
		r.s.transactions = r.s.transactions[:txCount]
		r.s.mu.Unlock()
		return err
	}
	return nil
}

// ── ProviderRepository ──

type memProviderRepo struct{ s *memStore }

func (r memProviderRepo) Create(ctx context.Context, p *entity.Provider) error { return errors.New("no usado") }
func (r memProviderRepo) Update(ctx context.Context, p *entity.Provider) error { return errors.New("no usado") }
func (r memProviderRepo) SoftDelete(ctx context.Context, id int64) error       { return errors.New("no usado") }
func (r memProviderRepo) List(ctx context.Context) ([]*entity.Provider, error) { return nil, nil }

func (r memProviderRepo) GetByID(ctx context.Context, id int64) (*entity.Provider, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.providers[id]
	if !ok || p.IsDeleted {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// ── ProductRepository ──

type memProductRepo struct{ s *memStore }

func (r memProductRepo) Create(ctx context.Context, p *entity.Product) error { return errors.New("no usado") }
func (r memProductRepo) Update(ctx context.Context, p *entity.Product) error { return errors.New("no usado") }
func (r memProductRepo) SoftDelete(ctx context.Context, id int64) error      { return errors.New("no usado") }
func (r memProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (r memProductRepo) Count(ctx context.Context, f repository.ProductFilter) (int, error) {
	return 0, nil
}

func (r memProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	found, err := r.FindByIDs(ctx, []int64{id})
	return found[id], err
}

func (r memProductRepo) FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.findByIDsCalls++
	out := map[int64]*entity.Product{}
	for _, id := range ids {
		if p, ok := r.s.products[id]; ok && !p.IsDeleted {
			cp := *p
			out[id] = &cp
		}
	}
	return out, nil
}

func (r memProductRepo) AdjustInventory(ctx context.Context, adj []repository.InventoryAdjustment) ([]int64, error) {
	if r.s.beforeAdjust != nil {
		r.s.beforeAdjust(r.s)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var missed []int64
	for _, a := range adj {
		p, ok := r.s.products[a.ProductID]
		if !ok || p.IsDeleted || p.Inventory+a.Delta < 0 {
			missed = append(missed, a.ProductID)
			continue
		}
		p.Inventory += a.Delta
	}
	return missed, nil
}

// ── TransactionRepository ──

type memTransactionRepo struct{ s *memStore }

func (r memTransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.createErr != nil {
		return r.s.createErr
	}
	seen := map[int64]bool{}
	for _, it := range t.Items {
		if seen[it.ProductID] {
			return errors.New("duplicate key value violates unique constraint ux_transaction_products")
		}
		seen[it.ProductID] = true
	}
	r.s.nextTxID++
	t.ID = r.s.nextTxID
	for i := range t.Items {
		t.Items[i].TransactionID = t.ID
		t.Items[i].ID = int64(i + 1)
	}
	cp := *t
	r.s.transactions = append(r.s.transactions, &cp)
	return nil
}

func (r memTransactionRepo) GetByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r memTransactionRepo) List(ctx context.Context, f repository.TransactionFilter) ([]*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Transaction
	for _, t := range r.s.transactions {
		if f.Kind != "" && t.Kind != f.Kind {
			continue
		}
		out = append(out, t)
	}
	if f.Limit > 0 {
		if f.Offset >= len(out) {
			return nil, nil
		}
		end := f.Offset + f.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[f.Offset:end]
	}
	return out, nil
}

func (r memTransactionRepo) Count(ctx context.Context, f repository.TransactionFilter) (int, error) {
	f.Limit, f.Offset = 0, 0
	list, err := r.List(ctx, f)
	return len(list), err
}
