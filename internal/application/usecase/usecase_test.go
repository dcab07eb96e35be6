package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/password"
)

// ── fakes en memoria ─────────────────────────────────────────────────────────

type memProducts struct {
	rows   map[int64]*entity.Product
	nextID int64
}

func newMemProducts(list ...*entity.Product) *memProducts {
	m := &memProducts{rows: map[int64]*entity.Product{}}
	for _, p := range list {
		m.rows[p.ID] = p
		if p.ID > m.nextID {
			m.nextID = p.ID
		}
	}
	return m
}

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.nextID++
	p.ID = m.nextID
	m.rows[p.ID] = p
	return nil
}

func (m *memProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := m.rows[id]
	if !ok || p.IsDeleted {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error) {
	out := map[int64]*entity.Product{}
	for _, id := range ids {
		if p, _ := m.GetByID(ctx, id); p != nil {
			out[id] = p
		}
	}
	return out, nil
}

func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	m.rows[p.ID] = p
	return nil
}

func (m *memProducts) SoftDelete(_ context.Context, id int64) error {
	p, ok := m.rows[id]
	if !ok || p.IsDeleted {
		return domain.ErrNotFound
	}
	p.IsDeleted = true
	return nil
}

func (m *memProducts) matching(f repository.ProductFilter) []*entity.Product {
	var out []*entity.Product
	for id := int64(1); id <= m.nextID; id++ {
		p, ok := m.rows[id]
		if !ok || p.IsDeleted {
			continue
		}
		if f.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Name)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (m *memProducts) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	out := m.matching(f)
	if f.Offset >= len(out) {
		return nil, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *memProducts) Count(_ context.Context, f repository.ProductFilter) (int, error) {
	return len(m.matching(f)), nil
}

func (m *memProducts) AdjustInventory(context.Context, []repository.InventoryAdjustment) ([]int64, error) {
	return nil, nil
}

type memProviders struct {
	rows map[int64]*entity.Provider
}

func (m *memProviders) Create(_ context.Context, p *entity.Provider) error {
	for _, existing := range m.rows {
		if existing.CNPJ == p.CNPJ {
			return domain.ErrDuplicate
		}
	}
	p.ID = int64(len(m.rows) + 1)
	m.rows[p.ID] = p
	return nil
}

func (m *memProviders) GetByID(_ context.Context, id int64) (*entity.Provider, error) {
	p, ok := m.rows[id]
	if !ok || p.IsDeleted {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProviders) Update(_ context.Context, p *entity.Provider) error {
	m.rows[p.ID] = p
	return nil
}

func (m *memProviders) SoftDelete(_ context.Context, id int64) error {
	p, ok := m.rows[id]
	if !ok || p.IsDeleted {
		return domain.ErrNotFound
	}
	p.IsDeleted = true
	return nil
}

func (m *memProviders) List(context.Context) ([]*entity.Provider, error) {
	var out []*entity.Provider
	for _, p := range m.rows {
		if !p.IsDeleted {
			out = append(out, p)
		}
	}
	return out, nil
}

type memUsers struct {
	rows map[int64]*entity.User
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	u.ID = int64(len(m.rows) + 1)
	m.rows[u.ID] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := m.rows[id]
	if !ok || u.IsDeleted {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.rows {
		if u.Email == email && !u.IsDeleted {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Update(_ context.Context, u *entity.User) error {
	m.rows[u.ID] = u
	return nil
}

func (m *memUsers) SoftDelete(_ context.Context, id int64) error {
	u, ok := m.rows[id]
	if !ok || u.IsDeleted {
		return domain.ErrNotFound
	}
	u.IsDeleted = true
	return nil
}

func (m *memUsers) List(context.Context) ([]*entity.User, error) { return nil, nil }

func (m *memUsers) ExistsActiveAdmin(context.Context) (bool, error) { return false, nil }

func ptr[T any](v T) *T { return &v }

// ── productos ────────────────────────────────────────────────────────────────

func TestProductUseCase_Create(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts())

	resp, err := uc.Create(context.Background(), 7, dto.CreateProductRequest{
		Name: "  Cimento CP-II ", Size: "50kg", Inventory: 10, Weight: decimal.RequireFromString("50.5"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Cimento CP-II", resp.Name)
	assert.Equal(t, int64(7), resp.CreatedBy)
	assert.True(t, resp.Weight.Equal(decimal.RequireFromString("50.5")))
}

func TestProductUseCase_CreateInventarioNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts())

	_, err := uc.Create(context.Background(), 1, dto.CreateProductRequest{Name: "X", Inventory: -1})

	assert.ErrorIs(t, err, domain.ErrInvalidStockQuantity)
}

func TestProductUseCase_UpdateParcial(t *testing.T) {
	repo := newMemProducts(&entity.Product{ID: 3, Name: "Areia", Size: "m3", Inventory: 4})
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.Update(context.Background(), 3, dto.UpdateProductRequest{Inventory: ptr(int64(9))})

	require.NoError(t, err)
	assert.Equal(t, "Areia", resp.Name, "los campos ausentes no cambian")
	assert.Equal(t, int64(9), repo.rows[3].Inventory)
}

func TestProductUseCase_UpdateInventarioNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts(&entity.Product{ID: 3, Name: "Areia", Inventory: 4}))

	_, err := uc.Update(context.Background(), 3, dto.UpdateProductRequest{Inventory: ptr(int64(-2))})

	assert.ErrorIs(t, err, domain.ErrInvalidStockQuantity)
	assert.Equal(t, []int64{3}, domain.OffendingIDs(err))
}

func TestProductUseCase_UpdateInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts())

	resp, err := uc.Update(context.Background(), 99, dto.UpdateProductRequest{Name: ptr("Y")})

	assert.NoError(t, err)
	assert.Nil(t, resp)
}

func TestProductUseCase_ListFiltraPorNombre(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts(
		&entity.Product{ID: 1, Name: "Tijolo baiano"},
		&entity.Product{ID: 2, Name: "Cimento"},
		&entity.Product{ID: 3, Name: "tijolo maciço"},
	))

	list, err := uc.List(context.Background(), "TIJOLO")

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(3), list[1].ID)
}

func TestProductUseCase_ListVacioDevuelveSliceVacio(t *testing.T) {
	list, err := usecase.NewProductUseCase(newMemProducts()).List(context.Background(), "")

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestProductUseCase_ListPage(t *testing.T) {
	var rows []*entity.Product
	for i := int64(1); i <= 5; i++ {
		rows = append(rows, &entity.Product{ID: i, Name: "Prod"})
	}
	uc := usecase.NewProductUseCase(newMemProducts(rows...))

	page, err := uc.ListPage(context.Background(), "", dto.PageRequest{Page: 2, PerPage: 2})

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(3), page.Items[0].ID)
	assert.Equal(t, 3, page.Pagination.PageCount)
	assert.Equal(t, 5, page.Pagination.TotalCount)
}

func TestProductUseCase_ListPageFueraDeRango(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts(&entity.Product{ID: 1, Name: "Prod"}))

	_, err := uc.ListPage(context.Background(), "", dto.PageRequest{Page: 2, PerPage: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidPage)

	_, err = uc.ListPage(context.Background(), "", dto.PageRequest{Page: 1, PerPage: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidPerPage)
}

func TestProductUseCase_Delete(t *testing.T) {
	repo := newMemProducts(&entity.Product{ID: 1, Name: "Prod"})
	uc := usecase.NewProductUseCase(repo)

	require.NoError(t, uc.Delete(context.Background(), 1))
	assert.True(t, repo.rows[1].IsDeleted)
	assert.ErrorIs(t, uc.Delete(context.Background(), 1), domain.ErrNotFound)
}

// ── proveedores ──────────────────────────────────────────────────────────────

func TestProviderUseCase_CreateYDuplicado(t *testing.T) {
	uc := usecase.NewProviderUseCase(&memProviders{rows: map[int64]*entity.Provider{}})
	in := dto.CreateProviderRequest{Name: " Casa do Construtor ", CNPJ: "12345678000199"}

	resp, err := uc.Create(context.Background(), 2, in)
	require.NoError(t, err)
	assert.Equal(t, "Casa do Construtor", resp.Name)
	assert.Equal(t, int64(2), resp.CreatedBy)

	_, err = uc.Create(context.Background(), 2, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProviderUseCase_Update(t *testing.T) {
	repo := &memProviders{rows: map[int64]*entity.Provider{
		1: {ID: 1, Name: "Depósito", CNPJ: "12345678000199", Email: "a@b.com"},
	}}
	uc := usecase.NewProviderUseCase(repo)

	resp, err := uc.Update(context.Background(), 1, dto.UpdateProviderRequest{ContactName: ptr("Joana")})

	require.NoError(t, err)
	assert.Equal(t, "Joana", resp.ContactName)
	assert.Equal(t, "a@b.com", resp.Email)

	missing, err := uc.Update(context.Background(), 5, dto.UpdateProviderRequest{})
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProviderUseCase_ListOmiteBorrados(t *testing.T) {
	uc := usecase.NewProviderUseCase(&memProviders{rows: map[int64]*entity.Provider{
		1: {ID: 1, Name: "Ativo"},
		2: {ID: 2, Name: "Borrado", IsDeleted: true},
	}})

	list, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ativo", list[0].Name)
}

// ── usuarios ─────────────────────────────────────────────────────────────────

func TestUserUseCase_CreateHasheaYNormalizaEmail(t *testing.T) {
	repo := &memUsers{rows: map[int64]*entity.User{}}
	uc := usecase.NewUserUseCase(repo)

	resp, err := uc.Create(context.Background(), dto.CreateUserRequest{
		FirstName: "Ana", Email: " Ana@Example.COM ", Password: "secreto1",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", resp.Email)
	stored := repo.rows[resp.ID]
	assert.NotEqual(t, "secreto1", stored.PasswordHash)
	assert.NoError(t, password.Verify(stored.PasswordHash, "secreto1"))
}

func TestUserUseCase_UpdatePassword(t *testing.T) {
	repo := &memUsers{rows: map[int64]*entity.User{1: {ID: 1, FirstName: "Ana", PasswordHash: "x"}}}
	uc := usecase.NewUserUseCase(repo)

	resp, err := uc.Update(context.Background(), 1, dto.UpdateUserRequest{Password: ptr("nuevo123")})

	require.NoError(t, err)
	assert.Equal(t, "Ana", resp.FirstName)
	assert.NoError(t, password.Verify(repo.rows[1].PasswordHash, "nuevo123"))
}

func TestUserUseCase_DeleteASiMismo(t *testing.T) {
	repo := &memUsers{rows: map[int64]*entity.User{1: {ID: 1}, 2: {ID: 2}}}
	uc := usecase.NewUserUseCase(repo)

	assert.ErrorIs(t, uc.Delete(context.Background(), 1, 1), domain.ErrConflict)
	assert.False(t, repo.rows[1].IsDeleted)

	require.NoError(t, uc.Delete(context.Background(), 1, 2))
	assert.True(t, repo.rows[2].IsDeleted)
}

func TestToUserResponse_Nil(t *testing.T) {
	assert.Nil(t, usecase.ToUserResponse(nil))
}
