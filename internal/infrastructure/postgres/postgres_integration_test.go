package postgres_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	domaininv "github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupDB abre la BD de TEST_DATABASE_URL, aplica migraciones y vacía las tablas.
// Sin la variable el test se omite.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido; se omite test de integración")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
	if err != nil {
		t.Skipf("PostgreSQL no disponible: %v", err)
	}
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(url, zerolog.Nop()))
	_, err = pool.Exec(ctx, `TRUNCATE transaction_products, transactions, products, providers, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

type fixture struct {
	users     *postgres.UserRepo
	providers *postgres.ProviderRepo
	products  *postgres.ProductRepo
	txs       *postgres.TransactionRepo
	processor *inventory.TransactionProcessor
	admin     *entity.User
}

func newFixture(t *testing.T, pool *pgxpool.Pool) *fixture {
	t.Helper()
	f := &fixture{
		users:     postgres.NewUserRepository(pool),
		providers: postgres.NewProviderRepository(pool),
		products:  postgres.NewProductRepository(pool),
		txs:       postgres.NewTransactionRepository(pool),
	}
	f.processor = inventory.NewTransactionProcessor(postgres.NewTxRunner(pool), f.providers, f.products, zerolog.Nop())
	f.admin = &entity.User{FirstName: "Admin", Email: "admin@example.com", PasswordHash: "x", IsAdmin: true}
	require.NoError(t, f.users.Create(context.Background(), f.admin))
	return f
}

func (f *fixture) product(t *testing.T, name string, inventory int64) int64 {
	t.Helper()
	p := &entity.Product{Name: name, Size: "G", Inventory: inventory, Weight: decimal.RequireFromString("1.250"), CreatedBy: f.admin.ID}
	require.NoError(t, f.products.Create(context.Background(), p))
	return p.ID
}

func (f *fixture) inventories(t *testing.T, ids ...int64) []int64 {
	t.Helper()
	found, err := f.products.FindByIDs(context.Background(), ids)
	require.NoError(t, err)
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = found[id].Inventory
	}
	return out
}

func TestIntegration_EntradaYSalida(t *testing.T) {
	pool := setupDB(t)
	f := newFixture(t, pool)
	ctx := context.Background()

	prov := &entity.Provider{Name: "Fornecedor", CNPJ: "12345678000199", CreatedBy: f.admin.ID}
	require.NoError(t, f.providers.Create(ctx, prov))
	a, b, c := f.product(t, "Camiseta", 5), f.product(t, "Calça", 5), f.product(t, "Meia", 5)

	tx, err := f.processor.Process(ctx, inventory.TransactionInput{
		Kind:       entity.TransactionIncoming,
		Date:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		ProviderID: &prov.ID,
		Lines:      []domaininv.Line{{ProductID: a, Quantity: 8}, {ProductID: b, Quantity: 15}, {ProductID: a, Quantity: 2}, {ProductID: c, Quantity: 22}},
		ActorID:    f.admin.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{15, 20, 27}, f.inventories(t, a, b, c))

	stored, err := f.txs.GetByID(ctx, tx.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 3)
	assert.Equal(t, "Fornecedor", stored.ProviderName)
	assert.Equal(t, "Camiseta", stored.Items[0].ProductName)

	_, err = f.processor.Process(ctx, inventory.TransactionInput{
		Kind:    entity.TransactionOutgoing,
		Lines:   []domaininv.Line{{ProductID: a, Quantity: 15}, {ProductID: b, Quantity: 21}},
		ActorID: f.admin.ID,
	})
	require.ErrorIs(t, err, domain.ErrNotEnoughStock)
	assert.Equal(t, []int64{b}, domain.OffendingIDs(err))
	assert.Equal(t, []int64{15, 20, 27}, f.inventories(t, a, b, c))

	list, err := f.txs.List(ctx, repository.TransactionFilter{ProductName: "camis", Kind: entity.TransactionIncoming})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestIntegration_AdjustInventoryCondicional(t *testing.T) {
	pool := setupDB(t)
	f := newFixture(t, pool)
	id := f.product(t, "Boné", 2)

	missed, err := f.products.AdjustInventory(context.Background(), []repository.InventoryAdjustment{
		{ProductID: id, Delta: -3},
		{ProductID: 9999, Delta: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{id, 9999}, missed)
	assert.Equal(t, []int64{2}, f.inventories(t, id))
}

func TestIntegration_BorradoLogicoUsuarioLiberaEmail(t *testing.T) {
	pool := setupDB(t)
	f := newFixture(t, pool)
	ctx := context.Background()

	u := &entity.User{FirstName: "Ana", Email: "ana@example.com", PasswordHash: "x"}
	require.NoError(t, f.users.Create(ctx, u))
	require.NoError(t, f.users.SoftDelete(ctx, u.ID))

	var email string
	require.NoError(t, pool.QueryRow(ctx, `SELECT email FROM users WHERE id = $1`, u.ID).Scan(&email))
	assert.True(t, strings.HasSuffix(email, "_ana@example.com"))

	again := &entity.User{FirstName: "Ana", Email: "ana@example.com", PasswordHash: "x"}
	assert.NoError(t, f.users.Create(ctx, again))
	assert.ErrorIs(t, f.users.Create(ctx, &entity.User{FirstName: "B", Email: "ana@example.com", PasswordHash: "x"}), domain.ErrEmailAlreadyExists)
}

func TestIntegration_CNPJDuplicado(t *testing.T) {
	pool := setupDB(t)
	f := newFixture(t, pool)
	ctx := context.Background()

	require.NoError(t, f.providers.Create(ctx, &entity.Provider{Name: "A", CNPJ: "11111111000111"}))
	err := f.providers.Create(ctx, &entity.Provider{Name: "B", CNPJ: "11111111000111"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
