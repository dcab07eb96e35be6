package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	domaininv "github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/rs/zerolog"
)

// TransactionInput datos de una entrada o salida ya desacoplados del transporte.
type TransactionInput struct {
	Kind        entity.TransactionKind
	Description string
	Date        time.Time // cero = hoy (UTC)
	ProviderID  *int64
	Lines       []domaininv.Line
	ActorID     int64
}

// TransactionProcessor valida y aplica transacciones de inventario en lote.
// Las validaciones corren fuera de la tx de BD; la escritura es todo o nada.
type TransactionProcessor struct {
	txRunner     TxRunner
	providerRepo repository.ProviderRepository
	productRepo  repository.ProductRepository
	log          zerolog.Logger
	now          func() time.Time
}

// NewTransactionProcessor construye el procesador.
func NewTransactionProcessor(
	txRunner TxRunner,
	providerRepo repository.ProviderRepository,
	productRepo repository.ProductRepository,
	log zerolog.Logger,
) *TransactionProcessor {
	return &TransactionProcessor{
		txRunner:     txRunner,
		providerRepo: providerRepo,
		productRepo:  productRepo,
		log:          log,
		now:          time.Now,
	}
}

// Process ejecuta la transacción. Errores de negocio (ver domain) llevan los IDs
// responsables; cualquier otro error es de infraestructura.
func (p *TransactionProcessor) Process(ctx context.Context, in TransactionInput) (*entity.Transaction, error) {
	tx, err := p.process(ctx, in)
	if err != nil {
		p.logRejected(in, err)
		return nil, err
	}
	p.log.Info().
		Str("kind", string(tx.Kind)).
		Int64("actor", in.ActorID).
		Int64("transaction_id", tx.ID).
		Int("lines", len(tx.Items)).
		Msg("transacción registrada")
	return tx, nil
}

func (p *TransactionProcessor) process(ctx context.Context, in TransactionInput) (*entity.Transaction, error) {
	rules, err := rulesFor(in.Kind)
	if err != nil {
		return nil, err
	}
	if len(in.Lines) == 0 {
		return nil, domain.ErrEmptyTransaction
	}

	// 1. consolidación por producto
	lines := domaininv.Merge(in.Lines)

	// 2. cantidades consolidadas
	if ids := domaininv.InvalidQuantities(lines); len(ids) > 0 {
		return nil, domain.NewIDListError(domain.ErrInvalidStockQuantity, ids...)
	}

	// 3. proveedor
	provider, err := rules.resolveProvider(ctx, p.providerRepo, in.ProviderID)
	if err != nil {
		return nil, err
	}

	// 4. productos en un solo lote
	products, err := p.productRepo.FindByIDs(ctx, domaininv.IDs(lines))
	if err != nil {
		return nil, fmt.Errorf("buscar productos: %w", err)
	}
	var missing []int64
	for _, l := range lines {
		if prod := products[l.ProductID]; prod == nil || prod.IsDeleted {
			missing = append(missing, l.ProductID)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewIDListError(domain.ErrItemsNotFound, missing...)
	}

	// 5. stock (solo salidas)
	if ids := rules.insufficient(lines, products); len(ids) > 0 {
		return nil, domain.NewIDListError(domain.ErrNotEnoughStock, ids...)
	}

	tx := p.buildTransaction(rules, in, provider, lines, products)

	// 6. aplicación atómica
	err = p.txRunner.Run(ctx, func(txRepo repository.TransactionRepository, productRepo repository.ProductRepository) error {
		if err := txRepo.Create(ctx, tx); err != nil {
			return err
		}
		missed, err := productRepo.AdjustInventory(ctx, rules.adjustments(lines))
		if err != nil {
			return err
		}
		if len(missed) > 0 {
			return domain.NewIDListError(rules.missErr, missed...)
		}
		return nil
	})
	if err != nil {
		var listErr *domain.IDListError
		if errors.As(err, &listErr) {
			return nil, err
		}
		return nil, fmt.Errorf("aplicar transacción: %w", err)
	}

	// 7. la entidad ya trae proveedor y datos de producto por línea
	return tx, nil
}

func (p *TransactionProcessor) buildTransaction(
	rules kindRules,
	in TransactionInput,
	provider *entity.Provider,
	lines []domaininv.Line,
	products map[int64]*entity.Product,
) *entity.Transaction {
	date := in.Date
	if date.IsZero() {
		date = p.now().UTC()
	}
	y, m, d := date.Date()

	tx := &entity.Transaction{
		Kind:        rules.kind,
		Description: in.Description,
		Date:        time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		CreatedBy:   in.ActorID,
		Items:       make([]entity.TransactionItem, len(lines)),
	}
	if provider != nil {
		id := provider.ID
		tx.ProviderID = &id
		tx.ProviderName = provider.Name
	}
	for i, l := range lines {
		prod := products[l.ProductID]
		tx.Items[i] = entity.TransactionItem{
			ProductID:   l.ProductID,
			ProductName: prod.Name,
			ProductSize: prod.Size,
			Quantity:    l.Quantity,
		}
	}
	return tx
}

func (p *TransactionProcessor) logRejected(in TransactionInput, err error) {
	ev := p.log.Warn()
	if !isBusinessError(err) {
		ev = p.log.Error()
	}
	ev.Err(err).
		Str("kind", string(in.Kind)).
		Int64("actor", in.ActorID).
		Ints64("ids", domain.OffendingIDs(err)).
		Msg("transacción rechazada")
}

// isBusinessError indica si err es un rechazo de negocio y no una falla de infraestructura.
func isBusinessError(err error) bool {
	for _, target := range []error{
		domain.ErrEmptyTransaction,
		domain.ErrInvalidTransactionType,
		domain.ErrProviderRequired,
		domain.ErrProviderNotFound,
		domain.ErrItemsNotFound,
		domain.ErrInvalidStockQuantity,
		domain.ErrNotEnoughStock,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
