package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// TransactionQueryUseCase consultas de solo lectura sobre transacciones.
type TransactionQueryUseCase struct {
	repo     repository.TransactionRepository
	receipts ReceiptGenerator
}

// NewTransactionQueryUseCase construye el caso de uso.
func NewTransactionQueryUseCase(repo repository.TransactionRepository, receipts ReceiptGenerator) *TransactionQueryUseCase {
	return &TransactionQueryUseCase{repo: repo, receipts: receipts}
}

// List devuelve todas las transacciones que cumplen los filtros.
func (uc *TransactionQueryUseCase) List(ctx context.Context, f dto.TransactionFilterRequest) ([]dto.TransactionResponse, error) {
	filter, err := toTransactionFilter(f)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// ListPage devuelve una página con metadatos de paginación.
func (uc *TransactionQueryUseCase) ListPage(ctx context.Context, f dto.TransactionFilterRequest, page dto.PageRequest) (*dto.TransactionPageResponse, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	filter, err := toTransactionFilter(f)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	meta, err := dto.NewPaginationMeta(page, total, f.QueryParams()...)
	if err != nil {
		return nil, err
	}
	filter.Limit = page.PerPage
	filter.Offset = page.Offset()
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.TransactionPageResponse{Items: toTransactionResponses(list), Pagination: *meta}, nil
}

// GetByID obtiene una transacción; nil, nil si no existe.
func (uc *TransactionQueryUseCase) GetByID(ctx context.Context, id int64) (*dto.TransactionResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil || t == nil {
		return nil, err
	}
	resp := ToTransactionResponse(t)
	return &resp, nil
}

// Receipt genera el PDF del comprobante. ErrNotFound si la transacción no existe.
func (uc *TransactionQueryUseCase) Receipt(ctx context.Context, id int64) ([]byte, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	pdf, err := uc.receipts.GenerateTransactionReceipt(t)
	if err != nil {
		return nil, fmt.Errorf("generar comprobante: %w", err)
	}
	return pdf, nil
}

func toTransactionFilter(f dto.TransactionFilterRequest) (repository.TransactionFilter, error) {
	filter := repository.TransactionFilter{
		ProductName:  f.ProductName,
		ProviderName: f.ProviderName,
		Description:  f.Description,
	}
	if f.TransactionType != "" {
		kind := entity.TransactionKind(f.TransactionType)
		if !kind.Valid() {
			return filter, domain.ErrInvalidTransactionType
		}
		filter.Kind = kind
	}
	var err error
	if filter.StartDate, err = optionalDate(f.StartDate); err != nil {
		return filter, err
	}
	if filter.FinishDate, err = optionalDate(f.FinishDate); err != nil {
		return filter, err
	}
	if filter.StartDate != nil && filter.FinishDate != nil && filter.StartDate.After(*filter.FinishDate) {
		return filter, domain.ErrInvalidDateRange
	}
	return filter, nil
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := dto.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, s)
	}
	return &d.Time, nil
}

func toTransactionResponses(list []*entity.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, ToTransactionResponse(t))
	}
	return out
}
