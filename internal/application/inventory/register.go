package inventory

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	domaininv "github.com/jhoicas/estoque-api/internal/domain/inventory"
)

// RegisterIncoming adapta el request HTTP de entrada al procesador.
func (p *TransactionProcessor) RegisterIncoming(ctx context.Context, actorID int64, in dto.IncomingTransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := p.Process(ctx, TransactionInput{
		Kind:        entity.TransactionIncoming,
		Description: in.Description,
		Date:        in.Date.Time,
		ProviderID:  in.ProviderID,
		Lines:       linesFrom(in.Products),
		ActorID:     actorID,
	})
	if err != nil {
		return nil, err
	}
	resp := ToTransactionResponse(tx)
	return &resp, nil
}

// RegisterOutgoing adapta el request HTTP de salida al procesador.
func (p *TransactionProcessor) RegisterOutgoing(ctx context.Context, actorID int64, in dto.OutgoingTransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := p.Process(ctx, TransactionInput{
		Kind:        entity.TransactionOutgoing,
		Description: in.Description,
		Date:        in.Date.Time,
		Lines:       linesFrom(in.Products),
		ActorID:     actorID,
	})
	if err != nil {
		return nil, err
	}
	resp := ToTransactionResponse(tx)
	return &resp, nil
}

func linesFrom(items []dto.TransactionItemRequest) []domaininv.Line {
	lines := make([]domaininv.Line, len(items))
	for i, it := range items {
		lines[i] = domaininv.Line{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return lines
}

// ToTransactionResponse convierte la entidad a su representación HTTP.
func ToTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	items := make([]dto.TransactionItemResponse, len(t.Items))
	for i, it := range t.Items {
		items[i] = dto.TransactionItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ProductSize: it.ProductSize,
			Quantity:    it.Quantity,
		}
	}
	return dto.TransactionResponse{
		ID:               t.ID,
		Type:             string(t.Kind),
		Description:      t.Description,
		Date:             dto.NewDate(t.Date),
		ProviderID:       t.ProviderID,
		ProviderName:     t.ProviderName,
		CreatedBy:        t.CreatedBy,
		Products:         items,
		VerificationCode: domaininv.Fingerprint(t),
		MetaDatetime:     dto.MetaDatetime{CreatedOn: t.CreatedAt, UpdatedOn: t.UpdatedAt},
	}
}
