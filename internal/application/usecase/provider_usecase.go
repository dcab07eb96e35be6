package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// ProviderUseCase casos de uso CRUD para proveedores.
type ProviderUseCase struct {
	repo repository.ProviderRepository
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(repo repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{repo: repo}
}

func (uc *ProviderUseCase) List(ctx context.Context) ([]dto.ProviderResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProviderResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProviderResponse(p))
	}
	return out, nil
}

// GetByID obtiene un proveedor; nil, nil si no existe.
func (uc *ProviderUseCase) GetByID(ctx context.Context, id int64) (*dto.ProviderResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

// Create registra el proveedor a nombre de actorID. CNPJ repetido devuelve ErrDuplicate.
func (uc *ProviderUseCase) Create(ctx context.Context, actorID int64, in dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	p := &entity.Provider{
		Name:        strings.TrimSpace(in.Name),
		CNPJ:        in.CNPJ,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		ContactName: in.ContactName,
		CreatedBy:   actorID,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

// Update aplica los campos presentes; nil, nil si el proveedor no existe.
func (uc *ProviderUseCase) Update(ctx context.Context, id int64, in dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.CNPJ != nil {
		p.CNPJ = *in.CNPJ
	}
	if in.PhoneNumber != nil {
		p.PhoneNumber = *in.PhoneNumber
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.ContactName != nil {
		p.ContactName = *in.ContactName
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

func (uc *ProviderUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.SoftDelete(ctx, id)
}

func toProviderResponse(p *entity.Provider) *dto.ProviderResponse {
	if p == nil {
		return nil
	}
	return &dto.ProviderResponse{
		ID:           p.ID,
		Name:         p.Name,
		CNPJ:         p.CNPJ,
		PhoneNumber:  p.PhoneNumber,
		Email:        p.Email,
		ContactName:  p.ContactName,
		CreatedBy:    p.CreatedBy,
		MetaDatetime: dto.MetaDatetime{CreatedOn: p.CreatedAt, UpdatedOn: p.UpdatedAt},
	}
}
