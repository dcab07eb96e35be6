package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El inventario cambia por
// transacciones o por edición administrativa en Update.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto a nombre de actorID.
func (uc *ProductUseCase) Create(ctx context.Context, actorID int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Inventory < 0 {
		return nil, domain.ErrInvalidStockQuantity
	}
	product := &entity.Product{
		Name:      strings.TrimSpace(in.Name),
		Size:      strings.TrimSpace(in.Size),
		Inventory: in.Inventory,
		Weight:    in.Weight,
		CreatedBy: actorID,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; nil, nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica los campos presentes. El inventario editado no puede quedar negativo.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil || product == nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Size != nil {
		product.Size = strings.TrimSpace(*in.Size)
	}
	if in.Inventory != nil {
		if *in.Inventory < 0 {
			return nil, domain.NewIDListError(domain.ErrInvalidStockQuantity, id)
		}
		product.Inventory = *in.Inventory
	}
	if in.Weight != nil {
		product.Weight = *in.Weight
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos filtrando por nombre (vacío = todos).
func (uc *ProductUseCase) List(ctx context.Context, name string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, repository.ProductFilter{Name: name})
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListPage devuelve una página de productos con metadatos de paginación.
func (uc *ProductUseCase) ListPage(ctx context.Context, name string, page dto.PageRequest) (*dto.ProductPageResponse, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	filter := repository.ProductFilter{Name: name}
	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	meta, err := dto.NewPaginationMeta(page, total, dto.QueryParam{Key: "name", Value: name})
	if err != nil {
		return nil, err
	}
	filter.Limit = page.PerPage
	filter.Offset = page.Offset()
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ProductPageResponse{Items: toProductResponses(list), Pagination: *meta}, nil
}

// Delete borra lógicamente un producto. Las transacciones previas lo siguen referenciando.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.SoftDelete(ctx, id)
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Size:         p.Size,
		Inventory:    p.Inventory,
		Weight:       p.Weight,
		CreatedBy:    p.CreatedBy,
		MetaDatetime: dto.MetaDatetime{CreatedOn: p.CreatedAt, UpdatedOn: p.UpdatedAt},
	}
}
