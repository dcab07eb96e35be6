package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. Inventory es el stock inicial.
type CreateProductRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=255"`
	Size      string          `json:"size" validate:"omitempty,max=50"`
	Inventory int64           `json:"inventory" validate:"gte=0"`
	Weight    decimal.Decimal `json:"weight"`
}

// UpdateProductRequest entrada parcial. Inventory permite la corrección administrativa.
type UpdateProductRequest struct {
	Name      *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Size      *string          `json:"size" validate:"omitempty,max=50"`
	Inventory *int64           `json:"inventory" validate:"omitempty,gte=0"`
	Weight    *decimal.Decimal `json:"weight"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Size         string          `json:"size"`
	Inventory    int64           `json:"inventory"`
	Weight       decimal.Decimal `json:"weight"`
	CreatedBy    int64           `json:"created_by,omitempty"`
	MetaDatetime MetaDatetime    `json:"metadatetime"`
}

// ProductPageResponse página de productos con metadatos.
type ProductPageResponse struct {
	Items      []ProductResponse `json:"items"`
	Pagination PaginationMeta    `json:"pagination_metadata"`
}
