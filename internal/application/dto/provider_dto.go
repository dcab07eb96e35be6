package dto

// CreateProviderRequest entrada para crear un proveedor.
type CreateProviderRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	CNPJ        string `json:"cnpj" validate:"required,len=14,numeric"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	Email       string `json:"email" validate:"omitempty,email,max=255"`
	ContactName string `json:"contact_name" validate:"omitempty,max=255"`
}

// UpdateProviderRequest entrada parcial; los campos nil no se modifican.
type UpdateProviderRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	CNPJ        *string `json:"cnpj" validate:"omitempty,len=14,numeric"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	ContactName *string `json:"contact_name" validate:"omitempty,max=255"`
}

// ProviderResponse salida de un proveedor.
type ProviderResponse struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	CNPJ         string       `json:"cnpj"`
	PhoneNumber  string       `json:"phone_number"`
	Email        string       `json:"email"`
	ContactName  string       `json:"contact_name"`
	CreatedBy    int64        `json:"created_by,omitempty"`
	MetaDatetime MetaDatetime `json:"metadatetime"`
}
