package dto

// TransactionItemRequest línea pedida. Quantity no lleva tag validate: las
// líneas repetidas se suman primero y el procesador rechaza la suma <= 0 con
// INVALID_STOCK_QUANTITY y los IDs afectados.
type TransactionItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity"`
}

// IncomingTransactionRequest entrada de mercancía desde un proveedor.
// products vacío se reporta como EMPTY_TRANSACTION, no como error de validación.
type IncomingTransactionRequest struct {
	Description string                   `json:"description" validate:"omitempty,max=1000"`
	Date        Date                     `json:"date"`
	ProviderID  *int64                   `json:"provider_id" validate:"omitempty,gt=0"`
	Products    []TransactionItemRequest `json:"products" validate:"dive"`
}

// OutgoingTransactionRequest salida de mercancía. No lleva proveedor.
type OutgoingTransactionRequest struct {
	Description string                   `json:"description" validate:"omitempty,max=1000"`
	Date        Date                     `json:"date"`
	Products    []TransactionItemRequest `json:"products" validate:"dive"`
}

// TransactionItemResponse línea persistida con los datos del producto.
type TransactionItemResponse struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	ProductSize string `json:"product_size"`
	Quantity    int64  `json:"quantity"`
}

// TransactionResponse salida de una transacción. VerificationCode coincide con
// el impreso en el comprobante PDF.
type TransactionResponse struct {
	ID               int64                     `json:"id"`
	Type             string                    `json:"type"`
	Description      string                    `json:"description"`
	Date             Date                      `json:"date"`
	ProviderID       *int64                    `json:"provider_id,omitempty"`
	ProviderName     string                    `json:"provider_name,omitempty"`
	CreatedBy        int64                     `json:"created_by"`
	Products         []TransactionItemResponse `json:"products"`
	VerificationCode string                    `json:"verification_code"`
	MetaDatetime     MetaDatetime              `json:"metadatetime"`
}

// TransactionFilterRequest filtros de consulta (query string).
type TransactionFilterRequest struct {
	ProductName     string `query:"product_name"`
	ProviderName    string `query:"provider_name"`
	Description     string `query:"description"`
	TransactionType string `query:"transaction_type" validate:"omitempty,oneof=ENTRADA SAIDA"`
	StartDate       string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	FinishDate      string `query:"finish_date" validate:"omitempty,datetime=2006-01-02"`
}

// QueryParams filtros no vacíos en orden estable, para los enlaces de paginación.
func (f TransactionFilterRequest) QueryParams() []QueryParam {
	return []QueryParam{
		{Key: "product_name", Value: f.ProductName},
		{Key: "provider_name", Value: f.ProviderName},
		{Key: "description", Value: f.Description},
		{Key: "transaction_type", Value: f.TransactionType},
		{Key: "start_date", Value: f.StartDate},
		{Key: "finish_date", Value: f.FinishDate},
	}
}

// TransactionPageResponse página de transacciones con metadatos.
type TransactionPageResponse struct {
	Items      []TransactionResponse `json:"items"`
	Pagination PaginationMeta        `json:"pagination_metadata"`
}
