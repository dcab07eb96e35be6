package entity

import "time"

// TransactionKind distingue entradas (ENTRADA) de salidas (SAIDA) de mercancía.
type TransactionKind string

const (
	TransactionIncoming TransactionKind = "ENTRADA"
	TransactionOutgoing TransactionKind = "SAIDA"
)

// Valid indica si el tipo es uno de los conocidos.
func (k TransactionKind) Valid() bool {
	switch k {
	case TransactionIncoming, TransactionOutgoing:
		return true
	}
	return false
}

// Transaction es el registro inmutable de un movimiento de inventario.
// ProviderID es obligatorio en entradas y nil en salidas.
type Transaction struct {
	ID           int64
	Kind         TransactionKind
	Description  string
	Date         time.Time
	ProviderID   *int64
	ProviderName string // desnormalizado en lecturas
	CreatedBy    int64
	Items        []TransactionItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TransactionItem es una línea de la transacción. Quantity siempre es positiva;
// el signo lo da el tipo de la transacción.
type TransactionItem struct {
	ID            int64
	TransactionID int64
	ProductID     int64
	ProductName   string
	ProductSize   string
	Quantity      int64
}
