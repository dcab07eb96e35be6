package entity

import "time"

// Provider es un proveedor externo. Debe existir (no borrado) para registrar entradas.
type Provider struct {
	ID          int64
	Name        string
	CNPJ        string // 14 dígitos, único
	PhoneNumber string
	Email       string
	ContactName string
	IsDeleted   bool
	CreatedBy   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
