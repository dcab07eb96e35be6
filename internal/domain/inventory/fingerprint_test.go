package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vector de prueba calculado con SHA-384:
//
//	Cadena = "12|ENTRADA|2024-04-02|3|1:1200;4:3|1"
//
// Si cambia el orden o el formato de la cadena, los comprobantes ya impresos
// dejan de verificarse: este test debe fallar.
// ──────────────────────────────────────────────────────────────────────────────

const fingerprintEntrada = "3a04137e17bbf027c63cf01e59c84e7bb34a5e19369679610c4193663209a0b7749976edf089c0744562f72c97c29d68"

func entradaDePrueba() *entity.Transaction {
	providerID := int64(3)
	return &entity.Transaction{
		ID:         12,
		Kind:       entity.TransactionIncoming,
		Date:       time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
		ProviderID: &providerID,
		CreatedBy:  1,
		Items: []entity.TransactionItem{
			{ProductID: 4, Quantity: 3},
			{ProductID: 1, Quantity: 1200},
		},
	}
}

func TestFingerprint_VectorExacto(t *testing.T) {
	fp := inventory.Fingerprint(entradaDePrueba())

	assert.Equal(t, fingerprintEntrada, fp)
	assert.Len(t, fp, inventory.FingerprintLen)
}

func TestFingerprint_SalidaSinProveedorNiLineas(t *testing.T) {
	tx := &entity.Transaction{ID: 5, Kind: entity.TransactionOutgoing, Date: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t,
		"e425f5948ff29a1ee87f8a4e1da6cb713227e1e1bffd8ab8cc7db41e57f00b852a428eef1ad0a79b8d66fa6e96081d52",
		inventory.Fingerprint(tx))
}

func TestFingerprint_NoModificaLineas(t *testing.T) {
	tx := entradaDePrueba()
	inventory.Fingerprint(tx)

	assert.Equal(t, int64(4), tx.Items[0].ProductID, "el orden original de las líneas se conserva")
}

func TestFingerprint_CambiaConLaCantidad(t *testing.T) {
	tx := entradaDePrueba()
	tx.Items[1].Quantity = 1201

	assert.NotEqual(t, fingerprintEntrada, inventory.Fingerprint(tx))
}

func TestFingerprint_Nil(t *testing.T) {
	assert.Empty(t, inventory.Fingerprint(nil))
}
