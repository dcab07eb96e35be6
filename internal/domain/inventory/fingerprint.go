package inventory

import (
	"crypto/sha512"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// FingerprintLen longitud del código de verificación en hexadecimal (SHA-384).
const FingerprintLen = sha512.Size384 * 2

// Fingerprint calcula el código de verificación de una transacción persistida.
// Algoritmo: SHA-384 sobre la cadena
//
//	ID | Tipo | Fecha (YYYY-MM-DD) | ProveedorID (0 si no hay) | pid:cant;pid:cant... | CreadoPor
//
// Las líneas se ordenan por ProductID, así que el orden de carga no altera el código.
// Cualquier cambio posterior en cantidades, productos o cabecera lo invalida.
func Fingerprint(t *entity.Transaction) string {
	if t == nil {
		return ""
	}
	var providerID int64
	if t.ProviderID != nil {
		providerID = *t.ProviderID
	}

	items := make([]entity.TransactionItem, len(t.Items))
	copy(items, t.Items)
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = strconv.FormatInt(it.ProductID, 10) + ":" + strconv.FormatInt(it.Quantity, 10)
	}

	cadena := strings.Join([]string{
		strconv.FormatInt(t.ID, 10),
		string(t.Kind),
		t.Date.Format("2006-01-02"),
		strconv.FormatInt(providerID, 10),
		strings.Join(lines, ";"),
		strconv.FormatInt(t.CreatedBy, 10),
	}, "|")

	hash := sha512.Sum384([]byte(cadena))
	return hex.EncodeToString(hash[:])
}
