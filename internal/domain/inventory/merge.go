// Package inventory contiene reglas puras de inventario (servicios de dominio sin I/O).
package inventory

import (
	"math"
	"sort"
)

// MaxQuantity cantidad máxima de un producto en una transacción, ya consolidada.
const MaxQuantity int64 = 1_000_000_000_000

// Line es un par producto/cantidad tal como llega en la solicitud.
type Line struct {
	ProductID int64
	Quantity  int64
}

// Merge ordena las líneas por ProductID ascendente y suma las cantidades de IDs
// repetidos. El slice de entrada no se modifica. Las sumas se saturan en los
// límites de int64 en vez de desbordarse.
//
//	[{1,8},{3,15},{1,2},{5,22}] → [{1,10},{3,15},{5,22}]
func Merge(lines []Line) []Line {
	if len(lines) == 0 {
		return nil
	}
	sorted := make([]Line, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })

	merged := make([]Line, 0, len(sorted))
	for _, l := range sorted {
		last := len(merged) - 1
		if last >= 0 && merged[last].ProductID == l.ProductID {
			merged[last].Quantity = addSaturating(merged[last].Quantity, l.Quantity)
			continue
		}
		merged = append(merged, l)
	}
	return merged
}

func addSaturating(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	}
	return a + b
}

// InvalidQuantities devuelve, sin repetir y en orden ascendente, los IDs cuya
// cantidad es <= 0 o supera MaxQuantity. Se aplica sobre líneas ya consolidadas.
func InvalidQuantities(lines []Line) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, l := range lines {
		if l.Quantity > 0 && l.Quantity <= MaxQuantity {
			continue
		}
		if _, ok := seen[l.ProductID]; ok {
			continue
		}
		seen[l.ProductID] = struct{}{}
		ids = append(ids, l.ProductID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// IDs devuelve los ProductID en el mismo orden de las líneas.
func IDs(lines []Line) []int64 {
	ids := make([]int64, len(lines))
	for i, l := range lines {
		ids[i] = l.ProductID
	}
	return ids
}
