// Package pdf genera el comprobante imprimible de una transacción de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app       │  N° Transacción + Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: Tipo / Proveedor / Descripción                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Tamaño | Cantidad                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL de unidades + código de verificación + QR             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	domaininv "github.com/jhoicas/estoque-api/internal/domain/inventory"
)

var _ inventory.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorIn      = &props.Color{Red: 20, Green: 120, Blue: 60}
	colorOut     = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa inventory.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	appName string
}

// NewMarotoReceiptGenerator construye el generador; appName va en el encabezado.
func NewMarotoReceiptGenerator(appName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{appName: appName}
}

// GenerateTransactionReceipt genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateTransactionReceipt(tx *entity.Transaction) ([]byte, error) {
	if tx == nil {
		return nil, fmt.Errorf("pdf: transacción nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Transacción %d", tx.ID), true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, tx))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(detailsRow(tx))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(itemRows(tx.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(tx))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(appName string, tx *entity.Transaction) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(appName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Comprobante de movimiento de inventario", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(kindLabel(tx.Kind), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: kindColor(tx.Kind), Top: 1,
			}),
			text.New(fmt.Sprintf("N° %06d", tx.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+tx.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func detailsRow(tx *entity.Transaction) core.Row {
	provider := "—"
	if tx.ProviderID != nil {
		provider = fmt.Sprintf("%s (ID %d)", nonEmpty(tx.ProviderName, "—"), *tx.ProviderID)
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("Proveedor: "+provider, props.Text{Size: 9, Top: 1}),
			text.New("Descripción: "+nonEmpty(tx.Description, "—"), props.Text{Size: 9, Top: 6, Color: colorGray}),
			text.New(fmt.Sprintf("Registrado por usuario %d el %s", tx.CreatedBy, tx.CreatedAt.Format("02/01/2006 15:04")),
				props.Text{Size: 7, Top: 11, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Producto", 6, align.Left),
		h("Tamaño", 2, align.Center),
		h("Cantidad", 2, align.Right),
	)
}

func itemRows(items []entity.TransactionItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(strconv.FormatInt(it.ProductID, 10), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(6).Add(text.New(it.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(it.ProductSize, "—"), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatThousands(it.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

// footerRow: total de unidades, código de verificación y QR con la referencia.
func footerRow(tx *entity.Transaction) core.Row {
	var total int64
	for _, it := range tx.Items {
		total += it.Quantity
	}
	return row.New(35).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("Productos distintos: %d", len(tx.Items)), props.Text{Size: 9, Top: 4}),
			text.New("TOTAL DE UNIDADES: "+formatThousands(total), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 10, Color: colorPrimary,
			}),
			text.New("Verificación: "+shortCode(domaininv.Fingerprint(tx)), props.Text{
				Size: 8, Top: 20, Color: colorGray,
			}),
		),
		col.New(4).Add(code.NewQr(ReceiptReference(tx), props.Rect{Percent: 90, Center: true})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// ReceiptReference texto codificado en el QR del comprobante; el último campo
// es el código de verificación completo.
func ReceiptReference(tx *entity.Transaction) string {
	return fmt.Sprintf("transaction:%d:%s:%s:%s", tx.ID, tx.Kind, tx.Date.Format("2006-01-02"), domaininv.Fingerprint(tx))
}

// shortCode primeros 16 caracteres del código, en grupos de 4.
func shortCode(fp string) string {
	if len(fp) > 16 {
		fp = fp[:16]
	}
	var out []byte
	for i := 0; i < len(fp); i++ {
		if i > 0 && i%4 == 0 {
			out = append(out, '-')
		}
		out = append(out, fp[i])
	}
	return string(out)
}

func kindLabel(k entity.TransactionKind) string {
	if k == entity.TransactionIncoming {
		return "ENTRADA DE MERCANCÍA"
	}
	return "SALIDA DE MERCANCÍA"
}

func kindColor(k entity.TransactionKind) *props.Color {
	if k == entity.TransactionIncoming {
		return colorIn
	}
	return colorOut
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatThousands inserta puntos de miles. Ej: 25000 → "25.000".
func formatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	l := len(s)
	buf := make([]byte, 0, l+l/3+1)
	if neg {
		buf = append(buf, '-')
	}
	for i := 0; i < l; i++ {
		if i > 0 && (l-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}
