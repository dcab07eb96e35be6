// seed_products genera un script SQL para cargar el catálogo inicial de productos
// a partir de una planilla CSV exportada por las hojas de cálculo heredadas.
//
// Uso: go run ./cmd/seed_products productos.csv [salida.sql]
// Columnas: nombre;tamaño;inventario;peso (la fila de encabezado es opcional).
// El archivo puede venir en UTF-8 o en ISO-8859-1. Sin salida, escribe en stdout.
// Los productos quedan a nombre del primer administrador activo.
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type seedProduct struct {
	name      string
	size      string
	inventory int64
	weight    decimal.Decimal
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: seed_products <productos.csv> [salida.sql]")
		os.Exit(2)
	}
	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}

	products, skipped, err := readProducts(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	for _, s := range skipped {
		fmt.Fprintf(os.Stderr, "omitida: %s\n", s)
	}

	out := io.Writer(os.Stdout)
	if len(os.Args) > 2 {
		f, err := os.Create(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	if err := writeSQL(out, products); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Generado: %d productos, %d filas omitidas\n", len(products), len(skipped))
}

// readProducts interpreta el CSV. Las filas inválidas no abortan la carga; se
// devuelven descritas en skipped.
func readProducts(raw []byte) (products []seedProduct, skipped []string, err error) {
	var input io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		input = transform.NewReader(input, charmap.ISO8859_1.NewDecoder())
	}

	r := csv.NewReader(input)
	r.Comma = detectDelimiter(raw)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	for i, rec := range records {
		line := i + 1
		if i == 0 && isHeader(rec) {
			continue
		}
		if len(rec) < 3 {
			skipped = append(skipped, fmt.Sprintf("línea %d: se esperaban al menos 3 columnas", line))
			continue
		}
		p := seedProduct{
			name: strings.TrimSpace(rec[0]),
			size: strings.TrimSpace(rec[1]),
		}
		if p.name == "" {
			skipped = append(skipped, fmt.Sprintf("línea %d: nombre vacío", line))
			continue
		}
		p.inventory, err = strconv.ParseInt(strings.TrimSpace(rec[2]), 10, 64)
		if err != nil || p.inventory < 0 {
			skipped = append(skipped, fmt.Sprintf("línea %d: inventario inválido %q", line, rec[2]))
			continue
		}
		if len(rec) > 3 && strings.TrimSpace(rec[3]) != "" {
			p.weight, err = parseWeight(rec[3])
			if err != nil {
				skipped = append(skipped, fmt.Sprintf("línea %d: peso inválido %q", line, rec[3]))
				continue
			}
		}
		products = append(products, p)
	}
	return products, skipped, nil
}

// detectDelimiter usa ';' (planillas en portugués/español) salvo que la primera
// línea sólo traiga comas.
func detectDelimiter(raw []byte) rune {
	first := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		first = raw[:i]
	}
	if bytes.Count(first, []byte(";")) == 0 && bytes.Count(first, []byte(",")) > 0 {
		return ','
	}
	return ';'
}

func isHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(rec[0])) {
	case "name", "nome", "nombre", "produto", "producto":
		return true
	}
	return false
}

// parseWeight acepta coma decimal ("1,5") además de punto.
func parseWeight(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	w, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if w.IsNegative() {
		return decimal.Zero, fmt.Errorf("peso negativo")
	}
	return w, nil
}

func writeSQL(w io.Writer, products []seedProduct) error {
	var b strings.Builder
	b.WriteString("-- Catálogo inicial de productos\n")
	b.WriteString("-- Generado por cmd/seed_products\n\n")
	if len(products) == 0 {
		b.WriteString("-- sin productos\n")
		_, err := io.WriteString(w, b.String())
		return err
	}
	b.WriteString("BEGIN;\n\n")
	b.WriteString("INSERT INTO products (name, size, inventory, weight, created_by)\n")
	b.WriteString("SELECT v.name, v.size, v.inventory, v.weight,\n")
	b.WriteString("       (SELECT id FROM users WHERE is_admin AND NOT is_deleted ORDER BY id LIMIT 1)\n")
	b.WriteString("FROM (VALUES\n")
	for i, p := range products {
		fmt.Fprintf(&b, "  ('%s', '%s', %d, %s::numeric)", escapeSQL(p.name), escapeSQL(p.size), p.inventory, p.weight.StringFixed(3))
		if i < len(products)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString(") AS v(name, size, inventory, weight);\n\n")
	b.WriteString("COMMIT;\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
