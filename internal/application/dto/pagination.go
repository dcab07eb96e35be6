package dto

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/jhoicas/estoque-api/internal/domain"
)

// DefaultPerPage cantidad por página si el cliente no la indica.
const DefaultPerPage = 20

// PaginationLinks enlaces relativos "<página>?per_page=<n>[&filtro=valor...]".
type PaginationLinks struct {
	Current  string `json:"current"`
	First    string `json:"first"`
	Previous string `json:"previous"`
	Next     string `json:"next"`
	Last     string `json:"last"`
}

// PaginationMeta metadatos de una página de resultados.
type PaginationMeta struct {
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	PageCount  int             `json:"page_count"`
	TotalCount int             `json:"total_count"`
	Links      PaginationLinks `json:"links"`
}

// QueryParam par clave/valor que se replica en los enlaces; el orden se conserva.
type QueryParam struct {
	Key   string
	Value string
}

// PageRequest página pedida (base 1) y tamaño.
type PageRequest struct {
	Page    int
	PerPage int
}

// Validate rechaza páginas o tamaños no positivos.
func (p PageRequest) Validate() error {
	if p.PerPage <= 0 {
		return domain.ErrInvalidPerPage
	}
	if p.Page <= 0 {
		return domain.ErrInvalidPage
	}
	return nil
}

// Offset devuelve el desplazamiento SQL de la página.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PageCount número de páginas para total elementos.
func PageCount(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// NewPaginationMeta arma los metadatos. Devuelve ErrInvalidPage si la página
// pedida está más allá de la última (con al menos un resultado).
func NewPaginationMeta(req PageRequest, total int, filters ...QueryParam) (*PaginationMeta, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	pages := PageCount(total, req.PerPage)
	if pages > 0 && req.Page > pages {
		return nil, domain.ErrInvalidPage
	}
	last := pages
	if last == 0 {
		last = 1
	}
	prev := req.Page - 1
	if prev < 1 {
		prev = 1
	}
	next := req.Page + 1
	if next > last {
		next = last
	}
	link := func(page int) string { return pageLink(page, req.PerPage, filters) }
	return &PaginationMeta{
		Page:       req.Page,
		PerPage:    req.PerPage,
		PageCount:  pages,
		TotalCount: total,
		Links: PaginationLinks{
			Current:  link(req.Page),
			First:    link(1),
			Previous: link(prev),
			Next:     link(next),
			Last:     link(last),
		},
	}, nil
}

func pageLink(page, perPage int, filters []QueryParam) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(page))
	b.WriteString("?per_page=")
	b.WriteString(strconv.Itoa(perPage))
	for _, f := range filters {
		if f.Value == "" {
			continue
		}
		b.WriteString("&")
		b.WriteString(url.QueryEscape(f.Key))
		b.WriteString("=")
		b.WriteString(url.QueryEscape(f.Value))
	}
	return b.String()
}
