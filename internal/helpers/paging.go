package helpers

import (
	"strconv"
	"strings"

	"github.com/rocbird/talentos_api/models/requestresponse"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ParsePageLimit convierte los parámetros de paginación a enteros. Los
// parámetros ausentes o no numéricos caen al default; los valores numéricos
// se devuelven tal cual para que las reglas del query (min/max) los
// rechacen con 400 en lugar de corregirlos en silencio.
func ParsePageLimit(pageStr, limitStr string) (int, int) {
	page := defaultPage
	limit := defaultLimit

	if v, err := strconv.Atoi(strings.TrimSpace(pageStr)); err == nil {
		page = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(limitStr)); err == nil {
		limit = v
	}
	return page, limit
}

// NewMeta calcula los metadatos de paginación a partir del total filtrado.
func NewMeta(page, limit int, total int64) requestresponse.PaginationMeta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return requestresponse.PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    int64(page)*int64(limit) < total,
		HasPrev:    page > 1,
	}
}
