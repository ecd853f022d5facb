// Package requestresponse define los sobres de respuesta del API.
package requestresponse

// ErrorDTO es el sobre estándar de error: un código estable de la taxonomía,
// un mensaje legible y, para errores de validación, el detalle por campo.
type ErrorDTO struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorDetail describe una violación de validación sobre un campo concreto.
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewError construye el sobre de error.
func NewError(code, message string, details interface{}) ErrorDTO {
	if message == "" {
		message = "Error"
	}
	return ErrorDTO{
		Error:   code,
		Message: message,
		Details: details,
	}
}

// PaginationMeta acompaña toda respuesta de listado paginado.
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// PageDTO es el sobre de listados paginados: {data, meta}.
type PageDTO struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// NewPage construye el sobre paginado.
func NewPage(data interface{}, meta PaginationMeta) PageDTO {
	return PageDTO{Data: data, Meta: meta}
}
