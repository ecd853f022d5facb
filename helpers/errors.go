// Package helpers concentra el manejo de errores controlados del API.
package helpers

import (
	"fmt"
	"net/http"

	"github.com/beego/beego/v2/client/orm"
	"github.com/lib/pq"
)

// Códigos estables de la taxonomía de errores del API.
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeTalentoNotFound     = "TALENTO_NOT_FOUND"
	CodeInteraccionNotFound = "INTERACCION_NOT_FOUND"
	CodeReferenteNotFound   = "REFERENTE_NOT_FOUND"
	CodeLiderNotFound       = "LIDER_NOT_FOUND"
	CodeMentorNotFound      = "MENTOR_NOT_FOUND"
	CodeReferenteInUse      = "REFERENTE_IN_USE"
	CodeRecordNotFound      = "RECORD_NOT_FOUND"
	CodeUniqueConstraint    = "UNIQUE_CONSTRAINT_ERROR"
	CodeForeignKey          = "FOREIGN_KEY_CONSTRAINT_ERROR"
	CodeDatabase            = "DATABASE_ERROR"
	CodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	CodeNotFound            = "NOT_FOUND"
	CodeInternal            = "INTERNAL_ERROR"
	CodeUnknown             = "UNKNOWN_ERROR"
)

// Códigos SQLSTATE de Postgres que el traductor reconoce.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// AppError representa un error controlado con código HTTP, código de
// taxonomía y mensaje funcional.
type AppError struct {
	Status  int
	Code    string
	Message string
	Details interface{}
	Err     error
}

// Error implementa la interfaz error.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap permite extraer el error original cuando exista.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError construye un AppError con status, código y mensaje.
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{Status: status, Code: code, Message: message, Err: err}
}

// WithDetails agrega el detalle estructurado (p.ej. lista de campos).
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// AsAppError convierte cualquier error en AppError; los errores de la capa
// de persistencia pasan por el traductor y el resto cae en 500.
func AsAppError(err error, defaultMessage string) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	if translated := FromStore(err); translated != nil {
		return translated
	}
	msg := defaultMessage
	if msg == "" {
		msg = "error inesperado"
	}
	return &AppError{Status: http.StatusInternalServerError, Code: CodeInternal, Message: msg, Err: err}
}

// FromStore traduce errores del ORM y del driver a la taxonomía del API.
// Devuelve nil cuando el error no proviene de la capa de persistencia.
func FromStore(err error) *AppError {
	if err == nil {
		return nil
	}
	if err == orm.ErrNoRows {
		return NewAppError(http.StatusNotFound, CodeRecordNotFound, "El registro solicitado no fue encontrado", err)
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			appErr := NewAppError(http.StatusConflict, CodeUniqueConstraint, "Ya existe un registro con estos datos únicos", err)
			if pqErr.Constraint != "" {
				appErr.Details = map[string]string{"constraint": pqErr.Constraint}
			}
			return appErr
		case pgForeignKeyViolation:
			appErr := NewAppError(http.StatusBadRequest, CodeForeignKey, "Referencia inválida a otro registro", err)
			if pqErr.Constraint != "" {
				appErr.Details = map[string]string{"constraint": pqErr.Constraint}
			}
			return appErr
		default:
			return NewAppError(http.StatusInternalServerError, CodeDatabase, "Error en la base de datos", err)
		}
	}
	return nil
}

// NotFound construye el 404 de una entidad concreta.
func NotFound(code, message string) *AppError {
	return NewAppError(http.StatusNotFound, code, message, nil)
}

// BadRequest construye un 400 con código de taxonomía.
func BadRequest(code, message string) *AppError {
	return NewAppError(http.StatusBadRequest, code, message, nil)
}

// Conflict construye un 409 con código de taxonomía.
func Conflict(code, message string) *AppError {
	return NewAppError(http.StatusConflict, code, message, nil)
}
