package dto

import (
	"time"

	"github.com/rocbird/talentos_api/models"
)

// InteraccionCreate es el cuerpo de POST /v1/interacciones. Estado y fecha
// son opcionales: el servicio aplica INICIADA y "ahora" como defaults.
type InteraccionCreate struct {
	TalentoID         string                   `json:"talento_id" validate:"required,uuid4"`
	TipoDeInteraccion models.TipoInteraccion   `json:"tipo_de_interaccion" validate:"required,tipo_interaccion"`
	Detalle           string                   `json:"detalle" validate:"required,min=5,max=500"`
	Estado            models.EstadoInteraccion `json:"estado" validate:"omitempty,estado_interaccion"`
	Fecha             *time.Time               `json:"fecha"`
}

// InteraccionUpdate es el cuerpo de PUT /v1/interacciones/:id.
type InteraccionUpdate struct {
	TipoDeInteraccion *models.TipoInteraccion   `json:"tipo_de_interaccion" validate:"omitempty,tipo_interaccion"`
	Detalle           *string                   `json:"detalle" validate:"omitempty,min=5,max=500"`
	Estado            *models.EstadoInteraccion `json:"estado" validate:"omitempty,estado_interaccion"`
	Fecha             *time.Time                `json:"fecha"`
}

// InteraccionQuery gobierna el listado de interacciones.
type InteraccionQuery struct {
	TalentoID string `validate:"omitempty,uuid4"`
	Page      int    `validate:"min=1"`
	Limit     int    `validate:"min=1,max=100"`
}

// InteraccionDTO es la vista completa de una interacción.
type InteraccionDTO struct {
	ID                  string                   `json:"id"`
	TalentoID           string                   `json:"talento_id"`
	TipoDeInteraccion   models.TipoInteraccion   `json:"tipo_de_interaccion"`
	Detalle             string                   `json:"detalle"`
	Estado              models.EstadoInteraccion `json:"estado"`
	Fecha               time.Time                `json:"fecha"`
	FechaDeModificacion time.Time                `json:"fecha_de_modificacion"`
	Talento             *TalentoResumen          `json:"talento,omitempty"`
}

// InteraccionEliminada resume el resultado de DELETE /v1/interacciones/:id.
type InteraccionEliminada struct {
	Message     string         `json:"message"`
	Interaccion InteraccionDTO `json:"interaccion"`
}
