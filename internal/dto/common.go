// Package dto define los cuerpos de petición y respuesta del API. Los
// cuerpos de creación llevan las reglas completas; los de actualización
// repiten la misma forma con todos los campos opcionales (semántica de
// actualización parcial: un campo ausente no se toca).
package dto

import (
	"time"

	"github.com/rocbird/talentos_api/models"
)

// ReferenteResumen es la proyección mínima de un referente técnico que se
// incrusta en las respuestas de talentos e interacciones.
type ReferenteResumen struct {
	ID              string `json:"id"`
	NombreYApellido string `json:"nombre_y_apellido"`
	Email           string `json:"email"`
	Especialidad    string `json:"especialidad,omitempty"`
}

// TalentoResumen es la proyección mínima de un talento.
type TalentoResumen struct {
	ID              string               `json:"id"`
	NombreYApellido string               `json:"nombre_y_apellido"`
	Seniority       models.Seniority     `json:"seniority"`
	Rol             string               `json:"rol"`
	Estado          models.EstadoTalento `json:"estado,omitempty"`
	Lider           *ReferenteResumen    `json:"lider,omitempty"`
	Mentor          *ReferenteResumen    `json:"mentor,omitempty"`
}

// InteraccionResumen es la proyección de una interacción incrustada en las
// respuestas de talento. Detalle y fecha de modificación solo viajan en la
// vista completa.
type InteraccionResumen struct {
	ID                  string                   `json:"id"`
	TipoDeInteraccion   models.TipoInteraccion   `json:"tipo_de_interaccion"`
	Detalle             string                   `json:"detalle,omitempty"`
	Estado              models.EstadoInteraccion `json:"estado"`
	Fecha               time.Time                `json:"fecha"`
	FechaDeModificacion *time.Time               `json:"fecha_de_modificacion,omitempty"`
}
