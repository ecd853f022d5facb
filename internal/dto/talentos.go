package dto

import (
	"time"

	"github.com/rocbird/talentos_api/models"
)

// TalentoCreate es el cuerpo de POST /v1/talentos.
type TalentoCreate struct {
	NombreYApellido string               `json:"nombre_y_apellido" validate:"required,min=2,max=100"`
	Seniority       models.Seniority     `json:"seniority" validate:"required,seniority"`
	Rol             string               `json:"rol" validate:"required,min=2,max=50"`
	Estado          models.EstadoTalento `json:"estado" validate:"omitempty,estado_talento"`
	LiderID         *string              `json:"lider_id" validate:"omitnil,uuid4"`
	MentorID        *string              `json:"mentor_id" validate:"omitnil,uuid4"`
}

// TalentoUpdate es el cuerpo de PUT /v1/talentos/:id.
type TalentoUpdate struct {
	NombreYApellido *string               `json:"nombre_y_apellido" validate:"omitempty,min=2,max=100"`
	Seniority       *models.Seniority     `json:"seniority" validate:"omitempty,seniority"`
	Rol             *string               `json:"rol" validate:"omitempty,min=2,max=50"`
	Estado          *models.EstadoTalento `json:"estado" validate:"omitempty,estado_talento"`
	LiderID         *string               `json:"lider_id" validate:"omitnil,uuid4"`
	MentorID        *string               `json:"mentor_id" validate:"omitnil,uuid4"`
}

// TalentoQuery gobierna el listado: paginación, orden y filtros.
type TalentoQuery struct {
	Page      int    `validate:"min=1"`
	Limit     int    `validate:"min=1,max=100"`
	Sort      string `validate:"oneof=asc desc"`
	SortBy    string `validate:"oneof=nombre_y_apellido seniority rol fecha_creacion"`
	Estado    string `validate:"omitempty,estado_talento"`
	Seniority string `validate:"omitempty,seniority"`
	Search    string
}

// TalentoDTO es la vista completa de un talento.
type TalentoDTO struct {
	ID                 string               `json:"id"`
	NombreYApellido    string               `json:"nombre_y_apellido"`
	Seniority          models.Seniority     `json:"seniority"`
	Rol                string               `json:"rol"`
	Estado             models.EstadoTalento `json:"estado"`
	LiderID            *string              `json:"lider_id"`
	MentorID           *string              `json:"mentor_id"`
	FechaCreacion      time.Time            `json:"fecha_creacion"`
	FechaActualizacion time.Time            `json:"fecha_actualizacion"`
	Lider              *ReferenteResumen    `json:"lider"`
	Mentor             *ReferenteResumen    `json:"mentor"`
	Interacciones      []InteraccionResumen `json:"interacciones,omitempty"`
	TotalInteracciones *int64               `json:"total_interacciones,omitempty"`
}

// TalentoEliminado resume el resultado de DELETE /v1/talentos/:id.
type TalentoEliminado struct {
	Message                 string     `json:"message"`
	Talento                 TalentoDTO `json:"talento"`
	InteraccionesEliminadas int64      `json:"interacciones_eliminadas"`
}
