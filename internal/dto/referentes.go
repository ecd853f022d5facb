package dto

import "time"

// ReferenteCreate es el cuerpo de POST /v1/referentes-tecnicos.
type ReferenteCreate struct {
	NombreYApellido string  `json:"nombre_y_apellido" validate:"required,min=2,max=100"`
	Email           string  `json:"email" validate:"required,email,max=100"`
	Especialidad    *string `json:"especialidad" validate:"omitempty,min=2,max=100"`
}

// ReferenteUpdate es el cuerpo de PUT /v1/referentes-tecnicos/:id.
type ReferenteUpdate struct {
	NombreYApellido *string `json:"nombre_y_apellido" validate:"omitempty,min=2,max=100"`
	Email           *string `json:"email" validate:"omitempty,email,max=100"`
	Especialidad    *string `json:"especialidad" validate:"omitempty,min=2,max=100"`
}

// ReferenteDTO es la vista completa: datos propios más los talentos que
// lidera y mentorea con sus conteos.
type ReferenteDTO struct {
	ID                  string           `json:"id"`
	NombreYApellido     string           `json:"nombre_y_apellido"`
	Email               string           `json:"email"`
	Especialidad        string           `json:"especialidad,omitempty"`
	FechaCreacion       time.Time        `json:"fecha_creacion"`
	TalentosLiderados   []TalentoResumen `json:"talentos_liderados"`
	TalentosMentoreados []TalentoResumen `json:"talentos_mentoreados"`
	TotalLiderados      int              `json:"total_liderados"`
	TotalMentoreados    int              `json:"total_mentoreados"`
}

// ReferenteEliminado resume el resultado de DELETE /v1/referentes-tecnicos/:id.
type ReferenteEliminado struct {
	Message   string       `json:"message"`
	Referente ReferenteDTO `json:"referente"`
}
