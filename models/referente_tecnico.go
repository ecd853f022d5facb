package models

import (
	"time"
)

// ReferenteTecnico es un líder o mentor técnico. Los talentos lo referencian
// mediante dos relaciones independientes (lider_id y mentor_id), por lo que
// las listas de liderados/mentoreados se consultan de forma explícita en la
// capa de servicios en lugar de declararse como relaciones reversas.
type ReferenteTecnico struct {
	ID              string    `orm:"column(id);pk;size(36)" json:"id"`
	NombreYApellido string    `orm:"column(nombre_y_apellido);size(100)" json:"nombre_y_apellido"`
	Email           string    `orm:"column(email);size(100);unique" json:"email"`
	Especialidad    string    `orm:"column(especialidad);size(100);null" json:"especialidad,omitempty"`
	FechaCreacion   time.Time `orm:"column(fecha_creacion);auto_now_add;type(datetime)" json:"fecha_creacion"`
}

// TableName fija el nombre de tabla para el ORM.
func (r *ReferenteTecnico) TableName() string {
	return "referente_tecnico"
}
