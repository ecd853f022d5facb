package models

import (
	"time"
)

// Talento es un colaborador seguido por el sistema. Puede tener un líder y
// un mentor (ambos opcionales) apuntando a ReferenteTecnico, y posee sus
// interacciones: al eliminar el talento se eliminan en cascada.
type Talento struct {
	ID                 string             `orm:"column(id);pk;size(36)" json:"id"`
	NombreYApellido    string             `orm:"column(nombre_y_apellido);size(100)" json:"nombre_y_apellido"`
	Seniority          Seniority          `orm:"column(seniority);size(20)" json:"seniority"`
	Rol                string             `orm:"column(rol);size(50)" json:"rol"`
	Estado             EstadoTalento      `orm:"column(estado);size(20)" json:"estado"`
	Lider              *ReferenteTecnico  `orm:"column(lider_id);rel(fk);null;on_delete(do_nothing)" json:"-"`
	Mentor             *ReferenteTecnico  `orm:"column(mentor_id);rel(fk);null;on_delete(do_nothing)" json:"-"`
	Interacciones      []*Interaccion     `orm:"reverse(many)" json:"-"`
	FechaCreacion      time.Time          `orm:"column(fecha_creacion);auto_now_add;type(datetime)" json:"fecha_creacion"`
	FechaActualizacion time.Time          `orm:"column(fecha_actualizacion);auto_now;type(datetime)" json:"fecha_actualizacion"`
}

// TableName fija el nombre de tabla para el ORM.
func (t *Talento) TableName() string {
	return "talento"
}

// LiderID devuelve el id del líder o nil cuando no hay relación.
func (t *Talento) LiderID() *string {
	if t.Lider == nil {
		return nil
	}
	id := t.Lider.ID
	return &id
}

// MentorID devuelve el id del mentor o nil cuando no hay relación.
func (t *Talento) MentorID() *string {
	if t.Mentor == nil {
		return nil
	}
	id := t.Mentor.ID
	return &id
}
