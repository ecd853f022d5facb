package models

import (
	"time"
)

// Interaccion es un evento registrado sobre un talento (reunión, code
// review, mentoría, etc.). Pertenece a exactamente un talento y cae en
// cascada cuando éste se elimina.
type Interaccion struct {
	ID                  string            `orm:"column(id);pk;size(36)" json:"id"`
	Talento             *Talento          `orm:"column(talento_id);rel(fk);on_delete(cascade)" json:"-"`
	TipoDeInteraccion   TipoInteraccion   `orm:"column(tipo_de_interaccion);size(30)" json:"tipo_de_interaccion"`
	Detalle             string            `orm:"column(detalle);size(500)" json:"detalle"`
	Estado              EstadoInteraccion `orm:"column(estado);size(20)" json:"estado"`
	Fecha               time.Time         `orm:"column(fecha);type(datetime)" json:"fecha"`
	FechaDeModificacion time.Time         `orm:"column(fecha_de_modificacion);auto_now;type(datetime)" json:"fecha_de_modificacion"`
}

// TableName fija el nombre de tabla para el ORM.
func (i *Interaccion) TableName() string {
	return "interaccion"
}

// TalentoID devuelve el id del talento dueño.
func (i *Interaccion) TalentoID() string {
	if i.Talento == nil {
		return ""
	}
	return i.Talento.ID
}
