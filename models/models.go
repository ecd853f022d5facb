// Package models define las entidades persistidas y sus enumeraciones
// cerradas. Los modelos se registran en el ORM al importar el paquete.
package models

import (
	"github.com/beego/beego/v2/client/orm"
)

func init() {
	orm.RegisterModel(
		new(ReferenteTecnico),
		new(Talento),
		new(Interaccion),
	)
}
