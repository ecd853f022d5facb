// Package services implementa las operaciones de dominio contra el ORM.
// El store se construye en el arranque del proceso y se inyecta una sola
// vez con Init; cada operación toma un ejecutor nuevo sobre el mismo pool.
package services

import (
	"github.com/beego/beego/v2/client/orm"

	"github.com/rocbird/talentos_api/database"
	internaldto "github.com/rocbird/talentos_api/internal/dto"
	"github.com/rocbird/talentos_api/models"
)

var store *database.Store

// Init inyecta el store compartido. Debe llamarse antes de registrar rutas.
func Init(s *database.Store) {
	store = s
}

func ormer() orm.Ormer {
	return store.Orm()
}

func referenteResumen(r *models.ReferenteTecnico) *internaldto.ReferenteResumen {
	if r == nil || r.ID == "" {
		return nil
	}
	return &internaldto.ReferenteResumen{
		ID:              r.ID,
		NombreYApellido: r.NombreYApellido,
		Email:           r.Email,
		Especialidad:    r.Especialidad,
	}
}

func talentoResumen(t *models.Talento) *internaldto.TalentoResumen {
	if t == nil || t.ID == "" {
		return nil
	}
	return &internaldto.TalentoResumen{
		ID:              t.ID,
		NombreYApellido: t.NombreYApellido,
		Seniority:       t.Seniority,
		Rol:             t.Rol,
		Estado:          t.Estado,
	}
}

func talentoDTO(t *models.Talento) internaldto.TalentoDTO {
	return internaldto.TalentoDTO{
		ID:                 t.ID,
		NombreYApellido:    t.NombreYApellido,
		Seniority:          t.Seniority,
		Rol:                t.Rol,
		Estado:             t.Estado,
		LiderID:            t.LiderID(),
		MentorID:           t.MentorID(),
		FechaCreacion:      t.FechaCreacion,
		FechaActualizacion: t.FechaActualizacion,
		Lider:              referenteResumen(t.Lider),
		Mentor:             referenteResumen(t.Mentor),
	}
}

func interaccionResumen(i *models.Interaccion, conDetalle bool) internaldto.InteraccionResumen {
	res := internaldto.InteraccionResumen{
		ID:                i.ID,
		TipoDeInteraccion: i.TipoDeInteraccion,
		Estado:            i.Estado,
		Fecha:             i.Fecha,
	}
	if conDetalle {
		res.Detalle = i.Detalle
		mod := i.FechaDeModificacion
		res.FechaDeModificacion = &mod
	}
	return res
}

func interaccionDTO(i *models.Interaccion) internaldto.InteraccionDTO {
	return internaldto.InteraccionDTO{
		ID:                  i.ID,
		TalentoID:           i.TalentoID(),
		TipoDeInteraccion:   i.TipoDeInteraccion,
		Detalle:             i.Detalle,
		Estado:              i.Estado,
		Fecha:               i.Fecha,
		FechaDeModificacion: i.FechaDeModificacion,
		Talento:             talentoResumen(i.Talento),
	}
}
