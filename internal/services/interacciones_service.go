package services

import (
	"context"
	"time"

	"github.com/beego/beego/v2/client/orm"
	"github.com/google/uuid"

	"github.com/rocbird/talentos_api/helpers"
	internaldto "github.com/rocbird/talentos_api/internal/dto"
	internalhelpers "github.com/rocbird/talentos_api/internal/helpers"
	"github.com/rocbird/talentos_api/models"
	"github.com/rocbird/talentos_api/models/requestresponse"
)

// ListarInteracciones devuelve una página de interacciones ordenadas por
// fecha descendente, opcionalmente filtrada por talento.
func ListarInteracciones(ctx context.Context, q internaldto.InteraccionQuery) ([]internaldto.InteraccionDTO, requestresponse.PaginationMeta, error) {
	o := ormer()

	qs := o.QueryTable(new(models.Interaccion))
	if q.TalentoID != "" {
		qs = qs.Filter("talento__id", q.TalentoID)
	}

	total, err := qs.Count()
	if err != nil {
		return nil, requestresponse.PaginationMeta{}, helpers.AsAppError(err, "error contando interacciones")
	}

	var filas []*models.Interaccion
	_, err = qs.
		OrderBy("-fecha").
		RelatedSel("talento").
		Limit(q.Limit, (q.Page-1)*q.Limit).
		All(&filas)
	if err != nil {
		return nil, requestresponse.PaginationMeta{}, helpers.AsAppError(err, "error consultando interacciones")
	}

	data := make([]internaldto.InteraccionDTO, 0, len(filas))
	for _, i := range filas {
		data = append(data, interaccionDTO(i))
	}

	return data, internalhelpers.NewMeta(q.Page, q.Limit, total), nil
}

// ObtenerInteraccion devuelve la interacción con su talento y el líder y
// mentor de éste.
func ObtenerInteraccion(ctx context.Context, id string) (*internaldto.InteraccionDTO, error) {
	o := ormer()

	i := &models.Interaccion{}
	err := o.QueryTable(i).
		Filter("id", id).
		RelatedSel("talento", "talento__lider", "talento__mentor").
		One(i)
	if err != nil {
		if err == orm.ErrNoRows {
			return nil, helpers.NotFound(helpers.CodeInteraccionNotFound, "Interacción no encontrada")
		}
		return nil, helpers.AsAppError(err, "error consultando interacción")
	}

	d := interaccionDTO(i)
	if d.Talento != nil && i.Talento != nil {
		d.Talento.Lider = referenteResumen(i.Talento.Lider)
		d.Talento.Mentor = referenteResumen(i.Talento.Mentor)
	}
	return &d, nil
}

// CrearInteraccion verifica que el talento exista (400 si no) y aplica los
// defaults: estado INICIADA y fecha actual.
func CrearInteraccion(ctx context.Context, in internaldto.InteraccionCreate) (*internaldto.InteraccionDTO, error) {
	o := ormer()

	t := &models.Talento{ID: in.TalentoID}
	if err := o.Read(t); err != nil {
		if err == orm.ErrNoRows {
			return nil, helpers.BadRequest(helpers.CodeTalentoNotFound, "El talento especificado no existe")
		}
		return nil, helpers.AsAppError(err, "error consultando talento")
	}

	estado := in.Estado
	if estado == "" {
		estado = models.InteraccionIniciada
	}
	fecha := time.Now()
	if in.Fecha != nil {
		fecha = *in.Fecha
	}

	i := &models.Interaccion{
		ID:                uuid.NewString(),
		Talento:           t,
		TipoDeInteraccion: in.TipoDeInteraccion,
		Detalle:           in.Detalle,
		Estado:            estado,
		Fecha:             fecha,
	}
	if _, err := o.Insert(i); err != nil {
		return nil, helpers.AsAppError(err, "error creando interacción")
	}

	d := interaccionDTO(i)
	return &d, nil
}

// ActualizarInteraccion acepta cualquier subconjunto de tipo, detalle,
// estado y fecha. El estado no valida transiciones: cualquier valor del
// enum puede escribirse sobre cualquier estado previo.
func ActualizarInteraccion(ctx context.Context, id string, in internaldto.InteraccionUpdate) (*internaldto.InteraccionDTO, error) {
	o := ormer()

	i := &models.Interaccion{ID: id}
	if err := o.Read(i); err != nil {
		if err == orm.ErrNoRows {
			return nil, helpers.NotFound(helpers.CodeInteraccionNotFound, "Interacción no encontrada")
		}
		return nil, helpers.AsAppError(err, "error consultando interacción")
	}

	if in.TipoDeInteraccion != nil {
		i.TipoDeInteraccion = *in.TipoDeInteraccion
	}
	if in.Detalle != nil {
		i.Detalle = *in.Detalle
	}
	if in.Estado != nil {
		i.Estado = *in.Estado
	}
	if in.Fecha != nil {
		i.Fecha = *in.Fecha
	}

	if _, err := o.Update(i); err != nil {
		return nil, helpers.AsAppError(err, "error actualizando interacción")
	}

	if i.Talento != nil {
		if err := o.Read(i.Talento); err != nil && err != orm.ErrNoRows {
			return nil, helpers.AsAppError(err, "error consultando talento")
		}
	}

	d := interaccionDTO(i)
	return &d, nil
}

// EliminarInteraccion borra la interacción y devuelve el registro eliminado.
func EliminarInteraccion(ctx context.Context, id string) (*internaldto.InteraccionEliminada, error) {
	o := ormer()

	i := &models.Interaccion{ID: id}
	if err := o.Read(i); err != nil {
		if err == orm.ErrNoRows {
			return nil, helpers.NotFound(helpers.CodeInteraccionNotFound, "Interacción no encontrada")
		}
		return nil, helpers.AsAppError(err, "error consultando interacción")
	}

	d := interaccionDTO(i)
	// El registro eliminado viaja sin el resumen del talento: tras Read solo
	// está disponible su id, que ya va en talento_id.
	d.Talento = nil
	if _, err := o.Delete(i); err != nil {
		return nil, helpers.AsAppError(err, "error eliminando interacción")
	}

	return &internaldto.InteraccionEliminada{
		Message:     "Interacción eliminada exitosamente",
		Interaccion: d,
	}, nil
}
