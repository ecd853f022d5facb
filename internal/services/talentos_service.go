package services

import (
	"context"
	"strings"

	"github.com/beego/beego/v2/client/orm"
	"github.com/google/uuid"

	"github.com/rocbird/talentos_api/helpers"
	internaldto "github.com/rocbird/talentos_api/internal/dto"
	internalhelpers "github.com/rocbird/talentos_api/internal/helpers"
	"github.com/rocbird/talentos_api/models"
	"github.com/rocbird/talentos_api/models/requestresponse"
)

const resumenInteracciones = 5

// ListarTalentos aplica filtros, búsqueda y orden, y devuelve una página de
// talentos con líder, mentor y las interacciones más recientes.
func ListarTalentos(ctx context.Context, q internaldto.TalentoQuery) ([]internaldto.TalentoDTO, requestresponse.PaginationMeta, error) {
	o := ormer()

	cond := orm.NewCondition()
	if q.Estado != "" {
		cond = cond.And("estado", q.Estado)
	}
	if q.Seniority != "" {
		cond = cond.And("seniority", q.Seniority)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		busqueda := orm.NewCondition().
			Or("nombre_y_apellido__icontains", s).
			Or("rol__icontains", s)
		cond = cond.AndCond(busqueda)
	}

	qs := o.QueryTable(new(models.Talento)).SetCond(cond)

	total, err := qs.Count()
	if err != nil {
		return nil, requestresponse.PaginationMeta{}, helpers.AsAppError(err, "error contando talentos")
	}

	orden := q.SortBy
	if q.Sort == "desc" {
		orden = "-" + orden
	}

	var filas []*models.Talento
	_, err = qs.
		OrderBy(orden).
		RelatedSel("lider", "mentor").
		Limit(q.Limit, (q.Page-1)*q.Limit).
		All(&filas)
	if err != nil {
		return nil, requestresponse.PaginationMeta{}, helpers.AsAppError(err, "error consultando talentos")
	}

	data := make([]internaldto.TalentoDTO, 0, len(filas))
	for _, t := range filas {
		d := talentoDTO(t)
		if err := adjuntarInteracciones(o, &d, resumenInteracciones, false); err != nil {
			return nil, requestresponse.PaginationMeta{}, err
		}
		data = append(data, d)
	}

	return data, internalhelpers.NewMeta(q.Page, q.Limit, total), nil
}

// ObtenerTalento devuelve la vista completa: relaciones y todas las
// interacciones ordenadas de más reciente a más antigua.
func ObtenerTalento(ctx context.Context, id string) (*internaldto.TalentoDTO, error) {
	return obtenerTalento(ormer(), id, 0, true)
}

// CrearTalento valida la existencia de líder y mentor antes de insertar.
func CrearTalento(ctx context.Context, in internaldto.TalentoCreate) (*internaldto.TalentoDTO, error) {
	o := ormer()

	lider, err := resolverReferente(o, in.LiderID, helpers.CodeLiderNotFound, "El líder especificado no existe")
	if err != nil {
		return nil, err
	}
	mentor, err := resolverReferente(o, in.MentorID, helpers.CodeMentorNotFound, "El mentor especificado no existe")
	if err != nil {
		return nil, err
	}

	estado := in.Estado
	if estado == "" {
		estado = models.TalentoActivo
	}

	t := &models.Talento{
		ID:              uuid.NewString(),
		NombreYApellido: in.NombreYApellido,
		Seniority:       in.Seniority,
		Rol:             in.Rol,
		Estado:          estado,
		Lider:           lider,
		Mentor:          mentor,
	}
	if _, err := o.Insert(t); err != nil {
		return nil, helpers.AsAppError(err, "error creando talento")
	}

	d := talentoDTO(t)
	return &d, nil
}

// ActualizarTalento aplica una actualización parcial: los campos ausentes
// del cuerpo no se tocan. Líder y mentor se verifican igual que en crear.
func ActualizarTalento(ctx context.Context, id string, in internaldto.TalentoUpdate) (*internaldto.TalentoDTO, error) {
	o := ormer()

	t := &models.Talento{ID: id}
	if err := o.Read(t); err != nil {
		if err == orm.ErrNoRows {
			return nil, helpers.NotFound(helpers.CodeTalentoNotFound, "Talento no encontrado")
		}
		return nil, helpers.AsAppError(err, "error consultando talento")
	}

	if in.NombreYApellido != nil {
		t.NombreYApellido = *in.NombreYApellido
	}
	if in.Seniority != nil {
		t.Seniority = *in.Seniority
	}
	if in.Rol != nil {
		t.Rol = *in.Rol
	}
	if in.Estado != nil {
		t.Estado = *in.Estado
	}
	if in.LiderID != nil {
		lider, err := resolverReferente(o, in.LiderID, helpers.CodeLiderNotFound, "El líder especificado no existe")
		if err != nil {
			return nil, err
		}
		t.Lider = lider
	}
	if in.MentorID != nil {
		mentor, err := resolverReferente(o, in.MentorID, helpers.CodeMentorNotFound, "El mentor especificado no existe")
		if err != nil {
			return nil, err
		}
		t.Mentor = mentor
	}

	if _, err := o.Update(t); err != nil {
		return nil, helpers.AsAppError(err, "error actualizando talento")
	}

	return obtenerTalento(o, id, resumenInteracciones, false)
}

// EliminarTalento elimina el talento y, en cascada, sus interacciones.
// La respuesta reporta cuántas interacciones se eliminaron.
func EliminarTalento(ctx context.Context, id string) (*internaldto.TalentoEliminado, error) {
	o := ormer()

	t := &models.Talento{ID: id}
	err := o.QueryTable(t).
		Filter("id", id).
		RelatedSel("lider", "mentor").
		One(t)
	if err != nil {
		if err == orm.ErrNoRows {
			return nil, helpers.NotFound(helpers.CodeTalentoNotFound, "Talento no encontrado")
		}
		return nil, helpers.AsAppError(err, "error consultando talento")
	}

	eliminadas, err := o.QueryTable(new(models.Interaccion)).Filter("talento__id", id).Count()
	if err != nil {
		return nil, helpers.AsAppError(err, "error contando interacciones")
	}

	if _, err := o.Delete(&models.Talento{ID: id}); err != nil {
		return nil, helpers.AsAppError(err, "error eliminando talento")
	}

	return &internaldto.TalentoEliminado{
		Message:                 "Talento eliminado exitosamente",
		Talento:                 talentoDTO(t),
		InteraccionesEliminadas: eliminadas,
	}, nil
}

func obtenerTalento(o orm.Ormer, id string, limite int, conDetalle bool) (*internaldto.TalentoDTO, error) {
	t := &models.Talento{}
	err := o.QueryTable(t).
		Filter("id", id).
		RelatedSel("lider", "mentor").
		One(t)
	if err != nil {
		if err == orm.ErrNoRows {
			return nil, helpers.NotFound(helpers.CodeTalentoNotFound, "Talento no encontrado")
		}
		return nil, helpers.AsAppError(err, "error consultando talento")
	}

	d := talentoDTO(t)
	if err := adjuntarInteracciones(o, &d, limite, conDetalle); err != nil {
		return nil, err
	}
	return &d, nil
}

// adjuntarInteracciones carga las interacciones más recientes del talento y
// su conteo total. limite 0 significa sin tope.
func adjuntarInteracciones(o orm.Ormer, d *internaldto.TalentoDTO, limite int, conDetalle bool) error {
	qs := o.QueryTable(new(models.Interaccion)).Filter("talento__id", d.ID)

	total, err := qs.Count()
	if err != nil {
		return helpers.AsAppError(err, "error contando interacciones")
	}

	qs = qs.OrderBy("-fecha")
	if limite > 0 {
		qs = qs.Limit(limite)
	}
	var filas []*models.Interaccion
	if _, err := qs.All(&filas); err != nil {
		return helpers.AsAppError(err, "error consultando interacciones")
	}

	resumenes := make([]internaldto.InteraccionResumen, 0, len(filas))
	for _, i := range filas {
		resumenes = append(resumenes, interaccionResumen(i, conDetalle))
	}
	d.Interacciones = resumenes
	d.TotalInteracciones = &total
	return nil
}

// resolverReferente devuelve el referente apuntado por id, o un 400 con el
// código indicado cuando no existe. id nil significa "sin relación".
func resolverReferente(o orm.Ormer, id *string, code, mensaje string) (*models.ReferenteTecnico, error) {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil, nil
	}
	r := &models.ReferenteTecnico{ID: *id}
	if err := o.Read(r); err != nil {
		if err == orm.ErrNoRows {
			return nil, helpers.BadRequest(code, mensaje)
		}
		return nil, helpers.AsAppError(err, "error consultando referente")
	}
	return r, nil
}
