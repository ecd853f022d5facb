package services

import (
	"context"
	"strings"

	"github.com/beego/beego/v2/client/orm"
	"github.com/google/uuid"

	"github.com/rocbird/talentos_api/helpers"
	internaldto "github.com/rocbird/talentos_api/internal/dto"
	"github.com/rocbird/talentos_api/models"
)

// ListarReferentes devuelve todos los referentes ordenados del más nuevo al
// más antiguo, cada uno con sus talentos liderados y mentoreados. El listado
// no se pagina: el plantel de referentes es acotado.
func ListarReferentes(ctx context.Context) ([]internaldto.ReferenteDTO, error) {
	o := ormer()

	var filas []*models.ReferenteTecnico
	_, err := o.QueryTable(new(models.ReferenteTecnico)).
		OrderBy("-fecha_creacion").
		All(&filas)
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando referentes")
	}

	data := make([]internaldto.ReferenteDTO, 0, len(filas))
	for _, r := range filas {
		d, err := referenteDTO(o, r)
		if err != nil {
			return nil, err
		}
		data = append(data, d)
	}
	return data, nil
}

// CrearReferente inserta un referente. El email es único: el duplicado se
// detecta antes de escribir para responder 409 con el campo ofensivo, y la
// restricción de la base respalda la verificación ante carreras.
func CrearReferente(ctx context.Context, in internaldto.ReferenteCreate) (*internaldto.ReferenteDTO, error) {
	o := ormer()

	if err := verificarEmailLibre(o, in.Email, ""); err != nil {
		return nil, err
	}

	r := &models.ReferenteTecnico{
		ID:              uuid.NewString(),
		NombreYApellido: in.NombreYApellido,
		Email:           strings.TrimSpace(in.Email),
	}
	if in.Especialidad != nil {
		r.Especialidad = *in.Especialidad
	}
	if _, err := o.Insert(r); err != nil {
		return nil, helpers.AsAppError(err, "error creando referente")
	}

	d, err := referenteDTO(o, r)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ActualizarReferente aplica una actualización parcial.
func ActualizarReferente(ctx context.Context, id string, in internaldto.ReferenteUpdate) (*internaldto.ReferenteDTO, error) {
	o := ormer()

	r := &models.ReferenteTecnico{ID: id}
	if err := o.Read(r); err != nil {
		if err == orm.ErrNoRows {
			return nil, helpers.NotFound(helpers.CodeReferenteNotFound, "Referente técnico no encontrado")
		}
		return nil, helpers.AsAppError(err, "error consultando referente")
	}

	if in.Email != nil && !strings.EqualFold(*in.Email, r.Email) {
		if err := verificarEmailLibre(o, *in.Email, id); err != nil {
			return nil, err
		}
		r.Email = strings.TrimSpace(*in.Email)
	}
	if in.NombreYApellido != nil {
		r.NombreYApellido = *in.NombreYApellido
	}
	if in.Especialidad != nil {
		r.Especialidad = *in.Especialidad
	}

	if _, err := o.Update(r); err != nil {
		return nil, helpers.AsAppError(err, "error actualizando referente")
	}

	d, err := referenteDTO(o, r)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// EliminarReferente borra el referente solo cuando ningún talento lo tiene
// como líder ni como mentor; en caso contrario responde 409.
func EliminarReferente(ctx context.Context, id string) (*internaldto.ReferenteEliminado, error) {
	o := ormer()

	r := &models.ReferenteTecnico{ID: id}
	if err := o.Read(r); err != nil {
		if err == orm.ErrNoRows {
			return nil, helpers.NotFound(helpers.CodeReferenteNotFound, "Referente técnico no encontrado")
		}
		return nil, helpers.AsAppError(err, "error consultando referente")
	}

	enUso := orm.NewCondition().Or("lider__id", id).Or("mentor__id", id)
	referencias, err := o.QueryTable(new(models.Talento)).SetCond(enUso).Count()
	if err != nil {
		return nil, helpers.AsAppError(err, "error verificando referencias")
	}
	if referencias > 0 {
		return nil, helpers.Conflict(helpers.CodeReferenteInUse,
			"El referente tiene talentos asignados como líder o mentor")
	}

	d, err := referenteDTO(o, r)
	if err != nil {
		return nil, err
	}
	if _, err := o.Delete(r); err != nil {
		return nil, helpers.AsAppError(err, "error eliminando referente")
	}

	return &internaldto.ReferenteEliminado{
		Message:   "Referente técnico eliminado exitosamente",
		Referente: d,
	}, nil
}

func verificarEmailLibre(o orm.Ormer, email, exceptoID string) error {
	qs := o.QueryTable(new(models.ReferenteTecnico)).Filter("email", strings.TrimSpace(email))
	if exceptoID != "" {
		qs = qs.Exclude("id", exceptoID)
	}
	existentes, err := qs.Count()
	if err != nil {
		return helpers.AsAppError(err, "error verificando email")
	}
	if existentes > 0 {
		return helpers.Conflict(helpers.CodeUniqueConstraint, "Ya existe un referente con ese email").
			WithDetails(map[string]string{"field": "email"})
	}
	return nil
}

func referenteDTO(o orm.Ormer, r *models.ReferenteTecnico) (internaldto.ReferenteDTO, error) {
	liderados, err := talentosPorRelacion(o, "lider__id", r.ID)
	if err != nil {
		return internaldto.ReferenteDTO{}, err
	}
	mentoreados, err := talentosPorRelacion(o, "mentor__id", r.ID)
	if err != nil {
		return internaldto.ReferenteDTO{}, err
	}

	return internaldto.ReferenteDTO{
		ID:                  r.ID,
		NombreYApellido:     r.NombreYApellido,
		Email:               r.Email,
		Especialidad:        r.Especialidad,
		FechaCreacion:       r.FechaCreacion,
		TalentosLiderados:   liderados,
		TalentosMentoreados: mentoreados,
		TotalLiderados:      len(liderados),
		TotalMentoreados:    len(mentoreados),
	}, nil
}

func talentosPorRelacion(o orm.Ormer, relacion, referenteID string) ([]internaldto.TalentoResumen, error) {
	var filas []*models.Talento
	_, err := o.QueryTable(new(models.Talento)).
		Filter(relacion, referenteID).
		OrderBy("nombre_y_apellido").
		All(&filas)
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando talentos del referente")
	}

	resumenes := make([]internaldto.TalentoResumen, 0, len(filas))
	for _, t := range filas {
		resumenes = append(resumenes, *talentoResumen(t))
	}
	return resumenes, nil
}
