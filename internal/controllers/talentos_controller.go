package controllers

import (
	"net/http"
	"strings"

	rootcontrollers "github.com/rocbird/talentos_api/controllers"
	"github.com/rocbird/talentos_api/helpers"
	internaldto "github.com/rocbird/talentos_api/internal/dto"
	internalhelpers "github.com/rocbird/talentos_api/internal/helpers"
	internalservices "github.com/rocbird/talentos_api/internal/services"
)

// TalentosController gestiona el CRUD de talentos.
type TalentosController struct {
	rootcontrollers.BaseController
}

// GetListado devuelve una página de talentos con filtros, búsqueda y orden.
// @router /v1/talentos [get]
func (c *TalentosController) GetListado() {
	q := internaldto.TalentoQuery{
		Sort:      strings.TrimSpace(c.GetString("sort", "desc")),
		SortBy:    strings.TrimSpace(c.GetString("sortBy", "fecha_creacion")),
		Estado:    strings.TrimSpace(c.GetString("estado")),
		Seniority: strings.TrimSpace(c.GetString("seniority")),
		Search:    strings.TrimSpace(c.GetString("search")),
	}
	q.Page, q.Limit = internalhelpers.ParsePageLimit(c.GetString("page"), c.GetString("limit"))

	if err := internalhelpers.Validate(q); err != nil {
		c.RespondError(err)
		return
	}

	data, meta, err := internalservices.ListarTalentos(c.Ctx.Request.Context(), q)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondPage(data, meta)
}

// GetById devuelve un talento con todas sus relaciones e interacciones.
// @router /v1/talentos/:id [get]
func (c *TalentosController) GetById() {
	id, err := internalhelpers.ParamID(c.Ctx, ":id")
	if err != nil {
		c.RespondError(helpers.BadRequest(helpers.CodeValidation, err.Error()))
		return
	}

	talento, err := internalservices.ObtenerTalento(c.Ctx.Request.Context(), id)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondData(http.StatusOK, talento)
}

// PostCrear crea un talento validando la existencia de líder y mentor.
// @router /v1/talentos [post]
func (c *TalentosController) PostCrear() {
	var body internaldto.TalentoCreate
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, helpers.CodeValidation, "cuerpo inválido", err))
		return
	}
	if err := internalhelpers.Validate(body); err != nil {
		c.RespondError(err)
		return
	}

	talento, err := internalservices.CrearTalento(c.Ctx.Request.Context(), body)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondData(http.StatusCreated, talento)
}

// PutActualizar aplica una actualización parcial sobre el talento.
// @router /v1/talentos/:id [put]
func (c *TalentosController) PutActualizar() {
	id, err := internalhelpers.ParamID(c.Ctx, ":id")
	if err != nil {
		c.RespondError(helpers.BadRequest(helpers.CodeValidation, err.Error()))
		return
	}

	var body internaldto.TalentoUpdate
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, helpers.CodeValidation, "cuerpo inválido", err))
		return
	}
	if err := internalhelpers.Validate(body); err != nil {
		c.RespondError(err)
		return
	}

	talento, err := internalservices.ActualizarTalento(c.Ctx.Request.Context(), id, body)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondData(http.StatusOK, talento)
}

// DeleteById elimina el talento y sus interacciones en cascada.
// @router /v1/talentos/:id [delete]
func (c *TalentosController) DeleteById() {
	id, err := internalhelpers.ParamID(c.Ctx, ":id")
	if err != nil {
		c.RespondError(helpers.BadRequest(helpers.CodeValidation, err.Error()))
		return
	}

	resumen, err := internalservices.EliminarTalento(c.Ctx.Request.Context(), id)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondData(http.StatusOK, resumen)
}
