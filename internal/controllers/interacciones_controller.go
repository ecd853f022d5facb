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

// InteraccionesController gestiona el CRUD de interacciones.
type InteraccionesController struct {
	rootcontrollers.BaseController
}

// GetListado devuelve una página de interacciones, opcionalmente filtrada
// por talento.
// @router /v1/interacciones [get]
func (c *InteraccionesController) GetListado() {
	q := internaldto.InteraccionQuery{
		TalentoID: strings.TrimSpace(c.GetString("talento_id")),
	}
	q.Page, q.Limit = internalhelpers.ParsePageLimit(c.GetString("page"), c.GetString("limit"))

	if err := internalhelpers.Validate(q); err != nil {
		c.RespondError(err)
		return
	}

	data, meta, err := internalservices.ListarInteracciones(c.Ctx.Request.Context(), q)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondPage(data, meta)
}

// GetById devuelve la interacción con su talento, líder y mentor.
// @router /v1/interacciones/:id [get]
func (c *InteraccionesController) GetById() {
	id, err := internalhelpers.ParamID(c.Ctx, ":id")
	if err != nil {
		c.RespondError(helpers.BadRequest(helpers.CodeValidation, err.Error()))
		return
	}

	interaccion, err := internalservices.ObtenerInteraccion(c.Ctx.Request.Context(), id)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondData(http.StatusOK, interaccion)
}

// PostCrear registra una interacción sobre un talento existente.
// @router /v1/interacciones [post]
func (c *InteraccionesController) PostCrear() {
	var body internaldto.InteraccionCreate
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, helpers.CodeValidation, "cuerpo inválido", err))
		return
	}
	if err := internalhelpers.Validate(body); err != nil {
		c.RespondError(err)
		return
	}

	interaccion, err := internalservices.CrearInteraccion(c.Ctx.Request.Context(), body)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondData(http.StatusCreated, interaccion)
}

// PutActualizar acepta cualquier subconjunto de tipo/detalle/estado/fecha.
// @router /v1/interacciones/:id [put]
func (c *InteraccionesController) PutActualizar() {
	id, err := internalhelpers.ParamID(c.Ctx, ":id")
	if err != nil {
		c.RespondError(helpers.BadRequest(helpers.CodeValidation, err.Error()))
		return
	}

	var body internaldto.InteraccionUpdate
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, helpers.CodeValidation, "cuerpo inválido", err))
		return
	}
	if err := internalhelpers.Validate(body); err != nil {
		c.RespondError(err)
		return
	}

	interaccion, err := internalservices.ActualizarInteraccion(c.Ctx.Request.Context(), id, body)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondData(http.StatusOK, interaccion)
}

// DeleteById elimina la interacción.
// @router /v1/interacciones/:id [delete]
func (c *InteraccionesController) DeleteById() {
	id, err := internalhelpers.ParamID(c.Ctx, ":id")
	if err != nil {
		c.RespondError(helpers.BadRequest(helpers.CodeValidation, err.Error()))
		return
	}

	resumen, err := internalservices.EliminarInteraccion(c.Ctx.Request.Context(), id)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondData(http.StatusOK, resumen)
}
