package controllers

import (
	"net/http"

	rootcontrollers "github.com/rocbird/talentos_api/controllers"
	"github.com/rocbird/talentos_api/helpers"
	internaldto "github.com/rocbird/talentos_api/internal/dto"
	internalhelpers "github.com/rocbird/talentos_api/internal/helpers"
	internalservices "github.com/rocbird/talentos_api/internal/services"
)

// ReferentesController gestiona los referentes técnicos.
type ReferentesController struct {
	rootcontrollers.BaseController
}

// GetListado devuelve todos los referentes con sus talentos y conteos.
// @router /v1/referentes-tecnicos [get]
func (c *ReferentesController) GetListado() {
	referentes, err := internalservices.ListarReferentes(c.Ctx.Request.Context())
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondData(http.StatusOK, referentes)
}

// PostCrear crea un referente; email duplicado responde 409.
// @router /v1/referentes-tecnicos [post]
func (c *ReferentesController) PostCrear() {
	var body internaldto.ReferenteCreate
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, helpers.CodeValidation, "cuerpo inválido", err))
		return
	}
	if err := internalhelpers.Validate(body); err != nil {
		c.RespondError(err)
		return
	}

	referente, err := internalservices.CrearReferente(c.Ctx.Request.Context(), body)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondData(http.StatusCreated, referente)
}

// PutActualizar aplica una actualización parcial sobre el referente.
// @router /v1/referentes-tecnicos/:id [put]
func (c *ReferentesController) PutActualizar() {
	id, err := internalhelpers.ParamID(c.Ctx, ":id")
	if err != nil {
		c.RespondError(helpers.BadRequest(helpers.CodeValidation, err.Error()))
		return
	}

	var body internaldto.ReferenteUpdate
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, helpers.CodeValidation, "cuerpo inválido", err))
		return
	}
	if err := internalhelpers.Validate(body); err != nil {
		c.RespondError(err)
		return
	}

	referente, err := internalservices.ActualizarReferente(c.Ctx.Request.Context(), id, body)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondData(http.StatusOK, referente)
}

// DeleteById elimina el referente si ningún talento lo referencia.
// @router /v1/referentes-tecnicos/:id [delete]
func (c *ReferentesController) DeleteById() {
	id, err := internalhelpers.ParamID(c.Ctx, ":id")
	if err != nil {
		c.RespondError(helpers.BadRequest(helpers.CodeValidation, err.Error()))
		return
	}

	resumen, err := internalservices.EliminarReferente(c.Ctx.Request.Context(), id)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondData(http.StatusOK, resumen)
}
