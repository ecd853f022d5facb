package controllers

import (
	"net/http"

	rootcontrollers "github.com/rocbird/talentos_api/controllers"
	internalservices "github.com/rocbird/talentos_api/internal/services"
)

// SaludController expone la sonda de salud del API y la base de datos.
type SaludController struct {
	rootcontrollers.BaseController
}

// GetSalud responde 200 cuando la base contesta el ping, 503 si no.
// @router /health [get]
func (c *SaludController) GetSalud() {
	reporte, sano := internalservices.EstadoSalud(c.Ctx.Request.Context())

	status := http.StatusOK
	if !sano {
		status = http.StatusServiceUnavailable
	}
	c.RespondData(status, reporte)
}
