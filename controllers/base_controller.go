package controllers

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"

	"github.com/rocbird/talentos_api/helpers"
	"github.com/rocbird/talentos_api/models/requestresponse"
)

// BaseController centraliza la construcción de respuestas estándar.
type BaseController struct {
	beego.Controller
}

// RespondData serializa el payload tal cual con el status indicado.
func (c *BaseController) RespondData(status int, data interface{}) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = data
	_ = c.ServeJSON()
}

// RespondPage envuelve un listado en el sobre {data, meta}.
func (c *BaseController) RespondPage(data interface{}, meta requestresponse.PaginationMeta) {
	c.Ctx.Output.SetStatus(200)
	c.Data["json"] = requestresponse.NewPage(data, meta)
	_ = c.ServeJSON()
}

// RespondError transforma cualquier error en el sobre {error, message, details}.
func (c *BaseController) RespondError(err error) {
	appErr := helpers.AsAppError(err, "error inesperado")
	if appErr.Status >= 500 {
		logs.Error("%s %s: %v", c.Ctx.Request.Method, c.Ctx.Request.URL.Path, appErr)
	}
	c.Ctx.Output.SetStatus(appErr.Status)
	c.Data["json"] = requestresponse.NewError(appErr.Code, appErr.Message, appErr.Details)
	_ = c.ServeJSON()
}

// ParseJSONBody deserializa el cuerpo de la petición en out.
func (c *BaseController) ParseJSONBody(out interface{}) error {
	raw := c.Ctx.Input.RequestBody

	if len(raw) == 0 && c.Ctx.Request != nil && c.Ctx.Request.Body != nil {
		b, err := io.ReadAll(c.Ctx.Request.Body)
		if err != nil {
			return err
		}
		raw = b

		// cache + reinyectar
		c.Ctx.Input.RequestBody = b
		c.Ctx.Request.Body = io.NopCloser(bytes.NewBuffer(b))
	}

	return json.Unmarshal(raw, out)
}
