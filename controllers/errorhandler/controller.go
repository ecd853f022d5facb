package errorhandler

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"

	"github.com/rocbird/talentos_api/helpers"
	"github.com/rocbird/talentos_api/models/requestresponse"
)

// ErrorHandlerController se registra en el router para gestionar 404, 405 y
// otros fallos fuera de los controladores.
type ErrorHandlerController struct {
	beego.Controller
}

// Error404 centraliza la respuesta cuando la ruta no existe.
func (c *ErrorHandlerController) Error404() {
	method := c.Ctx.Request.Method
	path := c.Ctx.Request.URL.Path
	message := fmt.Sprintf("nomatch|%s|%s", method, path)

	c.Ctx.Output.SetStatus(http.StatusNotFound)
	c.Data["json"] = requestresponse.NewError(helpers.CodeNotFound, message, nil)
	_ = c.ServeJSON()
}

// Error405 responde cuando la ruta existe pero el método no está mapeado.
func (c *ErrorHandlerController) Error405() {
	message := fmt.Sprintf("Método %s no permitido", c.Ctx.Request.Method)

	c.Ctx.Output.SetStatus(http.StatusMethodNotAllowed)
	c.Data["json"] = requestresponse.NewError(helpers.CodeMethodNotAllowed, message, nil)
	_ = c.ServeJSON()
}

// Error500 responde ante fallos no clasificados del framework.
func (c *ErrorHandlerController) Error500() {
	c.Ctx.Output.SetStatus(http.StatusInternalServerError)
	c.Data["json"] = requestresponse.NewError(helpers.CodeInternal, "Error interno del servidor", nil)
	_ = c.ServeJSON()
}

// HandlePanic captura pánicos en controladores y entrega una respuesta estándar.
func HandlePanic(ctrl *beego.Controller) {
	if r := recover(); r != nil {
		logs.Error("panic:", r)
		debug.PrintStack()

		appName := beego.AppConfig.DefaultString("appname", "talentos_api")
		message := fmt.Sprintf("Error service %s: An internal server error occurred.", appName)
		message += fmt.Sprintf(" Request Info: URL: %s, Method: %s", ctrl.Ctx.Request.URL, ctrl.Ctx.Request.Method)
		message += " Time: " + time.Now().UTC().Format(time.RFC3339)

		ctrl.Ctx.Output.SetStatus(http.StatusInternalServerError)
		ctrl.Data["json"] = requestresponse.NewError(helpers.CodeUnknown, message, nil)
		_ = ctrl.ServeJSON()
	}
}
