package routers

import (
	beego "github.com/beego/beego/v2/server/web"

	"github.com/rocbird/talentos_api/controllers/errorhandler"
	"github.com/rocbird/talentos_api/database"
	internalcontrollers "github.com/rocbird/talentos_api/internal/controllers"
	internalservices "github.com/rocbird/talentos_api/internal/services"
)

// Register inyecta el store a la capa de servicios y declara la tabla de rutas.
func Register(store *database.Store) {
	internalservices.Init(store)

	// Manejador de errores
	beego.ErrorController(&errorhandler.ErrorHandlerController{})

	beego.Router("/v1/talentos", &internalcontrollers.TalentosController{}, "get:GetListado;post:PostCrear")
	beego.Router("/v1/talentos/:id", &internalcontrollers.TalentosController{}, "get:GetById;put:PutActualizar;delete:DeleteById")

	beego.Router("/v1/referentes-tecnicos", &internalcontrollers.ReferentesController{}, "get:GetListado;post:PostCrear")
	beego.Router("/v1/referentes-tecnicos/:id", &internalcontrollers.ReferentesController{}, "put:PutActualizar;delete:DeleteById")

	beego.Router("/v1/interacciones", &internalcontrollers.InteraccionesController{}, "get:GetListado;post:PostCrear")
	beego.Router("/v1/interacciones/:id", &internalcontrollers.InteraccionesController{}, "get:GetById;put:PutActualizar;delete:DeleteById")

	beego.Router("/health", &internalcontrollers.SaludController{}, "get:GetSalud")
	beego.Router("/v1/health", &internalcontrollers.SaludController{}, "get:GetSalud")
}
